package sentences

import "github.com/clipperhouse/stringish"

// Iterator is a generic iterator over sentences in data that is either
// []byte or string. Iterate while Next() is true, and access the
// sentence via Value().
type Iterator[T stringish.Interface] struct {
	data  T
	pos   int
	start int
	token T
}

// NewIterator creates an Iterator over data.
func NewIterator[T stringish.Interface](data T) *Iterator[T] {
	return &Iterator[T]{data: data}
}

// Next advances the iterator to the next sentence. It returns false
// when there are no sentences left.
func (iter *Iterator[T]) Next() bool {
	if iter.pos >= len(iter.data) {
		return false
	}

	iter.start = iter.pos
	end, err := NextBreak(iter.data, iter.pos)
	if err != nil {
		panic(err)
	}
	if end <= iter.pos {
		panic("NextBreak did not advance")
	}

	iter.token = iter.data[iter.pos:end]
	iter.pos = end

	return true
}

// Value returns the current sentence.
func (iter *Iterator[T]) Value() T { return iter.token }

// Start returns the byte offset of the current sentence.
func (iter *Iterator[T]) Start() int { return iter.start }

// End returns the byte offset after the current sentence.
func (iter *Iterator[T]) End() int { return iter.pos }
