package graphemes

import "github.com/clipperhouse/stringish"

// Iterator is a generic iterator over grapheme clusters in data that is
// either []byte or string. Iterate while Next() is true, and access the
// cluster via Value().
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

// SetText resets the iterator to operate on data from the beginning.
func (iter *Iterator[T]) SetText(data T) {
	iter.data = data
	iter.pos = 0
	iter.start = 0
	var empty T
	iter.token = empty
}

// Next advances the iterator to the next grapheme cluster. It returns
// false when there are no clusters left.
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

// Value returns the current grapheme cluster.
func (iter *Iterator[T]) Value() T {
	return iter.token
}

// Start returns the byte offset of the current cluster in the original data.
func (iter *Iterator[T]) Start() int {
	return iter.start
}

// End returns the byte offset after the current cluster in the original data.
func (iter *Iterator[T]) End() int {
	return iter.pos
}

// Reset rewinds the iterator to the beginning of the data.
func (iter *Iterator[T]) Reset() {
	iter.pos = 0
	iter.start = 0
	var empty T
	iter.token = empty
}
