package words

// FromString returns an iterator over the words in s.
func FromString(s string) *Iterator[string] {
	return NewIterator(s)
}
