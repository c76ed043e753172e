package sentences

// FromString returns an iterator over the sentences in s.
func FromString(s string) *Iterator[string] {
	return NewIterator(s)
}
