package graphemes

// FromString returns an iterator over the grapheme clusters in s.
// Iterate while Next() is true, and access the cluster via Value().
func FromString(s string) *Iterator[string] {
	return NewIterator(s)
}

// CountString returns the number of grapheme clusters in s.
func CountString(s string) int {
	n := 0
	iter := FromString(s)
	for iter.Next() {
		n++
	}
	return n
}
