package graphemes

// FromBytes returns an iterator over the grapheme clusters in data.
// Iterate while Next() is true, and access the cluster via Value().
func FromBytes(data []byte) *Iterator[[]byte] {
	return NewIterator(data)
}

// Count returns the number of grapheme clusters in data.
func Count(data []byte) int {
	n := 0
	iter := FromBytes(data)
	for iter.Next() {
		n++
	}
	return n
}
