package sentences

// FromBytes returns an iterator over the sentences in data.
func FromBytes(data []byte) *Iterator[[]byte] {
	return NewIterator(data)
}
