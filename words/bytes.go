package words

// FromBytes returns an iterator over the words in data.
func FromBytes(data []byte) *Iterator[[]byte] {
	return NewIterator(data)
}
