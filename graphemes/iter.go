//go:build go1.23

package graphemes

import (
	"iter"

	"github.com/clipperhouse/stringish"
)

// Split returns an iterator over the grapheme clusters in data, for use
// with range. data may be []byte or string.
func Split[T stringish.Interface](data T) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := NewIterator(data)
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
