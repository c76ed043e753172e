//go:build go1.23

package sentences

import (
	"iter"

	"github.com/clipperhouse/stringish"
)

// Split returns an iterator over the sentences in data, for use with range.
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
