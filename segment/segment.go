// Package segment builds on the grapheme break engine to provide the
// length, slicing, and width operations that treat a string as a
// sequence of user-perceived characters rather than bytes or runes.
package segment

import (
	"golang.org/x/text/width"

	"github.com/clipperhouse/stringish"
	"github.com/clipperhouse/textsearch/graphemes"
	"github.com/clipperhouse/textsearch/internal/stringish/utf8"
)

// Span is one grapheme cluster and its byte offsets in the original text.
type Span[T stringish.Interface] struct {
	Start, End int
	Text       T
}

// NextSpan returns the span of the next grapheme cluster starting at offset.
func NextSpan[T stringish.Interface](text T, offset int) (Span[T], error) {
	end, err := graphemes.NextBreak(text, offset)
	if err != nil {
		return Span[T]{}, err
	}
	return Span[T]{Start: offset, End: end, Text: text[offset:end]}, nil
}

// IterSpans returns every grapheme cluster span in text from offset on,
// in order.
func IterSpans[T stringish.Interface](text T, offset int) ([]Span[T], error) {
	var spans []Span[T]
	for offset < len(text) {
		end, err := graphemes.NextBreak(text, offset)
		if err != nil {
			return nil, err
		}
		spans = append(spans, Span[T]{Start: offset, End: end, Text: text[offset:end]})
		offset = end
	}
	return spans, nil
}

// IterWithOffsets is an alias of IterSpans kept for readers coming from
// the offset-tuple style of the generator this package's algorithms are
// grounded on.
func IterWithOffsets[T stringish.Interface](text T, offset int) ([]Span[T], error) {
	return IterSpans(text, offset)
}

// Length returns the number of grapheme clusters in text from offset on.
func Length[T stringish.Interface](text T, offset int) (int, error) {
	n := 0
	for offset < len(text) {
		end, err := graphemes.NextBreak(text, offset)
		if err != nil {
			return 0, err
		}
		n++
		offset = end
	}
	return n, nil
}

// Width returns the display width of text in grapheme-cluster units,
// where a cluster containing any Wide codepoint counts twice.
func Width[T stringish.Interface](text T) (int, error) {
	total := 0
	offset := 0
	for offset < len(text) {
		end, err := graphemes.NextBreak(text, offset)
		if err != nil {
			return 0, err
		}
		if clusterIsWide(text[offset:end]) {
			total += 2
		} else {
			total++
		}
		offset = end
	}
	return total, nil
}

func clusterIsWide[T stringish.Interface](cluster T) bool {
	pos := 0
	for pos < len(cluster) {
		r, w := utf8.DecodeRune(cluster[pos:])
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			return true
		}
		pos += w
	}
	return false
}

// Substring returns text[start:stop] in grapheme cluster units, with
// slice semantics matching ordinary sequence slicing: negative indices
// count from the end, out-of-range indices clamp, and start >= stop
// yields an empty result. start and stop may be nil to mean "from the
// beginning" and "to the end" respectively.
func Substring[T stringish.Interface](text T, start, stop *int) (T, error) {
	var empty T

	lo := 0
	if start != nil {
		lo = *start
	}
	hi := -1 // sentinel: unset
	if stop != nil {
		hi = *stop
	}

	if lo >= 0 && hi >= 0 {
		if lo == hi || hi == 0 || lo >= hi {
			return empty, nil
		}
		// fast path: no negative indices, we never need the full offset table
		offset := 0
		count := 0
		startOffset, stopOffset := -1, len(text)
		if lo == 0 {
			startOffset = 0
		}
		for offset < len(text) {
			end, err := graphemes.NextBreak(text, offset)
			if err != nil {
				return empty, err
			}
			count++
			if count == lo {
				startOffset = end
			}
			if count == hi {
				stopOffset = end
				break
			}
			offset = end
		}
		if startOffset < 0 {
			startOffset = len(text)
		}
		if stopOffset < startOffset {
			return empty, nil
		}
		return text[startOffset:stopOffset], nil
	}

	// One or both bounds are negative (or stop is unset): we need the
	// full table of cluster-boundary offsets to resolve relative
	// addressing, mirroring how Python slicing resolves indices against
	// len() before taking the slice.
	offsets := []int{0}
	offset := 0
	for offset < len(text) {
		end, err := graphemes.NextBreak(text, offset)
		if err != nil {
			return empty, err
		}
		offsets = append(offsets, end)
		offset = end
	}
	length := len(offsets) - 1

	if stop == nil {
		hi = length
	}

	lo = clampIndex(lo, length)
	hi = clampIndex(hi, length)

	if lo < hi {
		return text[offsets[lo]:offsets[hi]], nil
	}
	return empty, nil
}

func clampIndex(i, length int) int {
	if i < 0 {
		i += length
		if i < 0 {
			i = 0
		}
	} else if i > length {
		i = length
	}
	return i
}

// Casefold returns text folded for case-insensitive comparison, not
// intended for display.
func Casefold(text string) string {
	return casefold(text)
}
