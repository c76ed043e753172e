package words

import (
	"github.com/clipperhouse/stringish"
	"github.com/clipperhouse/textsearch/internal/stringish/utf8"
	"github.com/clipperhouse/textsearch/internal/ucd"
)

// Mask selects a set of codepoint kinds used to filter words down to
// the ones worth indexing -- numbers and letters, but also emoji and
// flags, which behave like words for search purposes even though they
// carry no letters.
type Mask uint8

const (
	Letter Mask = 1 << iota
	Number
	ExtendedPictographic
	RegionalIndicator
)

// Has reports whether word contains at least one codepoint matching any
// bit set in m.
func Has[T stringish.Interface](word T, m Mask) bool {
	pos := 0
	for pos < len(word) {
		r, w := utf8.DecodeRune(word[pos:])
		cat := ucd.Lookup(r)

		if m&Letter != 0 && cat.Major() == ucd.Letter {
			return true
		}
		if m&Number != 0 && cat.Major() == ucd.Number {
			return true
		}
		if m&ExtendedPictographic != 0 && cat.Is(ucd.ExtendedPictographic) {
			return true
		}
		if m&RegionalIndicator != 0 && cat.Is(ucd.RegionalIndicator) {
			return true
		}

		pos += w
	}
	return false
}
