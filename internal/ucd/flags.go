package ucd

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// span is a half-open-free [Lo, Hi] inclusive codepoint interval, used
// only to seed the rangetable.New calls below; unlike Range it carries
// no category, since the tables here are plain membership sets.
type span struct{ Lo, Hi rune }

func runesOf(spans ...span) []rune {
	var rs []rune
	for _, s := range spans {
		for r := s.Lo; r <= s.Hi; r++ {
			rs = append(rs, r)
		}
	}
	return rs
}

// extendedPictographicTable, regionalIndicatorTable, and wideTable are
// the orthogonal, boolean Category flags: a codepoint can carry any of
// these alongside an unrelated major/minor category, which is exactly
// the membership-set shape golang.org/x/text/unicode/rangetable builds
// for -- unlike the enumerated major/minor/break-property tables below,
// which map each codepoint to one of several values and so are served
// by table/newTable's binary search instead.
var extendedPictographicTable = rangetable.New(runesOf(
	span{0x2600, 0x27BF},
	span{0x1F300, 0x1F5FF},
	span{0x1F600, 0x1F64F},
	span{0x1F680, 0x1F6FF},
	span{0x1F900, 0x1F9FF},
	span{0x1FA70, 0x1FAFF},
)...)

var regionalIndicatorTable = rangetable.New(runesOf(
	span{0x1F1E6, 0x1F1FF},
)...)

var wideEmojiTable = rangetable.New(runesOf(
	span{0x1F300, 0x1F5FF},
	span{0x1F600, 0x1F64F},
	span{0x1F680, 0x1F6FF},
	span{0x1F900, 0x1F9FF},
	span{0x1FA70, 0x1FAFF},
)...)

var wideTable = rangetable.Merge(
	rangetable.New(runesOf(
		span{0x1100, 0x115F},
		span{0x3000, 0x3000},
		span{0x3001, 0x303F},
		span{0x3040, 0x30FF},
		span{0x3400, 0x4DBF},
		span{0x4E00, 0x9FFF},
		span{0xAC00, 0xD7A3},
		span{0xFF01, 0xFF5E},
	)...),
	wideEmojiTable,
)

func hasFlag(t *unicode.RangeTable, r rune) bool {
	return unicode.Is(t, r)
}
