package graphemes

import (
	"reflect"
	"testing"
)

// conformanceCase mirrors one line of the official GraphemeBreakTest.txt
// format: clusters holds the runs of codepoints between each ÷ boundary.
// Cases are built from the break rule each is meant to exercise rather
// than copied from the Unicode test data file itself (no network access
// here), but checked the same way a real conformance run would check it.
type conformanceCase struct {
	rule     string
	clusters [][]rune
}

func (c conformanceCase) text() string {
	var s string
	for _, cl := range c.clusters {
		s += string(cl)
	}
	return s
}

func (c conformanceCase) want() []string {
	out := make([]string, len(c.clusters))
	for i, cl := range c.clusters {
		out[i] = string(cl)
	}
	return out
}

func TestGraphemeConformance(t *testing.T) {
	cases := []conformanceCase{
		{"GB3 (CR x LF)", [][]rune{{'\r', '\n'}}},
		{"GB4/GB5 (break around CR)", [][]rune{{'a'}, {'\r'}, {'b'}}},
		{"GB9 (base x Extend)", [][]rune{{'a', 0x0308}}},                  // a + combining diaeresis
		{"GB6 (Hangul L x V)", [][]rune{{0x1100, 0x1161}}},                // jamo L + V
		{"GB7 (Hangul LV x T)", [][]rune{{0xAC00, 0x11A8}}},               // precomposed LV + jamo T
		{"GB8 (Hangul LVT x T)", [][]rune{{0xAC01, 0x11A8}}},              // precomposed LVT + jamo T
		{"GB9a (base x SpacingMark)", [][]rune{{0x0915, 0x093E}}},         // Devanagari ka + aa-matra
		{"GB9b (Prepend x base)", [][]rune{{0x0600, 'a'}}},                // Arabic number sign + a
		{"GB11 (pictographic ZWJ pictographic)", [][]rune{{0x1F600, 0x200D, 0x1F600}}},
		{"GB12 (RI x RI, one pair)", [][]rune{{0x1F1EB, 0x1F1F7}}},
		{"GB13 (RI x RI, pair then singleton)", [][]rune{{0x1F1EB, 0x1F1F7}, {0x1F1E9}}},
		{"GB999 (otherwise break)", [][]rune{{'a'}, {'b'}}},
	}

	for _, c := range cases {
		t.Run(c.rule, func(t *testing.T) {
			got := collect(c.text())
			want := c.want()
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%s: got %q, want %q", c.rule, got, want)
			}
		})
	}
}

// TestGraphemeConformanceHangulFullSyllableSpace spot-checks the
// algorithmic Hangul classification across the syllable space rather
// than only its first few codepoints, since that arithmetic (not a
// curated range) is what closes the bulk of the grapheme table's
// codepoint coverage.
func TestGraphemeConformanceHangulFullSyllableSpace(t *testing.T) {
	cases := []rune{
		0xAC00,      // first syllable in the block (LV)
		0xAC01,      // second syllable (LVT)
		0xB098,      // an interior LV syllable
		0xD7A3 - 27, // an LV syllable near the end of the block
	}
	for _, lv := range cases {
		s := string(lv) + string(rune(0x11A8)) // + trailing consonant jamo T
		got := collect(s)
		if len(got) != 1 {
			t.Errorf("Hangul syllable %#x + T: got %d clusters, want 1: %q", lv, len(got), got)
		}
	}
}
