package ucd

import "testing"

func TestCategoryIsRequiresExactMinor(t *testing.T) {
	if !LetterLowercase.Is(Letter) {
		t.Error("lowercase letter should report as Letter major")
	}
	if LetterLowercase.Is(LetterUppercase) {
		t.Error("lowercase letter must not report as uppercase minor")
	}
	if !LetterLowercase.Is(LetterLowercase) {
		t.Error("lowercase letter should report as its own minor")
	}
}

func TestLookupASCII(t *testing.T) {
	cases := []struct {
		r    rune
		want Category
	}{
		{'a', LetterLowercase},
		{'A', LetterUppercase},
		{'0', NumberDecimal},
		{' ', SepSpace},
		{'(', PunctOpen},
	}
	for _, c := range cases {
		if got := Lookup(c.r); got != c.want {
			t.Errorf("Lookup(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestLookupGapFill(t *testing.T) {
	// codepoints outside every curated range must resolve to Other, not
	// to a zero value that happens to collide with a real category.
	// U+0500 falls in the gap between the 0x0450-0x04FF and 0x0590-0x05FF
	// curated ranges.
	if got := Lookup(0x0500); got != Other {
		t.Errorf("gap codepoint U+0500 should resolve to Other, got %v", got)
	}
}

func TestMergeGraphemeCategoryPrecedence(t *testing.T) {
	if got := mergeGraphemeCategory(GCExtend, GCInCBExtend); got != GCInCBExtend {
		t.Errorf("Extend+InCB_Extend = %v, want InCB_Extend", got)
	}
	if got := mergeGraphemeCategory(GCInCBExtend, GCZWJ); got != GCZWJ {
		t.Errorf("InCB_Extend+ZWJ = %v, want ZWJ", got)
	}
	if got := mergeGraphemeCategory(GCExtend, GCInCBLinker); got != GCInCBLinker {
		t.Errorf("Extend+InCB_Linker = %v, want InCB_Linker", got)
	}
	if got := mergeGraphemeCategory(GCControl, GCExtend); got != GCControl {
		t.Errorf("unlisted pair should keep first, got %v", got)
	}
}

func TestGraphemeLookupKnownCodepoints(t *testing.T) {
	cases := []struct {
		r    rune
		want GraphemeCategory
	}{
		{'\r', GCCR},
		{'\n', GCLF},
		{0x0308, GCExtend},     // combining diaeresis
		{0x200D, GCZWJ},        // ZWJ
		{0x1F1EB, GCRegionalIndicator},
	}
	for _, c := range cases {
		if got := GraphemeLookup(c.r); got != c.want {
			t.Errorf("GraphemeLookup(%#x) = %v, want %v", c.r, got, c.want)
		}
	}
}
