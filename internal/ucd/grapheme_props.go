package ucd

// GraphemeCategory is a TR29 Grapheme_Cluster_Break property value, plus
// the Indic_Conjunct_Break (InCB) values needed for GB9c. Unlike Category,
// this is a single enumerated value per codepoint, not a bitfield:
// buildGraphemeRanges resolves overlaps (a codepoint can be both Extend
// and InCB_Extend in the raw UCD extraction) down to one value per
// §4.1's merge precedence at package init, before the table is ever
// binary searched.
type GraphemeCategory uint8

const (
	GCOther GraphemeCategory = iota
	GCControl
	GCCR
	GCLF
	GCExtend
	GCZWJ
	GCRegionalIndicator
	GCPrepend
	GCSpacingMark
	GCL
	GCV
	GCT
	GCLV
	GCLVT
	GCExtendedPictographic
	GCInCBLinker
	GCInCBConsonant
	GCInCBExtend
)

// mergeGraphemeCategory resolves a codepoint that the raw UCD extraction
// assigns more than one of these properties to, per §4.1's fixed
// precedence:
//
//	(Extend, InCB_Extend)  -> InCB_Extend
//	(InCB_Extend, ZWJ)     -> ZWJ
//	(Extend, InCB_Linker)  -> InCB_Linker
//	otherwise              -> first wins
//
// buildGraphemeRanges calls this once per overlapping codepoint span
// while layering incbRanges onto graphemeBreakRanges, which is how a
// codepoint ends up carrying both a GraphemeBreakProperty.txt value and
// a DerivedCoreProperties.txt InCB value in the real extraction.
func mergeGraphemeCategory(first, second GraphemeCategory) GraphemeCategory {
	switch {
	case first == GCExtend && second == GCInCBExtend:
		return GCInCBExtend
	case first == GCInCBExtend && second == GCZWJ:
		return GCZWJ
	case first == GCExtend && second == GCInCBLinker:
		return GCInCBLinker
	default:
		return first
	}
}

// graphemeBreakRanges is the curated subset of GraphemeBreakProperty.txt
// and emoji-data.txt (Extended_Pictographic) this package ships with.
// Hangul syllables are handled algorithmically (see hangulSyllableCategory)
// rather than tabulated here: the LV/LVT split repeats every 28
// codepoints across all 11,172 precomposed syllables, which compresses
// far better as arithmetic than as curated ranges.
var graphemeBreakRanges = []Range[GraphemeCategory]{
	{0x000D, 0x000D, GCCR},
	{0x000A, 0x000A, GCLF},
	{0x0000, 0x0009, GCControl},
	{0x000B, 0x000C, GCControl},
	{0x000E, 0x001F, GCControl},
	{0x007F, 0x009F, GCControl},
	{0x00AD, 0x00AD, GCControl},
	{0x0300, 0x036F, GCExtend},
	{0x0483, 0x0489, GCExtend},
	{0x0591, 0x05BD, GCExtend},
	{0x05BF, 0x05BF, GCExtend},
	{0x0610, 0x061A, GCExtend},
	{0x064B, 0x065F, GCExtend},
	{0x0670, 0x0670, GCExtend},
	{0x06D6, 0x06DC, GCExtend},
	{0x0901, 0x0902, GCExtend},
	{0x093A, 0x093A, GCExtend},
	{0x093C, 0x093C, GCExtend},
	{0x0941, 0x0948, GCExtend},
	{0x094D, 0x094D, GCExtend}, // DEVANAGARI SIGN VIRAMA
	{0x0E31, 0x0E31, GCExtend},
	{0x0E34, 0x0E3A, GCExtend},
	{0x0E47, 0x0E4E, GCExtend},
	{0x0F18, 0x0F19, GCExtend},
	{0x0F35, 0x0F35, GCExtend},
	{0x0F37, 0x0F37, GCExtend},
	{0x0F39, 0x0F39, GCExtend},
	{0x0F71, 0x0F7E, GCExtend},
	{0x0F80, 0x0F84, GCExtend},
	{0x0F86, 0x0F87, GCExtend},
	{0x0F8D, 0x0FBC, GCExtend},
	{0x102D, 0x1030, GCExtend},
	{0x1032, 0x1037, GCExtend},
	{0x1039, 0x103A, GCExtend},
	{0x103D, 0x103E, GCExtend},
	{0x1058, 0x1059, GCExtend},
	{0x1100, 0x115F, GCL},
	{0x1160, 0x11A7, GCV},
	{0x11A8, 0x11FF, GCT},
	{0x1AB0, 0x1AFF, GCExtend},
	{0x1DC0, 0x1DFF, GCExtend},
	{0x200D, 0x200D, GCZWJ},
	{0x20D0, 0x20FF, GCExtend},
	{0x0903, 0x0903, GCSpacingMark},
	{0x093B, 0x093B, GCSpacingMark},
	{0x093E, 0x0940, GCSpacingMark},
	{0xFE00, 0xFE0F, GCExtend},
	{0xFE20, 0xFE2F, GCExtend},
	{0x1F1E6, 0x1F1FF, GCRegionalIndicator},
	{0x0E01, 0x0E30, GCInCBConsonant},
	{0x0915, 0x0939, GCInCBConsonant},
	{0x2600, 0x27BF, GCExtendedPictographic},
	{0x1F300, 0x1F3FA, GCExtendedPictographic},
	{0x1F3FB, 0x1F3FF, GCExtend}, // emoji skin tone modifiers
	{0x1F400, 0x1F5FF, GCExtendedPictographic},
	{0x1F600, 0x1F64F, GCExtendedPictographic},
	{0x1F680, 0x1F6FF, GCExtendedPictographic},
	{0x1F900, 0x1F9FF, GCExtendedPictographic},
	{0x1FA70, 0x1FAFF, GCExtendedPictographic},
	{0x0600, 0x0605, GCPrepend},
	{0x06DD, 0x06DD, GCPrepend},
	{0x0890, 0x0891, GCPrepend},
	{0x08E2, 0x08E2, GCPrepend},
}

// incbRanges is the curated subset of DerivedCoreProperties.txt's
// Indic_Conjunct_Break values: these overlap graphemeBreakRanges at
// 0x093C and 0x094D, which is exactly the case mergeGraphemeCategory
// exists to resolve.
var incbRanges = []Range[GraphemeCategory]{
	{0x093C, 0x093C, GCInCBExtend},
	{0x094D, 0x094D, GCInCBLinker},
	{0x0915, 0x0939, GCInCBConsonant},
	{0x0E01, 0x0E30, GCInCBConsonant},
}

// graphemeRanges is the fully resolved, non-overlapping range set built
// by layering incbRanges onto graphemeBreakRanges via mergeGraphemeCategory.
var graphemeRanges = buildGraphemeRanges()

func buildGraphemeRanges() []Range[GraphemeCategory] {
	base := make([]Range[GraphemeCategory], len(graphemeBreakRanges))
	copy(base, graphemeBreakRanges)
	return overlayRanges(base, incbRanges, mergeGraphemeCategory)
}

// overlayRanges layers overlay onto base, splitting base entries where
// an overlay range intersects them and resolving the intersection with
// combine(baseCat, overlayCat). Overlay spans that fall outside every
// base entry are inserted as-is. base must be non-overlapping, and the
// result is too; neither needs to be sorted, since newTable sorts the
// ranges before searching them.
func overlayRanges[C any](base, overlay []Range[C], combine func(b, o C) C) []Range[C] {
	segments := make([]Range[C], len(base))
	copy(segments, base)

	for _, o := range overlay {
		var next []Range[C]
		covered := false
		for _, s := range segments {
			if o.Hi < s.Lo || o.Lo > s.Hi {
				next = append(next, s)
				continue
			}
			covered = true
			if o.Lo > s.Lo {
				next = append(next, Range[C]{Lo: s.Lo, Hi: o.Lo - 1, Cat: s.Cat})
			}
			lo, hi := s.Lo, s.Hi
			if o.Lo > lo {
				lo = o.Lo
			}
			if o.Hi < hi {
				hi = o.Hi
			}
			next = append(next, Range[C]{Lo: lo, Hi: hi, Cat: combine(s.Cat, o.Cat)})
			if o.Hi < s.Hi {
				next = append(next, Range[C]{Lo: o.Hi + 1, Hi: s.Hi, Cat: s.Cat})
			}
		}
		if !covered {
			next = append(next, o)
		}
		segments = next
	}

	return segments
}

// Hangul syllable constants per the standard composition algorithm
// (Unicode §3.12): every precomposed syllable in [SBase, SBase+SCount)
// is either LV (no trailing consonant) or LVT, decidable by arithmetic
// rather than a ~11,172-entry table.
const (
	hangulSBase  = 0xAC00
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

func hangulSyllableCategory(r rune) (GraphemeCategory, bool) {
	if r < hangulSBase || r >= hangulSBase+hangulSCount {
		return GCOther, false
	}
	sIndex := r - hangulSBase
	if sIndex%hangulTCount == 0 {
		return GCLV, true
	}
	return GCLVT, true
}

var graphemeTable = newTable(graphemeRanges, GCOther)

// GraphemeLookup returns the GraphemeCategory of codepoint r, ASCII
// fast-pathed the way §4.1 allows.
func GraphemeLookup(r rune) GraphemeCategory {
	if cat, ok := hangulSyllableCategory(r); ok {
		return cat
	}
	return graphemeTable.lookup(r)
}
