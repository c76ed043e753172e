package ucd

// generalRanges is the curated subset of the UCD general-category
// extraction that this package ships with: common scripts and symbol
// blocks, sufficient for ASCII-speed lookups and for the segmentation and
// tokenizer packages built on top. Codepoints not covered by any entry
// here are normalized to Other by newTable at init time, matching "no
// gaps" in §4.1. Entries must stay sorted-compatible (non-overlapping);
// the orthogonal Extended_Pictographic/Regional_Indicator/Wide flags are
// layered on afterward from the membership tables in flags.go rather
// than being OR'd into the literals here, since those flags come from a
// genuinely separate UCD source (emoji-data.txt / East Asian Width) and
// can cut across category boundaries.
var generalRanges = []Range[Category]{
	{0x0000, 0x001F, OtherControl},
	{0x0020, 0x0020, SepSpace},
	{0x0021, 0x0023, PunctOther},
	{0x0024, 0x0024, SymbolCurrency},
	{0x0025, 0x0027, PunctOther},
	{0x0028, 0x0028, PunctOpen},
	{0x0029, 0x0029, PunctClose},
	{0x002A, 0x002A, PunctOther},
	{0x002B, 0x002B, SymbolMath},
	{0x002C, 0x002C, PunctOther},
	{0x002D, 0x002D, PunctDash},
	{0x002E, 0x002F, PunctOther},
	{0x0030, 0x0039, NumberDecimal},
	{0x003A, 0x003B, PunctOther},
	{0x003C, 0x003E, SymbolMath},
	{0x003F, 0x0040, PunctOther},
	{0x0041, 0x005A, LetterUppercase},
	{0x005B, 0x005B, PunctOpen},
	{0x005C, 0x005C, PunctOther},
	{0x005D, 0x005D, PunctClose},
	{0x005E, 0x005E, SymbolModifier},
	{0x005F, 0x005F, PunctConnector},
	{0x0060, 0x0060, SymbolModifier},
	{0x0061, 0x007A, LetterLowercase},
	{0x007B, 0x007B, PunctOpen},
	{0x007C, 0x007C, SymbolMath},
	{0x007D, 0x007D, PunctClose},
	{0x007E, 0x007E, SymbolMath},
	{0x007F, 0x009F, OtherControl},
	{0x00A0, 0x00A0, SepSpace},
	{0x00A1, 0x00A1, PunctOther},
	{0x00A2, 0x00A5, SymbolCurrency},
	{0x00A6, 0x00A6, SymbolOther},
	{0x00A7, 0x00A7, PunctOther},
	{0x00A8, 0x00A8, SymbolModifier},
	{0x00A9, 0x00A9, SymbolOther},
	{0x00AA, 0x00AA, LetterOther},
	{0x00AB, 0x00AB, PunctInitQuote},
	{0x00AC, 0x00AC, SymbolMath},
	{0x00AD, 0x00AD, OtherFormat},
	{0x00AE, 0x00AE, SymbolOther},
	{0x00AF, 0x00AF, SymbolModifier},
	{0x00B0, 0x00B0, SymbolOther},
	{0x00B1, 0x00B1, SymbolMath},
	{0x00B2, 0x00B3, NumberOther},
	{0x00B4, 0x00B4, SymbolModifier},
	{0x00B5, 0x00B5, LetterLowercase},
	{0x00B6, 0x00B7, PunctOther},
	{0x00B8, 0x00B8, SymbolModifier},
	{0x00B9, 0x00B9, NumberOther},
	{0x00BA, 0x00BA, LetterOther},
	{0x00BB, 0x00BB, PunctFinalQuote},
	{0x00BC, 0x00BE, NumberOther},
	{0x00BF, 0x00BF, PunctOther},
	{0x00C0, 0x00D6, LetterUppercase},
	{0x00D7, 0x00D7, SymbolMath},
	{0x00D8, 0x00DE, LetterUppercase},
	{0x00DF, 0x00DF, LetterLowercase},
	{0x00E0, 0x00F6, LetterLowercase},
	{0x00F7, 0x00F7, SymbolMath},
	{0x00F8, 0x00FF, LetterLowercase},
	{0x0100, 0x02AF, LetterOther},
	{0x0300, 0x036F, MarkNonSpacing},
	{0x0370, 0x0390, LetterOther},
	{0x0391, 0x03A9, LetterUppercase},
	{0x03AA, 0x03B0, LetterOther},
	{0x03B1, 0x03C9, LetterLowercase},
	{0x03CA, 0x03FF, LetterOther},
	{0x0400, 0x040F, LetterUppercase},
	{0x0410, 0x042F, LetterUppercase},
	{0x0430, 0x044F, LetterLowercase},
	{0x0450, 0x04FF, LetterOther},
	{0x0590, 0x05FF, LetterOther},
	{0x0600, 0x060B, LetterOther},
	{0x060C, 0x060C, PunctOther},
	{0x060D, 0x061A, LetterOther},
	{0x061B, 0x061B, PunctOther},
	{0x061D, 0x061F, PunctOther},
	{0x0620, 0x06FF, LetterOther},
	{0x0700, 0x08FF, LetterOther},
	// Devanagari through Lao as broad LetterOther fills with the virama
	// split out; the Tibetan block (0x0F00-0x0FFF) after them is a
	// non-overlapping, best-effort fill rather than a character-by-
	// character transcription.
	{0x0900, 0x094C, LetterOther},
	{0x094D, 0x094D, MarkNonSpacing}, // DEVANAGARI SIGN VIRAMA
	{0x094E, 0x097F, LetterOther},
	{0x0980, 0x0EFF, LetterOther},
	{0x0F00, 0x0F17, LetterOther},
	{0x0F18, 0x0F19, MarkNonSpacing},
	{0x0F1A, 0x0F34, SymbolOther},
	{0x0F35, 0x0F35, MarkNonSpacing},
	{0x0F36, 0x0F36, SymbolOther},
	{0x0F37, 0x0F37, MarkNonSpacing},
	{0x0F38, 0x0F38, SymbolOther},
	{0x0F39, 0x0F39, MarkNonSpacing},
	{0x0F3A, 0x0F3A, PunctOpen},
	{0x0F3B, 0x0F3B, PunctClose},
	{0x0F3C, 0x0F3C, PunctOpen},
	{0x0F3D, 0x0F3D, PunctClose},
	{0x0F3E, 0x0F3F, MarkSpacing},
	{0x0F40, 0x0F6C, LetterOther},
	{0x0F6D, 0x0F70, LetterOther},
	{0x0F71, 0x0F7E, MarkNonSpacing},
	{0x0F7F, 0x0F7F, MarkSpacing},
	{0x0F80, 0x0F84, MarkNonSpacing},
	{0x0F85, 0x0F85, PunctOther},
	{0x0F86, 0x0F87, MarkNonSpacing},
	{0x0F88, 0x0F8C, LetterOther},
	{0x0F8D, 0x0FBC, MarkNonSpacing},
	{0x0FBD, 0x0FBD, LetterOther},
	{0x0FBE, 0x0FC5, SymbolOther},
	{0x0FC6, 0x0FC6, MarkNonSpacing},
	{0x0FC7, 0x0FCC, SymbolOther},
	{0x0FCD, 0x0FCD, LetterOther},
	{0x0FCE, 0x0FCF, SymbolOther},
	{0x0FD0, 0x0FFF, PunctOther},
	// Myanmar block: letters, combining marks, digits, punctuation, in
	// the same best-effort non-overlapping style as Tibetan above.
	{0x1000, 0x102A, LetterOther},
	{0x102B, 0x1030, MarkNonSpacing},
	{0x1031, 0x1031, LetterModifier},
	{0x1032, 0x1037, MarkNonSpacing},
	{0x1038, 0x1038, MarkSpacing},
	{0x1039, 0x103A, MarkNonSpacing},
	{0x103B, 0x103E, MarkSpacing},
	{0x103F, 0x103F, LetterOther},
	{0x1040, 0x1049, NumberDecimal},
	{0x104A, 0x104F, PunctOther},
	{0x1050, 0x1059, LetterOther},
	{0x105A, 0x10FF, LetterOther},
	{0x1100, 0x115F, LetterOther}, // Hangul Jamo: Wide (split at the East Asian Width boundary)
	{0x1160, 0x11FF, LetterOther}, // Hangul Jamo: not Wide
	{0x2000, 0x200A, SepSpace},
	{0x200B, 0x200F, OtherFormat}, // includes ZWJ (U+200D)
	{0x2010, 0x2015, PunctDash},
	{0x2018, 0x2018, PunctInitQuote},
	{0x2019, 0x2019, PunctFinalQuote},
	{0x201C, 0x201C, PunctInitQuote},
	{0x201D, 0x201D, PunctFinalQuote},
	{0x2020, 0x2027, PunctOther},
	{0x2028, 0x2028, SepLine},
	{0x2029, 0x2029, SepParagraph},
	{0x2030, 0x205E, PunctOther},
	{0x2190, 0x21FF, SymbolMath},
	{0x2200, 0x22FF, SymbolMath},
	{0x2600, 0x27BF, SymbolOther},
	{0x3000, 0x3000, SepSpace},
	{0x3001, 0x303F, PunctOther},
	{0x3040, 0x30FF, LetterOther},
	{0x3400, 0x4DBF, LetterOther},
	{0x4E00, 0x9FFF, LetterOther},
	{0xAC00, 0xD7A3, LetterOther},
	{0xD800, 0xDFFF, OtherSurrogate},
	{0xE000, 0xF8FF, OtherPrivateUse},
	{0xFF01, 0xFF5E, PunctOther},
	{0x1F1E6, 0x1F1FF, SymbolOther},
	{0x1F300, 0x1F5FF, SymbolOther},
	{0x1F600, 0x1F64F, SymbolOther},
	{0x1F680, 0x1F6FF, SymbolOther},
	{0x1F900, 0x1F9FF, SymbolOther},
	{0x1FA70, 0x1FAFF, SymbolOther},
}

var general = buildGeneralTable()

// buildGeneralTable layers the orthogonal membership flags from flags.go
// onto the binary-searchable category table: each curated range is
// uniform with respect to those flags by construction, so checking the
// range's own low bound is sufficient.
func buildGeneralTable() *table[Category] {
	t := newTable(generalRanges, Other)
	applyFlagsToRanges(t.ranges)
	applyFlagsToASCII(&t.ascii)
	return t
}

func applyFlagsToRanges(ranges []Range[Category]) {
	for i, rg := range ranges {
		ranges[i].Cat = withFlags(rg.Cat, rg.Lo)
	}
}

func applyFlagsToASCII(ascii *[256]Category) {
	for i := range ascii {
		ascii[i] = withFlags(ascii[i], rune(i))
	}
}

func withFlags(cat Category, r rune) Category {
	if hasFlag(extendedPictographicTable, r) {
		cat |= ExtendedPictographic
	}
	if hasFlag(regionalIndicatorTable, r) {
		cat |= RegionalIndicator
	}
	if hasFlag(wideTable, r) {
		cat |= Wide
	}
	return cat
}

// Lookup returns the general Category of codepoint r, per §4.1's binary
// search (fast-pathed for the first 256 codepoints) over a curated,
// gap-filled range table.
func Lookup(r rune) Category {
	return general.lookup(r)
}
