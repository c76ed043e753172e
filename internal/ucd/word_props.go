package ucd

// WordCategory is a TR29 Word_Break property value.
type WordCategory uint8

const (
	WCOther WordCategory = iota
	WCCR
	WCLF
	WCNewline
	WCExtend
	WCFormat
	WCZWJ
	WCRegionalIndicator
	WCKatakana
	WCHebrewLetter
	WCALetter
	WCSingleQuote
	WCDoubleQuote
	WCMidNumLet
	WCMidLetter
	WCMidNum
	WCNumeric
	WCExtendNumLet
	WCWSegSpace
)

// wordRanges is the curated subset of WordBreakProperty.txt this package
// ships with. Entries must be non-overlapping: where the underlying UCD
// data has an ALetter-like script range with exceptions inside it (Greek
// ano teleia, Cyrillic combining marks, Devanagari combining marks), the
// broader range is pre-split around the exception rather than relying on
// array-order precedence, so the whole table can be binary searched like
// the general category table.
var wordRanges = []Range[WordCategory]{
	{0x000D, 0x000D, WCCR},
	{0x000A, 0x000A, WCLF},
	{0x000B, 0x000C, WCNewline},
	{0x0085, 0x0085, WCNewline},
	{0x2028, 0x2029, WCNewline},
	{0x0027, 0x0027, WCSingleQuote},
	{0x0022, 0x0022, WCDoubleQuote},
	{0x002E, 0x002E, WCMidNumLet},
	{0x2018, 0x2019, WCMidNumLet},
	{0x2024, 0x2024, WCMidNumLet},
	{0xFE52, 0xFE52, WCMidNumLet},
	{0xFF07, 0xFF07, WCMidNumLet},
	{0xFF0E, 0xFF0E, WCMidNumLet},
	{0x00B7, 0x00B7, WCMidLetter},
	{0x0387, 0x0387, WCMidLetter},
	{0x05F4, 0x05F4, WCMidLetter},
	{0x2027, 0x2027, WCMidLetter},
	{0xFE13, 0xFE13, WCMidLetter},
	{0xFE55, 0xFE55, WCMidLetter},
	{0xFF1A, 0xFF1A, WCMidLetter},
	{0x002C, 0x002C, WCMidNum},
	{0x003B, 0x003B, WCMidNum},
	{0x0589, 0x0589, WCMidNum},
	{0x060C, 0x060C, WCMidNum},
	{0xFE50, 0xFE50, WCMidNum},
	{0xFE54, 0xFE54, WCMidNum},
	{0xFF0C, 0xFF0C, WCMidNum},
	{0xFF1B, 0xFF1B, WCMidNum},
	{0x0030, 0x0039, WCNumeric},
	{0x0660, 0x0669, WCNumeric},
	{0x06F0, 0x06F9, WCNumeric},
	{0x0966, 0x096F, WCNumeric},
	{0xFF10, 0xFF19, WCNumeric},
	{0x005F, 0x005F, WCExtendNumLet},
	{0x203F, 0x2040, WCExtendNumLet},
	{0x2054, 0x2054, WCExtendNumLet},
	{0xFE33, 0xFE34, WCExtendNumLet},
	{0xFE4D, 0xFE4F, WCExtendNumLet},
	{0xFF3F, 0xFF3F, WCExtendNumLet},
	{0x200D, 0x200D, WCZWJ},
	{0x1F1E6, 0x1F1FF, WCRegionalIndicator},
	{0x30A1, 0x30FA, WCKatakana},
	{0x31F0, 0x31FF, WCKatakana},
	{0xFF66, 0xFF9D, WCKatakana},
	{0x05D0, 0x05EA, WCHebrewLetter},
	{0x05EF, 0x05F2, WCHebrewLetter},
	{0xFB1D, 0xFB1D, WCHebrewLetter},
	{0xFB1F, 0xFB28, WCHebrewLetter},
	{0x0041, 0x005A, WCALetter},
	{0x0061, 0x007A, WCALetter},
	{0x00AA, 0x00AA, WCALetter},
	{0x00B5, 0x00B5, WCALetter},
	{0x00BA, 0x00BA, WCALetter},
	{0x00C0, 0x00D6, WCALetter},
	{0x00D8, 0x00F6, WCALetter},
	{0x00F8, 0x02C1, WCALetter},
	{0x0370, 0x0386, WCALetter}, // split below 0x0387 (MidLetter ano teleia)
	{0x0388, 0x03FF, WCALetter},
	{0x0400, 0x0482, WCALetter}, // split below 0x0483-0x0489 (Extend)
	{0x048A, 0x052F, WCALetter},
	{0x0531, 0x0556, WCALetter},
	{0x0561, 0x0587, WCALetter},
	{0x0620, 0x064A, WCALetter},
	{0x0900, 0x0900, WCALetter}, // split around the Extend runs 0x0901-0x0902 and 0x093A-0x094D
	{0x0903, 0x0939, WCALetter},
	{0x0E01, 0x0E30, WCALetter},
	{0x0F40, 0x0F6C, WCALetter}, // Tibetan letters
	{0x1000, 0x102A, WCALetter}, // Myanmar letters
	{0x1100, 0x11FF, WCALetter},
	{0x3400, 0x4DBF, WCALetter},
	{0x4E00, 0x9FFF, WCALetter},
	{0xAC00, 0xD7A3, WCALetter},
	{0x0300, 0x036F, WCExtend},
	{0x0483, 0x0489, WCExtend},
	{0x0591, 0x05BD, WCExtend},
	{0x064B, 0x065F, WCExtend},
	{0x0670, 0x0670, WCExtend},
	{0x0901, 0x0902, WCExtend},
	{0x093A, 0x094D, WCExtend},
	{0x0F71, 0x0F84, WCExtend}, // Tibetan combining marks
	{0x102D, 0x1037, WCExtend}, // Myanmar combining marks
	{0x1039, 0x103A, WCExtend},
	{0xFE00, 0xFE0F, WCExtend},
	{0xFE20, 0xFE2F, WCExtend},
	{0x00AD, 0x00AD, WCFormat},
	{0x200B, 0x200C, WCFormat},
	{0x200E, 0x200F, WCFormat},
	{0x202A, 0x202E, WCFormat},
	{0x2060, 0x2064, WCFormat},
	{0x0020, 0x0020, WCWSegSpace},
}

var wordTable = newTable(wordRanges, WCOther)

// WordLookup returns the WordCategory of codepoint r.
func WordLookup(r rune) WordCategory {
	return wordTable.lookup(r)
}
