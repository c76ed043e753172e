package ucd

// SentenceCategory is a TR29 Sentence_Break property value.
type SentenceCategory uint8

const (
	SCOther SentenceCategory = iota
	SCCR
	SCLF
	SCExtend
	SCSep
	SCFormat
	SCSp
	SCLower
	SCUpper
	SCOLetter
	SCNumeric
	SCATerm
	SCSContinue
	SCSTerm
	SCClose
)

// sentenceRanges is the curated subset of SentenceBreakProperty.txt this
// package ships with, pre-split around overlaps the same way wordRanges
// is (see its comment) so the whole table is binary searchable.
var sentenceRanges = []Range[SentenceCategory]{
	{0x000D, 0x000D, SCCR},
	{0x000A, 0x000A, SCLF},
	{0x0085, 0x0085, SCSep},
	{0x2028, 0x2029, SCSep},
	{0x0009, 0x0009, SCSp},
	{0x000B, 0x000C, SCSp},
	{0x0020, 0x0020, SCSp},
	{0x00A0, 0x00A0, SCSp},
	{0x1680, 0x1680, SCSp},
	{0x2000, 0x200A, SCSp},
	{0x202F, 0x202F, SCSp},
	{0x205F, 0x205F, SCSp},
	{0x3000, 0x3000, SCSp},
	{0x002E, 0x002E, SCATerm},
	{0x2024, 0x2024, SCATerm},
	{0xFE52, 0xFE52, SCATerm},
	{0xFF0E, 0xFF0E, SCATerm},
	{0x0021, 0x0021, SCSTerm},
	{0x003F, 0x003F, SCSTerm},
	{0x0589, 0x0589, SCSTerm},
	{0x061D, 0x061F, SCSTerm},
	{0x203C, 0x203D, SCSTerm},
	{0xFE56, 0xFE57, SCSTerm},
	{0xFF01, 0xFF01, SCSTerm},
	{0xFF1F, 0xFF1F, SCSTerm},
	{0x002C, 0x002C, SCSContinue},
	{0x003A, 0x003A, SCSContinue},
	{0x003B, 0x003B, SCSContinue},
	{0x2013, 0x2014, SCSContinue},
	{0x0028, 0x0028, SCClose},
	{0x0029, 0x0029, SCClose},
	{0x005B, 0x005B, SCClose},
	{0x005D, 0x005D, SCClose},
	{0x007B, 0x007B, SCClose},
	{0x007D, 0x007D, SCClose},
	{0x00AB, 0x00AB, SCClose},
	{0x00BB, 0x00BB, SCClose},
	{0x2018, 0x201F, SCClose},
	{0x0030, 0x0039, SCNumeric},
	{0x0660, 0x0669, SCNumeric},
	{0x06F0, 0x06F9, SCNumeric},
	{0x0966, 0x096F, SCNumeric},
	{0xFF10, 0xFF19, SCNumeric},
	{0x0041, 0x005A, SCUpper},
	{0x00C0, 0x00D6, SCUpper},
	{0x00D8, 0x00DE, SCUpper},
	{0x0391, 0x03A9, SCUpper},
	{0x0410, 0x042F, SCUpper},
	{0x0061, 0x007A, SCLower},
	{0x00DF, 0x00F6, SCLower},
	{0x00F8, 0x00FF, SCLower},
	{0x03B1, 0x03C9, SCLower},
	{0x0430, 0x044F, SCLower},
	{0x00AA, 0x00AA, SCOLetter},
	{0x00B5, 0x00B5, SCOLetter},
	{0x00BA, 0x00BA, SCOLetter},
	{0x00F7, 0x00F7, SCOLetter},
	{0x0100, 0x02AF, SCOLetter},
	{0x0531, 0x0556, SCOLetter},
	{0x0561, 0x0587, SCOLetter},
	{0x05D0, 0x05EA, SCOLetter},
	{0x0620, 0x064A, SCOLetter},
	{0x0900, 0x0900, SCOLetter}, // split below 0x0901-0x094D (Extend)
	{0x0E01, 0x0E30, SCOLetter},
	{0x0F40, 0x0F6C, SCOLetter}, // Tibetan letters
	{0x1000, 0x102A, SCOLetter}, // Myanmar letters
	{0x1100, 0x11FF, SCOLetter},
	{0x3041, 0x30FF, SCOLetter},
	{0x3400, 0x4DBF, SCOLetter},
	{0x4E00, 0x9FFF, SCOLetter},
	{0xAC00, 0xD7A3, SCOLetter},
	{0x0300, 0x036F, SCExtend},
	{0x0483, 0x0489, SCExtend},
	{0x0591, 0x05BD, SCExtend},
	{0x064B, 0x065F, SCExtend},
	{0x0670, 0x0670, SCExtend},
	{0x0901, 0x094D, SCExtend},
	{0x0F71, 0x0F84, SCExtend}, // Tibetan combining marks
	{0x102D, 0x1037, SCExtend}, // Myanmar combining marks
	{0x1039, 0x103A, SCExtend},
	{0xFE00, 0xFE0F, SCExtend},
	{0xFE20, 0xFE2F, SCExtend},
	{0x00AD, 0x00AD, SCFormat},
	{0x200B, 0x200C, SCFormat},
	{0x200E, 0x200F, SCFormat},
	{0x202A, 0x202E, SCFormat},
	{0x2060, 0x2064, SCFormat},
}

var sentenceTable = newTable(sentenceRanges, SCOther)

// SentenceLookup returns the SentenceCategory of codepoint r.
func SentenceLookup(r rune) SentenceCategory {
	return sentenceTable.lookup(r)
}
