// Package ucd holds the Unicode property tables that back the grapheme,
// word, and sentence break engines, plus the general codepoint category
// table used by the segmentation facade and tokenizer pipeline.
//
// The tables are a hand-curated subset of the Unicode Character Database,
// checked in as Go range literals; they do not cover every assigned
// codepoint, and a codepoint outside every curated range resolves to the
// table's Other value. At package init the ranges are sorted and
// gap-filled, and the grapheme ranges are merged with their
// Indic_Conjunct_Break overlay; Hangul syllables are classified
// arithmetically. Lookups then index a direct array for the first 256
// codepoints and binary search sorted slices beyond that.
package ucd

// Version is the Unicode Character Database version this package's
// tables were generated from. The segmentation engines assert this
// matches their own compiled-in expectation at package init.
const Version = "15.1"
