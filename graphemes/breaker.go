// Package graphemes finds grapheme cluster boundaries per Unicode
// Standard Annex #29, given a table of Grapheme_Cluster_Break and
// Indic_Conjunct_Break property values.
package graphemes

import (
	"github.com/clipperhouse/stringish"
	"github.com/clipperhouse/textsearch/internal/stringish/utf8"
	"github.com/clipperhouse/textsearch/internal/ucd"
)

// NextBreak returns the byte offset of the next grapheme cluster
// boundary in data at or after offset. offset must land on a codepoint
// boundary; the result always does too. When offset is the end of data,
// NextBreak returns offset, nil: there is no cluster to extend.
func NextBreak[T stringish.Interface](data T, offset int) (int, error) {
	n := len(data)
	if offset < 0 || offset > n {
		return 0, &DomainError{Argument: "offset", Offset: offset, Length: n}
	}
	if offset == n {
		return offset, nil
	}

	r, w := utf8.DecodeRune(data[offset:])
	history := []ucd.GraphemeCategory{ucd.GraphemeLookup(r)}
	char := history[0]
	pos := offset + w
	committed := pos

	for pos < n {
		r2, w2 := utf8.DecodeRune(data[pos:])
		lookahead := ucd.GraphemeLookup(r2)

		// GB3: CR x LF never splits, and GB4 always breaks right after,
		// so this pair is a complete cluster on its own.
		if char == ucd.GCCR && lookahead == ucd.GCLF {
			return pos + w2, nil
		}

		// GB4: break after controls, CR, LF.
		if char == ucd.GCControl || char == ucd.GCCR || char == ucd.GCLF {
			break
		}
		// GB5: break before controls, CR, LF.
		if lookahead == ucd.GCControl || lookahead == ucd.GCCR || lookahead == ucd.GCLF {
			break
		}

		// GB12, GB13: Regional_Indicator pairs up exactly once per
		// cluster; a third RI starts a new cluster. Handled specially
		// because, unlike the other rules, matching it consumes two
		// codepoints and then re-checks GB9 before continuing.
		if char == ucd.GCRegionalIndicator && lookahead == ucd.GCRegionalIndicator {
			history = append(history, lookahead)
			pos += w2
			if pos >= n {
				return pos, nil
			}
			r3, w3 := utf8.DecodeRune(data[pos:])
			la2 := ucd.GraphemeLookup(r3)
			if la2 == ucd.GCExtend || la2 == ucd.GCZWJ || la2 == ucd.GCInCBExtend {
				history = append(history, la2)
				char = la2
				pos += w3
				committed = pos
				continue
			}
			return pos, nil
		}

		merge := false
		switch {
		case char == ucd.GCL && (lookahead == ucd.GCL || lookahead == ucd.GCV || lookahead == ucd.GCLV || lookahead == ucd.GCLVT):
			merge = true // GB6
		case (char == ucd.GCLV || char == ucd.GCV) && (lookahead == ucd.GCV || lookahead == ucd.GCT):
			merge = true // GB7
		case (char == ucd.GCLVT || char == ucd.GCT) && lookahead == ucd.GCT:
			merge = true // GB8
		case lookahead == ucd.GCExtend || lookahead == ucd.GCZWJ || lookahead == ucd.GCInCBExtend || lookahead == ucd.GCInCBLinker:
			merge = true // GB9
		case lookahead == ucd.GCSpacingMark:
			merge = true // GB9a
		case char == ucd.GCPrepend:
			merge = true // GB9b
		case lookahead == ucd.GCInCBConsonant && doesGB9cApply(history):
			merge = true // GB9c
		case lookahead == ucd.GCExtendedPictographic && char == ucd.GCZWJ && doesGB11Apply(history[:len(history)-1]):
			merge = true // GB11
		}

		if !merge {
			break // GB999: otherwise break
		}

		history = append(history, lookahead)
		char = lookahead
		pos += w2
		committed = pos
	}

	return committed, nil
}

// doesGB9cApply implements the Indic_Conjunct_Break backward scan: a
// run of InCB_Extend/ZWJ back from the current position must reach an
// InCB_Linker before (eventually) an InCB_Consonant, per GB9c.
func doesGB9cApply(seen []ucd.GraphemeCategory) bool {
	sawLinker := false
	for i := len(seen) - 1; i >= 0; i-- {
		switch seen[i] {
		case ucd.GCInCBConsonant:
			return sawLinker
		case ucd.GCInCBLinker:
			sawLinker = true
		case ucd.GCInCBExtend, ucd.GCZWJ:
			// keep scanning backward through the run
		default:
			return false
		}
	}
	return false
}

// doesGB11Apply implements GB11's backward scan: an Extended_Pictographic
// followed by any run of Extend, then a ZWJ (already consumed by the
// caller as char), may absorb a following Extended_Pictographic.
func doesGB11Apply(seen []ucd.GraphemeCategory) bool {
	for i := len(seen) - 1; i >= 0; i-- {
		switch seen[i] {
		case ucd.GCExtend, ucd.GCInCBExtend:
			continue
		default:
			return seen[i] == ucd.GCExtendedPictographic
		}
	}
	return false
}
