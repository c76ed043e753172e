// Package sentences finds sentence boundaries per Unicode Standard
// Annex #29, given a table of Sentence_Break property values.
package sentences

import (
	"github.com/clipperhouse/stringish"
	"github.com/clipperhouse/textsearch/internal/stringish/utf8"
	"github.com/clipperhouse/textsearch/internal/ucd"
)

type sc = ucd.SentenceCategory

func isSATerm(c sc) bool  { return c == ucd.SCATerm || c == ucd.SCSTerm }
func isParaSep(c sc) bool { return c == ucd.SCSep || c == ucd.SCCR || c == ucd.SCLF }
func isIgnore(c sc) bool  { return c == ucd.SCExtend || c == ucd.SCFormat }

// NextBreak returns the byte offset of the next sentence boundary in
// data at or after offset. When offset is the end of data, it returns
// offset, nil.
func NextBreak[T stringish.Interface](data T, offset int) (int, error) {
	n := len(data)
	if offset < 0 || offset > n {
		return 0, &DomainError{Argument: "offset", Offset: offset, Length: n}
	}
	if offset == n {
		return offset, nil
	}

	r, w := utf8.DecodeRune(data[offset:])
	current := ucd.SentenceLookup(r)
	pos := offset + w

	var lastExIgnore, lastLastExIgnore sc
	var lastExIgnoreSp, lastExIgnoreClose, lastExIgnoreSpClose sc

	for pos < n {
		last := current

		if !isIgnore(last) {
			lastLastExIgnore = lastExIgnore
			lastExIgnore = last
		}
		if lastExIgnore != ucd.SCSp {
			lastExIgnoreSp = lastExIgnore
		}
		if lastExIgnore != ucd.SCClose {
			lastExIgnoreClose = lastExIgnore
		}
		if lastExIgnoreSp != ucd.SCClose {
			lastExIgnoreSpClose = lastExIgnoreSp
		}

		r2, w2 := utf8.DecodeRune(data[pos:])
		current = ucd.SentenceLookup(r2)

		// SB3
		if current == ucd.SCLF && last == ucd.SCCR {
			pos += w2
			continue
		}
		// SB4
		if isParaSep(last) {
			break
		}
		// SB5
		if isIgnore(current) {
			pos += w2
			continue
		}
		// SB6
		if current == ucd.SCNumeric && lastExIgnore == ucd.SCATerm {
			pos += w2
			continue
		}
		// SB7
		if current == ucd.SCUpper && lastExIgnore == ucd.SCATerm && (lastLastExIgnore == ucd.SCUpper || lastLastExIgnore == ucd.SCLower) {
			pos += w2
			continue
		}
		// SB8
		if lastExIgnoreSpClose == ucd.SCATerm {
			p := pos
			for p < n {
				r3, w3 := utf8.DecodeRune(data[p:])
				c3 := ucd.SentenceLookup(r3)
				if c3 == ucd.SCOLetter || c3 == ucd.SCUpper || c3 == ucd.SCLower || isParaSep(c3) || isSATerm(c3) {
					break
				}
				p += w3
			}
			if found, ok := forwardLower(data, p); ok {
				pos = found
				continue
			}
		}
		// SB8a
		if (current == ucd.SCSContinue || isSATerm(current)) && isSATerm(lastExIgnoreSpClose) {
			pos += w2
			continue
		}
		// SB9
		if (current == ucd.SCClose || current == ucd.SCSp || isParaSep(current)) && isSATerm(lastExIgnoreClose) {
			pos += w2
			continue
		}
		// SB10
		if (current == ucd.SCSp || isParaSep(current)) && isSATerm(lastExIgnoreSpClose) {
			pos += w2
			continue
		}
		// SB11
		if isSATerm(lastExIgnore) || lastExIgnore == ucd.SCClose || lastExIgnore == ucd.SCSp || isParaSep(lastExIgnore) {
			p := pos
			if idx, ok := previousIndexMatching(data[:p], isParaSep); ok {
				p = idx
			}
			for {
				idx, ok := previousIndexMatching(data[:p], func(c sc) bool { return c == ucd.SCSp })
				if !ok {
					break
				}
				p = idx
			}
			for {
				idx, ok := previousIndexMatching(data[:p], func(c sc) bool { return c == ucd.SCClose })
				if !ok {
					break
				}
				p = idx
			}
			if hasPrecedingMatch(data[:p], isSATerm) {
				break
			}
		}

		// SB998
		pos += w2
	}

	return pos, nil
}

// forwardLower scans forward from p skipping Extend/Format, and reports
// the byte offset just past the first non-ignored rune if it is Lower.
func forwardLower[T stringish.Interface](data T, p int) (int, bool) {
	i := p
	for i < len(data) {
		r, w := utf8.DecodeRune(data[i:])
		c := ucd.SentenceLookup(r)
		if isIgnore(c) {
			i += w
			continue
		}
		if c == ucd.SCLower {
			return i + w, true
		}
		return 0, false
	}
	return 0, false
}

// previousIndexMatching works backward from the end of data, skipping
// Extend/Format, and returns the byte index of the nearest rune
// matching want.
func previousIndexMatching[T stringish.Interface](data T, want func(sc) bool) (int, bool) {
	i := len(data)
	for i > 0 {
		r, w := utf8.DecodeLastRune(data[:i])
		i -= w
		c := ucd.SentenceLookup(r)
		if isIgnore(c) {
			continue
		}
		if want(c) {
			return i, true
		}
		return 0, false
	}
	return 0, false
}

// hasPrecedingMatch reports whether previousIndexMatching would find a
// match anywhere before the end of data.
func hasPrecedingMatch[T stringish.Interface](data T, want func(sc) bool) bool {
	_, ok := previousIndexMatching(data, want)
	return ok
}
