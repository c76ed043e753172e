// Package words finds word boundaries per Unicode Standard Annex #29,
// given a table of Word_Break property values.
package words

import (
	"github.com/clipperhouse/stringish"
	"github.com/clipperhouse/textsearch/internal/stringish/utf8"
	"github.com/clipperhouse/textsearch/internal/ucd"
)

type wc = ucd.WordCategory

func isAHLetter(c wc) bool { return c == ucd.WCALetter || c == ucd.WCHebrewLetter }
func isMidNumLetQ(c wc) bool {
	return c == ucd.WCMidNumLet || c == ucd.WCSingleQuote
}
func isIgnorable(c wc) bool {
	return c == ucd.WCExtend || c == ucd.WCFormat || c == ucd.WCZWJ
}
func isNewline(c wc) bool {
	return c == ucd.WCNewline || c == ucd.WCCR || c == ucd.WCLF
}
func isNumericOrAHLetter(c wc) bool { return c == ucd.WCNumeric || isAHLetter(c) }

// NextBreak returns the byte offset of the next word boundary in data at
// or after offset. When offset is the end of data, it returns offset, nil.
func NextBreak[T stringish.Interface](data T, offset int) (int, error) {
	n := len(data)
	if offset < 0 || offset > n {
		return 0, &DomainError{Argument: "offset", Offset: offset, Length: n}
	}
	if offset == n {
		return offset, nil
	}

	r, w := utf8.DecodeRune(data[offset:])
	current := ucd.WordLookup(r)
	pos := offset + w

	var lastExIgnore, lastLastExIgnore wc
	riCount := 0

	for pos < n {
		last := current
		if !isIgnorable(last) {
			lastLastExIgnore = lastExIgnore
			lastExIgnore = last
		}

		r2, w2 := utf8.DecodeRune(data[pos:])
		current = ucd.WordLookup(r2)

		// WB3
		if current == ucd.WCLF && last == ucd.WCCR {
			pos += w2
			continue
		}
		// WB3a, WB3b
		if isNewline(last) || isNewline(current) {
			break
		}
		// WB3c
		if last == ucd.WCZWJ && ucd.Lookup(r2).Is(ucd.ExtendedPictographic) {
			pos += w2
			continue
		}
		// WB3d
		if current == ucd.WCWSegSpace && last == ucd.WCWSegSpace {
			pos += w2
			continue
		}
		// WB4
		if isIgnorable(current) {
			pos += w2
			continue
		}

		// WB5
		if isAHLetter(current) && isAHLetter(lastExIgnore) {
			pos += w2
			continue
		}
		// WB6
		if (current == ucd.WCMidLetter || isMidNumLetQ(current)) && isAHLetter(lastExIgnore) {
			if forwardHasCategory(data[pos+w2:], isAHLetter) {
				pos += w2
				continue
			}
		}
		// WB7
		if isAHLetter(current) && (lastExIgnore == ucd.WCMidLetter || isMidNumLetQ(lastExIgnore)) && isAHLetter(lastLastExIgnore) {
			pos += w2
			continue
		}
		// WB7a
		if current == ucd.WCSingleQuote && lastExIgnore == ucd.WCHebrewLetter {
			pos += w2
			continue
		}
		// WB7b
		if current == ucd.WCDoubleQuote && lastExIgnore == ucd.WCHebrewLetter {
			if forwardHasCategory(data[pos+w2:], func(c wc) bool { return c == ucd.WCHebrewLetter }) {
				pos += w2
				continue
			}
		}
		// WB7c
		if current == ucd.WCHebrewLetter && lastExIgnore == ucd.WCDoubleQuote && lastLastExIgnore == ucd.WCHebrewLetter {
			pos += w2
			continue
		}
		// WB8, WB9, WB10
		if isNumericOrAHLetter(current) && isNumericOrAHLetter(lastExIgnore) {
			pos += w2
			continue
		}
		// WB11
		if current == ucd.WCNumeric && (lastExIgnore == ucd.WCMidNum || isMidNumLetQ(lastExIgnore)) && lastLastExIgnore == ucd.WCNumeric {
			pos += w2
			continue
		}
		// WB12
		if (current == ucd.WCMidNum || isMidNumLetQ(current)) && lastExIgnore == ucd.WCNumeric {
			if forwardHasCategory(data[pos+w2:], func(c wc) bool { return c == ucd.WCNumeric }) {
				pos += w2
				continue
			}
		}
		// WB13
		if current == ucd.WCKatakana && lastExIgnore == ucd.WCKatakana {
			pos += w2
			continue
		}
		// WB13a
		if current == ucd.WCExtendNumLet && (isAHLetter(lastExIgnore) || lastExIgnore == ucd.WCNumeric || lastExIgnore == ucd.WCKatakana || lastExIgnore == ucd.WCExtendNumLet) {
			pos += w2
			continue
		}
		// WB13b
		if (isAHLetter(current) || current == ucd.WCNumeric || current == ucd.WCKatakana) && lastExIgnore == ucd.WCExtendNumLet {
			pos += w2
			continue
		}
		// WB15, WB16
		if current == ucd.WCRegionalIndicator && lastExIgnore == ucd.WCRegionalIndicator {
			riCount++
			if riCount%2 == 1 {
				pos += w2
				continue
			}
		}

		// WB999
		break
	}

	return pos, nil
}

// forwardHasCategory looks ahead in data for a rune satisfying want,
// skipping over Extend/Format/ZWJ on the way, matching the "ignoring
// Extend & Format & ZWJ" transparency WB4 implies for later rules.
func forwardHasCategory[T stringish.Interface](data T, want func(wc) bool) bool {
	i := 0
	for i < len(data) {
		r, w := utf8.DecodeRune(data[i:])
		c := ucd.WordLookup(r)
		if isIgnorable(c) {
			i += w
			continue
		}
		return want(c)
	}
	return false
}
