package tokenize

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/textsearch/internal/ucd"
)

// ParseNgramSizes parses a range spec such as "3", "3,5", "3-7", or
// "2-3,3-9" into a sorted, deduplicated set of positive n-gram sizes.
// A descending range (e.g. "9-3") contributes nothing.
func ParseNgramSizes(spec string) ([]int, error) {
	seen := map[int]bool{}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if dash := strings.IndexByte(part, '-'); dash >= 0 {
			lo, err := strconv.Atoi(strings.TrimSpace(part[:dash]))
			if err != nil {
				return nil, &ConfigError{Field: "ngrams", Reason: "bad range start in " + part}
			}
			hi, err := strconv.Atoi(strings.TrimSpace(part[dash+1:]))
			if err != nil {
				return nil, &ConfigError{Field: "ngrams", Reason: "bad range end in " + part}
			}
			for n := lo; n <= hi; n++ {
				if n > 0 {
					seen[n] = true
				}
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, &ConfigError{Field: "ngrams", Reason: "not a number: " + part}
		}
		if n > 0 {
			seen[n] = true
		}
	}
	if len(seen) == 0 {
		return nil, &ConfigError{Field: "ngrams", Reason: "no positive sizes in " + spec}
	}
	sizes := make([]int, 0, len(seen))
	for n := range seen {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)
	return sizes, nil
}

// NgramConfig configures the n-gram tokenizer wrapper.
type NgramConfig struct {
	Sizes            []int
	IncludeCategories CategorySet
}

// NewNgramTokenizer builds a Tokenizer emitting codepoint n-grams, per
// §4.9. If inner is nil, n-grams are taken over the whole input; if
// inner is given (typically the Unicode tokenizer), n-grams are taken
// within each of inner's tokens independently.
func NewNgramTokenizer(inner Tokenizer, cfg NgramConfig) Tokenizer {
	sizes := append([]int(nil), cfg.Sizes...)
	sort.Ints(sizes)

	// Document-reason output is grouped by ascending n-gram size rather
	// than by position, so start is not monotonic across the whole
	// stream; the general stream contract's ordering guarantee doesn't
	// apply here and checkStream is intentionally not run.
	return func(text string, reason Reason) ([]Token, error) {
		if inner == nil {
			return ngramSpan(text, 0, len(text), sizes, cfg.IncludeCategories, reason)
		}

		innerTokens, err := inner(text, reason)
		if err != nil {
			return nil, err
		}
		var out []Token
		for _, t := range innerTokens {
			sub, err := ngramSpan(text, t.Start, t.End, sizes, cfg.IncludeCategories, reason)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil
	}
}

func ngramSpan(text string, start, end int, sizes []int, include CategorySet, reason Reason) ([]Token, error) {
	if len(sizes) == 0 {
		return nil, &ConfigError{Field: "ngrams", Reason: "no sizes configured"}
	}
	if start == end {
		return nil, nil
	}

	var positions []int
	hasFilter := len(include.terms) > 0
	for i := start; i < end; {
		r, w := utf8.DecodeRuneInString(text[i:])
		if !hasFilter || include.Matches(ucd.Lookup(r)) {
			positions = append(positions, i)
		}
		i += w
	}
	numRunes := len(positions)
	if numRunes == 0 {
		return nil, nil
	}

	byteEnd := func(idx int) int {
		if idx < numRunes {
			return positions[idx]
		}
		return end
	}

	minSize := sizes[0]
	if numRunes < minSize {
		return []Token{{Start: start, End: end, Text: text[start:end]}}, nil
	}

	var tokens []Token
	switch reason {
	case Document:
		for _, n := range sizes {
			if n > numRunes {
				continue
			}
			for i := 0; i+n <= numRunes; i++ {
				s, e := positions[i], byteEnd(i+n)
				tokens = append(tokens, Token{Start: s, End: e, Text: text[s:e]})
			}
		}
	default: // Query
		for i := 0; i < numRunes; i++ {
			remaining := numRunes - i
			best := -1
			for _, n := range sizes {
				if n <= remaining && n > best {
					best = n
				}
			}
			if best < 0 {
				continue
			}
			s, e := positions[i], byteEnd(i+best)
			tokens = append(tokens, Token{Start: s, End: e, Text: text[s:e]})
		}
	}

	return tokens, nil
}
