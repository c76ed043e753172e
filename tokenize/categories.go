package tokenize

import (
	"strings"

	"github.com/clipperhouse/textsearch/internal/ucd"
)

var majorByLetter = map[byte]ucd.Category{
	'L': ucd.Letter,
	'M': ucd.Mark,
	'N': ucd.Number,
	'C': ucd.Other,
	'P': ucd.Punctuation,
	'Z': ucd.Separator,
	'S': ucd.Symbol,
}

var minorByName = map[string]ucd.Category{
	"Lu": ucd.LetterUppercase,
	"Ll": ucd.LetterLowercase,
	"Lt": ucd.LetterTitlecase,
	"Lm": ucd.LetterModifier,
	"Lo": ucd.LetterOther,
	"Mn": ucd.MarkNonSpacing,
	"Mc": ucd.MarkSpacing,
	"Me": ucd.MarkEnclosing,
	"Nd": ucd.NumberDecimal,
	"Nl": ucd.NumberLetter,
	"No": ucd.NumberOther,
	"Pc": ucd.PunctConnector,
	"Pd": ucd.PunctDash,
	"Ps": ucd.PunctOpen,
	"Pe": ucd.PunctClose,
	"Pi": ucd.PunctInitQuote,
	"Pf": ucd.PunctFinalQuote,
	"Po": ucd.PunctOther,
	"Sm": ucd.SymbolMath,
	"Sc": ucd.SymbolCurrency,
	"Sk": ucd.SymbolModifier,
	"So": ucd.SymbolOther,
	"Zs": ucd.SepSpace,
	"Zl": ucd.SepLine,
	"Zp": ucd.SepParagraph,
	"Cc": ucd.OtherControl,
	"Cf": ucd.OtherFormat,
	"Cs": ucd.OtherSurrogate,
	"Co": ucd.OtherPrivateUse,
	"Cn": ucd.OtherNotAssigned,
}

type categoryTerm struct {
	negate bool
	test   func(ucd.Category) bool
}

// CategorySet matches codepoint categories against an expression such
// as "*", "L* !Lu", or "[CLMNS]*": a space-separated list of terms
// evaluated left to right, where a later matching term overrides an
// earlier one (so "L* !Lu" means every Letter except uppercase ones).
type CategorySet struct {
	terms []categoryTerm
	expr  string
}

// Matches reports whether c falls within the set described by the
// expression, by replaying its terms in declaration order.
func (s CategorySet) Matches(c ucd.Category) bool {
	matched := false
	for _, t := range s.terms {
		if t.test(c) {
			matched = !t.negate
		}
	}
	return matched
}

// ParseCategorySet parses a category set expression, per §4.9: "*"
// for everything, a bare major letter ("L", with an optional
// decorative trailing "*") for a whole major category, a two-letter
// minor code ("Lu") for one minor, a bracketed run of major letters
// ("[CLMNS]") for their union, and a leading "!" on any term to negate
// it relative to the terms before it.
func ParseCategorySet(expr string) (CategorySet, error) {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return CategorySet{}, &ConfigError{Field: "categories", Reason: "empty expression"}
	}

	set := CategorySet{expr: expr}
	for _, field := range fields {
		negate := false
		body := field
		if strings.HasPrefix(body, "!") {
			negate = true
			body = body[1:]
		}
		test, err := parseCategoryTerm(body)
		if err != nil {
			return CategorySet{}, err
		}
		set.terms = append(set.terms, categoryTerm{negate: negate, test: test})
	}
	return set, nil
}

func parseCategoryTerm(body string) (func(ucd.Category) bool, error) {
	switch {
	case body == "*":
		return func(ucd.Category) bool { return true }, nil

	case strings.HasPrefix(body, "["):
		end := strings.IndexByte(body, ']')
		if end < 0 {
			return nil, &ConfigError{Field: "categories", Reason: "unterminated '[' in " + body}
		}
		letters := body[1:end]
		var majors []ucd.Category
		for i := 0; i < len(letters); i++ {
			m, ok := majorByLetter[letters[i]]
			if !ok {
				return nil, &ConfigError{Field: "categories", Reason: "unknown major category letter in " + body}
			}
			majors = append(majors, m)
		}
		return func(c ucd.Category) bool {
			maj := c.Major()
			for _, m := range majors {
				if maj == m {
					return true
				}
			}
			return false
		}, nil

	case len(strings.TrimSuffix(body, "*")) == 1:
		letter := strings.TrimSuffix(body, "*")[0]
		m, ok := majorByLetter[letter]
		if !ok {
			return nil, &ConfigError{Field: "categories", Reason: "unknown major category letter in " + body}
		}
		return func(c ucd.Category) bool { return c.Major() == m }, nil

	case len(body) == 2:
		minor, ok := minorByName[body]
		if !ok {
			return nil, &ConfigError{Field: "categories", Reason: "unknown minor category " + body}
		}
		return func(c ucd.Category) bool { return c.Is(minor) }, nil

	default:
		return nil, &ConfigError{Field: "categories", Reason: "unrecognized term " + body}
	}
}
