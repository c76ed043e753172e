package tokenize

import (
	"unicode/utf8"

	"github.com/clipperhouse/textsearch/internal/ucd"
)

// UnicodeConfig configures the Unicode category tokenizer.
type UnicodeConfig struct {
	// Categories selects which codepoints participate in a token at
	// all. Defaults to letters and numbers if the zero value.
	Categories CategorySet
	// TokenChars are codepoints that extend a token regardless of
	// category (e.g. apostrophe inside a word).
	TokenChars map[rune]bool
	// Separators are codepoints that always break a token, even if
	// Categories would otherwise include them.
	Separators map[rune]bool
	// SingleTokenCategories lists categories whose codepoints are
	// always their own one-rune token (e.g. emoji, ideographs).
	SingleTokenCategories CategorySet
}

var defaultUnicodeCategories = func() CategorySet {
	s, err := ParseCategorySet("[LN]*")
	if err != nil {
		panic(err)
	}
	return s
}()

// NewUnicodeTokenizer builds a Tokenizer that splits text by Unicode
// general category, per §4.9.
func NewUnicodeTokenizer(cfg UnicodeConfig) Tokenizer {
	categories := cfg.Categories
	if len(categories.terms) == 0 {
		categories = defaultUnicodeCategories
	}

	return func(text string, reason Reason) ([]Token, error) {
		var tokens []Token
		start := -1

		flush := func(end int) {
			if start >= 0 {
				tokens = append(tokens, Token{Start: start, End: end, Text: text[start:end]})
				start = -1
			}
		}

		i := 0
		for i < len(text) {
			r, w := utf8.DecodeRuneInString(text[i:])
			cat := ucd.Lookup(r)

			if cfg.Separators[r] {
				flush(i)
				i += w
				continue
			}

			if cfg.SingleTokenCategories.Matches(cat) {
				flush(i)
				tokens = append(tokens, Token{Start: i, End: i + w, Text: text[i : i+w]})
				i += w
				continue
			}

			include := categories.Matches(cat) || cfg.TokenChars[r]
			if !include {
				flush(i)
				i += w
				continue
			}

			if start < 0 {
				start = i
			}
			i += w
		}
		flush(len(text))

		if err := checkStream(text, tokens); err != nil {
			return nil, err
		}
		return tokens, nil
	}
}
