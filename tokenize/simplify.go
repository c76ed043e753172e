package tokenize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/clipperhouse/textsearch/internal/ucd"
)

// CaseOption selects the case transform Simplify applies to a token's
// text, per §4.9.
type CaseOption string

const (
	CaseNone     CaseOption = ""
	CaseUpper    CaseOption = "upper"
	CaseLower    CaseOption = "lower"
	CaseFold     CaseOption = "casefold"
	CaseTitle    CaseOption = "title"
)

// SimplifyConfig configures the Simplify tokenizer wrapper.
type SimplifyConfig struct {
	PreNormalize  norm.Form // zero value (norm.NFC's zero form) means "none" when UsePreNormalize is false
	UsePreNormalize bool
	Case          CaseOption
	RemoveCategories CategorySet
	PostNormalize norm.Form
	UsePostNormalize bool
}

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
	titleCaser = cases.Title(language.Und)
	foldCaser  = cases.Fold()
)

// Simplify wraps inner with pre/post normalisation, case transforms,
// and category-based codepoint removal applied to each token's text.
// Token Start/End continue to refer to the original input passed to
// the wrapped tokenizer; Text is a simplified representation and is
// not guaranteed to be the verbatim substring at that span.
func Simplify(inner Tokenizer, cfg SimplifyConfig) Tokenizer {
	return func(text string, reason Reason) ([]Token, error) {
		tokens, err := inner(text, reason)
		if err != nil {
			return nil, err
		}

		for i, tok := range tokens {
			s := tok.Text

			if cfg.UsePreNormalize {
				s = cfg.PreNormalize.String(s)
			}

			switch cfg.Case {
			case CaseUpper:
				s = upperCaser.String(s)
			case CaseLower:
				s = lowerCaser.String(s)
			case CaseFold:
				s = foldCaser.String(s)
			case CaseTitle:
				s = titleCaser.String(s)
			}

			if len(cfg.RemoveCategories.terms) > 0 {
				s = removeCategories(s, cfg.RemoveCategories)
			}

			if cfg.UsePostNormalize {
				s = cfg.PostNormalize.String(s)
			}

			tokens[i].Text = s
		}

		return tokens, nil
	}
}

func removeCategories(s string, set CategorySet) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !set.Matches(ucd.Lookup(r)) {
			b.WriteRune(r)
		}
		i += w
	}
	return b.String()
}
