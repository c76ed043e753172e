package tokenize

// Stopwords wraps inner, dropping any token whose primary text
// satisfies isStop.
func Stopwords(inner Tokenizer, isStop func(string) bool) Tokenizer {
	return func(text string, reason Reason) ([]Token, error) {
		tokens, err := inner(text, reason)
		if err != nil {
			return nil, err
		}
		out := tokens[:0]
		skipColocated := false
		for _, tok := range tokens {
			if !tok.Colocated {
				skipColocated = isStop(tok.Text)
				if skipColocated {
					continue
				}
				out = append(out, tok)
				continue
			}
			if skipColocated {
				continue
			}
			out = append(out, tok)
		}
		return out, nil
	}
}

// Synonyms wraps inner, consulting expand for each primary token and
// appending any returned variants as colocated entries sharing the
// primary's span. Start/End are never altered.
func Synonyms(inner Tokenizer, expand func(string) []string) Tokenizer {
	return func(text string, reason Reason) ([]Token, error) {
		tokens, err := inner(text, reason)
		if err != nil {
			return nil, err
		}
		var out []Token
		for _, tok := range tokens {
			out = append(out, tok)
			if tok.Colocated {
				continue
			}
			for _, variant := range expand(tok.Text) {
				out = append(out, Token{Start: tok.Start, End: tok.End, Text: variant, Colocated: true})
			}
		}
		return out, nil
	}
}

// Transform wraps inner, replacing each primary token's text with the
// result of apply: a single string substitutes the token in place, an
// empty slice deletes it, and multiple strings become the primary plus
// colocated variants, all sharing the original span.
func Transform(inner Tokenizer, apply func(string) []string) Tokenizer {
	return func(text string, reason Reason) ([]Token, error) {
		tokens, err := inner(text, reason)
		if err != nil {
			return nil, err
		}
		var out []Token
		for _, tok := range tokens {
			if tok.Colocated {
				out = append(out, tok)
				continue
			}
			variants := apply(tok.Text)
			for i, v := range variants {
				out = append(out, Token{Start: tok.Start, End: tok.End, Text: v, Colocated: i > 0})
			}
		}
		return out, nil
	}
}
