// Package tokenize implements a composable tokenizer pipeline: a
// Unicode category tokenizer at the core, wrapped by optional
// normalisation, n-gramming, stopword filtering, synonym expansion,
// and text transforms.
package tokenize

// Reason tells a tokenizer why it's being invoked, so it can adapt its
// behaviour (an n-gram tokenizer, for instance, emits every n-gram for
// indexing but only the longest fit per offset for a query).
type Reason uint8

const (
	Document Reason = iota
	Query
)

// Token is one emitted unit: a primary token, or a colocated variant
// sharing its primary's (Start, End) span.
type Token struct {
	Start     int
	End       int
	Text      string
	Colocated bool
}

// Tokenizer splits text into a stream of tokens for the given reason.
// Implementations must satisfy the stream contract: start and end lie
// on UTF-8 boundaries with 0 <= start <= end <= len(text), start is
// non-decreasing across the stream, and every colocated entry shares
// the (start, end) of the primary token it follows.
type Tokenizer func(text string, reason Reason) ([]Token, error)

// validate checks one emitted token against the stream contract,
// relative to the token that preceded it (prev may be nil for the
// first token of a stream).
func validate(index int, text string, tok Token, prev *Token) error {
	if tok.Start < 0 || tok.End < tok.Start || tok.End > len(text) {
		return &TokenizerContract{Index: index, Reason: "start/end out of range"}
	}
	if !isBoundary(text, tok.Start) || !isBoundary(text, tok.End) {
		return &TokenizerContract{Index: index, Reason: "start/end not on a UTF-8 boundary"}
	}
	if prev != nil {
		if !prev.Colocated && tok.Start < prev.Start {
			return &TokenizerContract{Index: index, Reason: "start decreased"}
		}
		if tok.Colocated && (tok.Start != prev.Start || tok.End != prev.End) {
			return &TokenizerContract{Index: index, Reason: "colocated entry doesn't share its primary's span"}
		}
	} else if tok.Colocated {
		return &TokenizerContract{Index: index, Reason: "stream cannot start with a colocated entry"}
	}
	return nil
}

func isBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	return s[i]&0xC0 != 0x80
}

// checkStream validates an entire token slice against the stream
// contract in one pass, as a defensive check for tokenizers assembled
// from user-supplied wrapper callbacks.
func checkStream(text string, tokens []Token) error {
	var prev *Token
	for i := range tokens {
		if err := validate(i, text, tokens[i], prev); err != nil {
			return err
		}
		prev = &tokens[i]
	}
	return nil
}
