package tokenize

import (
	"reflect"
	"testing"
)

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestUnicodeTokenizerDefaultSplitsOnPunctuationAndSpace(t *testing.T) {
	tok := NewUnicodeTokenizer(UnicodeConfig{})
	tokens, err := tok("hello, world! 42", Document)
	if err != nil {
		t.Fatal(err)
	}
	got := texts(tokens)
	want := []string{"hello", "world", "42"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnicodeTokenizerTokenCharsExtendToken(t *testing.T) {
	tok := NewUnicodeTokenizer(UnicodeConfig{TokenChars: map[rune]bool{'\'': true}})
	tokens, err := tok("can't stop", Document)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"can't", "stop"}
	if got := texts(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnicodeTokenizerSeparatorsAlwaysBreak(t *testing.T) {
	set, err := ParseCategorySet("*")
	if err != nil {
		t.Fatal(err)
	}
	tok := NewUnicodeTokenizer(UnicodeConfig{
		Categories: set,
		Separators: map[rune]bool{'-': true},
	})
	tokens, err := tok("foo-bar", Document)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"foo", "bar"}
	if got := texts(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnicodeTokenizerOffsetsAreUTF8Boundaries(t *testing.T) {
	tok := NewUnicodeTokenizer(UnicodeConfig{})
	text := "café résumé"
	tokens, err := tok(text, Document)
	if err != nil {
		t.Fatal(err)
	}
	for _, tk := range tokens {
		if text[tk.Start:tk.End] != tk.Text {
			t.Fatalf("token %+v does not match text slice %q", tk, text[tk.Start:tk.End])
		}
	}
}

func TestParseCategorySetNegation(t *testing.T) {
	set, err := ParseCategorySet("L* !Lu")
	if err != nil {
		t.Fatal(err)
	}
	tok := NewUnicodeTokenizer(UnicodeConfig{Categories: set})
	tokens, err := tok("Hello World", Document)
	if err != nil {
		t.Fatal(err)
	}
	// Uppercase letters are excluded, so initial capitals break off each
	// word from the lowercase remainder.
	want := []string{"ello", "orld"}
	if got := texts(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCategorySetBracket(t *testing.T) {
	set, err := ParseCategorySet("[CLMNS]*")
	if err != nil {
		t.Fatal(err)
	}
	tok := NewUnicodeTokenizer(UnicodeConfig{Categories: set})
	tokens, err := tok("a1 b2, c3", Document)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a1", "b2", "c3"}
	if got := texts(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
