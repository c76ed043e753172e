package tokenize

import (
	"reflect"
	"testing"
)

func TestParseNgramSizesVariants(t *testing.T) {
	cases := map[string][]int{
		"3":     {3},
		"3,5":   {3, 5},
		"3-7":   {3, 4, 5, 6, 7},
		"2-3,3-9": {2, 3, 4, 5, 6, 7, 8, 9},
		"9-3":   nil,
	}
	for spec, want := range cases {
		got, err := ParseNgramSizes(spec)
		if want == nil {
			if err == nil {
				t.Errorf("%q: expected an error for a descending range", spec)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", spec, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%q: got %v, want %v", spec, got, want)
		}
	}
}

func TestNgramDocumentEmitsAllSizesAscending(t *testing.T) {
	tok := NewNgramTokenizer(nil, NgramConfig{Sizes: []int{2, 3}})
	tokens, err := tok("abcd", Document)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ab", "bc", "cd", "abc", "bcd"}
	if got := texts(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNgramQueryEmitsOnlyLongestFitPerStart(t *testing.T) {
	tok := NewNgramTokenizer(nil, NgramConfig{Sizes: []int{2, 3}})
	tokens, err := tok("abcd", Query)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"abc", "bcd", "cd"}
	if got := texts(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNgramShorterThanSmallestSizeYieldsWholeInput(t *testing.T) {
	tok := NewNgramTokenizer(nil, NgramConfig{Sizes: []int{5}})
	tokens, err := tok("ab", Document)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ab"}
	if got := texts(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNgramDocumentCoversEveryByte(t *testing.T) {
	text := "hello world"
	tok := NewNgramTokenizer(nil, NgramConfig{Sizes: []int{3}})
	tokens, err := tok(text, Document)
	if err != nil {
		t.Fatal(err)
	}
	covered := make([]bool, len(text))
	for _, tk := range tokens {
		for i := tk.Start; i < tk.End; i++ {
			covered[i] = true
		}
	}
	for i, c := range covered {
		if !c {
			t.Fatalf("byte %d not covered by any n-gram", i)
		}
	}
}

func TestNgramWithInnerTokenizerStaysWithinWords(t *testing.T) {
	words := NewUnicodeTokenizer(UnicodeConfig{})
	tok := NewNgramTokenizer(words, NgramConfig{Sizes: []int{2}})
	tokens, err := tok("ab cd", Document)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ab", "cd"}
	if got := texts(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
