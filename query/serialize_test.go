package query

import "testing"

func TestQuoteBarewordUnchanged(t *testing.T) {
	if got := Quote("hello"); got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestQuoteWithSpaceGetsQuoted(t *testing.T) {
	if got := Quote("big world"); got != `"big world"` {
		t.Fatalf("got %q", got)
	}
}

func TestQuoteDoublesInternalQuotes(t *testing.T) {
	if got := Quote(`say "hi"`); got != `"say ""hi"""` {
		t.Fatalf("got %q", got)
	}
}

func TestQuoteKeywordGetsQuoted(t *testing.T) {
	if got := Quote("AND"); got != `"AND"` {
		t.Fatalf("got %q", got)
	}
}

func TestSerializePhraseModifiers(t *testing.T) {
	ph := Phrase{Text: "hel", Initial: true, Prefix: true}
	got := Serialize(Phrases{Phrases: []Phrase{ph}})
	want := `^hel*`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSerializeNearOmitsDefaultDistance(t *testing.T) {
	n := Near{Phrases: Phrases{Phrases: []Phrase{{Text: "a"}, {Text: "b"}}}, Distance: defaultNearDistance}
	got := Serialize(n)
	want := "NEAR(a b)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSerializeNearWithDistance(t *testing.T) {
	n := Near{Phrases: Phrases{Phrases: []Phrase{{Text: "a"}, {Text: "b"}}}, Distance: 5}
	got := Serialize(n)
	want := "NEAR(a b, 5)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSerializeNotParenthesizesLooserChildren(t *testing.T) {
	not := Not{
		Match:   And{Children: []Query{Phrases{Phrases: []Phrase{{Text: "a"}}}, Phrases{Phrases: []Phrase{{Text: "b"}}}}},
		NoMatch: Phrases{Phrases: []Phrase{{Text: "c"}}},
	}
	got := Serialize(not)
	want := "(a AND b) NOT c"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSerializeColumnFilterMultiColumnExclude(t *testing.T) {
	cf := ColumnFilter{
		Columns: []string{"title", "summary"},
		Filter:  Exclude,
		Query:   Phrases{Phrases: []Phrase{{Text: "hello"}}},
	}
	got := Serialize(cf)
	want := "-{title summary}:hello"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		`hello`,
		`hello world`,
		`-title:hello`,
		`{title summary}:hello`,
		`NEAR(a b, 5)`,
		`love AND (title:^"big world" NOT summary:"sunset cruise")`,
	}
	for _, in := range inputs {
		q1, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		s := Serialize(q1)
		q2, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(Serialize(%q)=%q): %v", in, s, err)
		}
		if Serialize(q2) != s {
			t.Fatalf("round trip unstable for %q: %q vs %q", in, s, Serialize(q2))
		}
	}
}
