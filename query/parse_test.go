package query

import "testing"

func TestParsePhrase(t *testing.T) {
	q, err := Parse(`hello`)
	if err != nil {
		t.Fatal(err)
	}
	ps, ok := q.(Phrases)
	if !ok || len(ps.Phrases) != 1 || ps.Phrases[0].Text != "hello" {
		t.Fatalf("got %#v", q)
	}
}

func TestParsePhrasesAreImplicitlyAnded(t *testing.T) {
	q, err := Parse(`hello world`)
	if err != nil {
		t.Fatal(err)
	}
	ps, ok := q.(Phrases)
	if !ok || len(ps.Phrases) != 2 {
		t.Fatalf("got %#v", q)
	}
}

func TestParsePrefixAndInitial(t *testing.T) {
	q, err := Parse(`^hel*`)
	if err != nil {
		t.Fatal(err)
	}
	ps := q.(Phrases)
	ph := ps.Phrases[0]
	if !ph.Initial || !ph.Prefix || ph.Text != "hel" {
		t.Fatalf("got %#v", ph)
	}
}

func TestParseColumnFilterAndExclude(t *testing.T) {
	q, err := Parse(`-title:hello`)
	if err != nil {
		t.Fatal(err)
	}
	cf, ok := q.(ColumnFilter)
	if !ok || cf.Filter != Exclude || len(cf.Columns) != 1 || cf.Columns[0] != "title" {
		t.Fatalf("got %#v", q)
	}
}

func TestParseMultiColumnFilter(t *testing.T) {
	q, err := Parse(`{title summary}:hello`)
	if err != nil {
		t.Fatal(err)
	}
	cf, ok := q.(ColumnFilter)
	if !ok || cf.Filter != Include || len(cf.Columns) != 2 {
		t.Fatalf("got %#v", q)
	}
}

func TestParseNearWithDistance(t *testing.T) {
	q, err := Parse(`NEAR(a b, 5)`)
	if err != nil {
		t.Fatal(err)
	}
	n, ok := q.(Near)
	if !ok || n.Distance != 5 || len(n.Phrases.Phrases) != 2 {
		t.Fatalf("got %#v", q)
	}
}

func TestParseNearDefaultDistance(t *testing.T) {
	q, err := Parse(`NEAR(a b)`)
	if err != nil {
		t.Fatal(err)
	}
	n := q.(Near)
	if n.Distance != defaultNearDistance {
		t.Fatalf("got distance %d", n.Distance)
	}
}

func TestParseAndOrNotPrecedence(t *testing.T) {
	// NOT (30) binds tighter than AND (20) binds tighter than OR (10).
	q, err := Parse(`love AND (title:^"big world" NOT summary:"sunset cruise")`)
	if err != nil {
		t.Fatal(err)
	}
	and, ok := q.(And)
	if !ok || len(and.Children) != 2 {
		t.Fatalf("got %#v", q)
	}
	if _, ok := and.Children[0].(Phrases); !ok {
		t.Fatalf("expected first AND child to be Phrases, got %#v", and.Children[0])
	}
	not, ok := and.Children[1].(Not)
	if !ok {
		t.Fatalf("expected second AND child to be Not, got %#v", and.Children[1])
	}
	matchCF, ok := not.Match.(ColumnFilter)
	if !ok || matchCF.Columns[0] != "title" {
		t.Fatalf("got %#v", not.Match)
	}
	noMatchCF, ok := not.NoMatch.(ColumnFilter)
	if !ok || noMatchCF.Columns[0] != "summary" {
		t.Fatalf("got %#v", not.NoMatch)
	}
}

func TestParseMultipleNearRunsIntoAnd(t *testing.T) {
	q, err := Parse(`NEAR(a b, 5) NEAR(c d)`)
	if err != nil {
		t.Fatal(err)
	}
	and, ok := q.(And)
	if !ok || len(and.Children) != 2 {
		t.Fatalf("got %#v", q)
	}
	first, ok := and.Children[0].(Near)
	if !ok || first.Distance != 5 {
		t.Fatalf("got %#v", and.Children[0])
	}
	second, ok := and.Children[1].(Near)
	if !ok || second.Distance != defaultNearDistance {
		t.Fatalf("got %#v", and.Children[1])
	}
}

func TestParseFlattensChainedAnd(t *testing.T) {
	q, err := Parse(`a AND b AND c`)
	if err != nil {
		t.Fatal(err)
	}
	and, ok := q.(And)
	if !ok || len(and.Children) != 3 {
		t.Fatalf("expected a flattened 3-child And, got %#v", q)
	}
}

func TestParseUnclosedParenErrors(t *testing.T) {
	_, err := Parse(`(a AND b`)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseNearRequiresTwoPhrases(t *testing.T) {
	_, err := Parse(`NEAR(a)`)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseTrailingInputErrors(t *testing.T) {
	_, err := Parse(`a)`)
	if err == nil {
		t.Fatal("expected an error")
	}
}
