package segment

import "testing"

func intp(i int) *int { return &i }

func TestLength(t *testing.T) {
	n, err := Length("héllo", 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("got %d, want 5", n)
	}
}

func TestSubstringPositive(t *testing.T) {
	got, err := Substring("hello world", intp(0), intp(5))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestSubstringNegative(t *testing.T) {
	got, err := Substring("hello world", intp(-5), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "world" {
		t.Errorf("got %q", got)
	}
}

func TestSubstringEmptyWhenStartGESToP(t *testing.T) {
	got, err := Substring("hello", intp(3), intp(1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestSubstringClampsOutOfRange(t *testing.T) {
	got, err := Substring("hi", intp(0), intp(100))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hi" {
		t.Errorf("got %q", got)
	}
}

func TestCasefoldSharpS(t *testing.T) {
	if got := Casefold("straße"); got != "strasse" {
		t.Errorf("got %q, want strasse", got)
	}
}

func TestWidthCountsWideClustersDouble(t *testing.T) {
	n, err := Width("a中") // latin 'a' + an East Asian Wide CJK ideograph
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("got %d, want 3", n)
	}
}

func TestWidthAllNarrow(t *testing.T) {
	n, err := Width("hi")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("got %d, want 2", n)
	}
}

func TestIterSpansOrdering(t *testing.T) {
	spans, err := IterSpans("ab", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 2 || spans[0].Text != "a" || spans[1].Text != "b" {
		t.Errorf("got %v", spans)
	}
}
