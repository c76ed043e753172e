package graphemes

import (
	"reflect"
	"testing"
)

func collect(s string) []string {
	var out []string
	iter := FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

func TestSplitBasicLatin(t *testing.T) {
	got := collect("abc")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitCRLF(t *testing.T) {
	got := collect("a\r\nb")
	want := []string{"a", "\r\n", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitCombiningMarkAndFlags(t *testing.T) {
	// "a" + combining diaeresis, two regional indicators (FR flag), "b"
	s := "ä\U0001F1EB\U0001F1F7b"
	got := collect(s)
	want := []string{"ä", "\U0001F1EB\U0001F1F7", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitOddRegionalIndicatorsSplitsIntoPairPlusSingle(t *testing.T) {
	// three regional indicators: the first two pair into one flag
	// cluster, the third starts a cluster of its own.
	s := "\U0001F1EB\U0001F1F7\U0001F1E9"
	got := collect(s)
	want := []string{"\U0001F1EB\U0001F1F7", "\U0001F1E9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNextBreakEmptyAtEnd(t *testing.T) {
	end, err := NextBreak("abc", 3)
	if err != nil {
		t.Fatal(err)
	}
	if end != 3 {
		t.Errorf("got %d, want 3", end)
	}
}

func TestNextBreakOutOfRange(t *testing.T) {
	if _, err := NextBreak("abc", -1); err == nil {
		t.Error("expected error for negative offset")
	}
	if _, err := NextBreak("abc", 4); err == nil {
		t.Error("expected error for offset past end")
	}
}

func TestCountMatchesSplitCount(t *testing.T) {
	s := "héllo\U0001F600"
	if got, want := CountString(s), len(collect(s)); got != want {
		t.Errorf("Count = %d, want %d", got, want)
	}
}
