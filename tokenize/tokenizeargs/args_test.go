package tokenizeargs

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/clipperhouse/textsearch/tokenize"
)

func TestParseUsesDefaultWhenAbsent(t *testing.T) {
	schema := Schema{"lang": Default("en")}
	result, err := Parse(nil, schema, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result["lang"] != "en" {
		t.Fatalf("got %#v", result)
	}
}

func TestParseOverridesDefault(t *testing.T) {
	schema := Schema{"lang": Default("en")}
	result, err := Parse([]string{"lang", "fr"}, schema, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result["lang"] != "fr" {
		t.Fatalf("got %#v", result)
	}
}

func TestParseUnknownNameErrors(t *testing.T) {
	schema := Schema{"lang": Default("en")}
	_, err := Parse([]string{"bogus", "x"}, schema, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseMissingValueErrors(t *testing.T) {
	schema := Schema{"lang": Default("en")}
	_, err := Parse([]string{"lang"}, schema, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseConvertorAndChoices(t *testing.T) {
	schema := Schema{
		"size": {
			Convertor: func(s string) (any, error) { return strconv.Atoi(s) },
			Choices:   []any{1, 2, 3},
		},
	}
	result, err := Parse([]string{"size", "2"}, schema, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result["size"] != 2 {
		t.Fatalf("got %#v", result)
	}

	_, err = Parse([]string{"size", "9"}, schema, nil)
	if err == nil {
		t.Fatal("expected a choices error")
	}

	_, err = Parse([]string{"size", "nope"}, schema, nil)
	if err == nil {
		t.Fatal("expected a converter error")
	}
}

func TestParseNestedRequiresRegistryEntry(t *testing.T) {
	schema := Schema{"inner": Nested()}
	registry := Registry{
		"unicode": func(args []string) (tokenize.Tokenizer, error) {
			return tokenize.NewUnicodeTokenizer(tokenize.UnicodeConfig{}), nil
		},
	}

	result, err := Parse([]string{"inner", "unicode"}, schema, registry)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := result["inner"].(tokenize.Tokenizer); !ok {
		t.Fatalf("got %#v", result)
	}

	_, err = Parse([]string{"inner", "bogus"}, schema, registry)
	if err == nil {
		t.Fatal("expected an error for an unknown inner tokenizer")
	}
}

func TestParseNestedWithoutInnerErrors(t *testing.T) {
	schema := Schema{"inner": Nested()}
	_, err := Parse(nil, schema, Registry{})
	if err == nil {
		t.Fatal("expected an error when the nested argument is never supplied")
	}
}

func TestParseDecodesLooseJSONLiterals(t *testing.T) {
	schema := Schema{
		"size":   {},
		"strict": {},
		"tag":    {},
		"flags":  {},
	}
	result, err := Parse([]string{"size", "42", "strict", "true", "tag", "en", "flags", "[1,2]"}, schema, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := result["size"].(json.Number); !ok || n.String() != "42" {
		t.Errorf("size: got %#v, want json.Number(42)", result["size"])
	}
	if result["strict"] != true {
		t.Errorf("strict: got %#v, want true", result["strict"])
	}
	if result["tag"] != "en" {
		t.Errorf("tag: got %#v, want bareword string \"en\"", result["tag"])
	}
	flags, ok := result["flags"].([]any)
	if !ok || len(flags) != 2 {
		t.Errorf("flags: got %#v, want a two-element slice", result["flags"])
	}
}

func TestParseNestedMissingNameErrors(t *testing.T) {
	schema := Schema{"inner": Nested()}
	_, err := Parse([]string{"inner"}, schema, Registry{})
	if err == nil {
		t.Fatal("expected an error")
	}
}
