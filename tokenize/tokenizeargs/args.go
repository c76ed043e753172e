// Package tokenizeargs parses the flat "name value name value ..."
// argument lists tokenizer configuration is supplied as, against a
// declared schema, per §4.10.
package tokenizeargs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/clipperhouse/textsearch/tokenize"
)

// ConfigError reports a malformed argument list: an unknown name, a
// missing value or required argument, a converter rejection, a value outside its declared
// choices, or a missing nested tokenizer.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tokenizeargs: %s: %s", e.Field, e.Reason)
}

// Spec declares one named argument: either a bare default value (a
// string, number, or bool with no conversion or choice restriction),
// a fully-specified typed argument, or the nested-tokenizer sentinel.
type Spec struct {
	// Default is used when the argument is absent from the args list.
	// If nil and Nested is false, the argument is required.
	Default any
	// Convertor parses the raw string argument into a typed value. If
	// nil, the raw value is decoded loosely as a JSON literal (so "42"
	// becomes a json.Number, "true"/"false" become bool, "null" becomes
	// nil, and a quoted or bracketed value is unwrapped) -- anything
	// that isn't valid JSON on its own, such as a bare word, falls back
	// to the raw string.
	Convertor func(string) (any, error)
	// Choices restricts the converted value to one of these, compared
	// with reflect.DeepEqual.
	Choices []any
	// Nested marks this as the "+" sentinel: everything from this
	// argument's value onward is a nested tokenizer name followed by
	// its own argument list.
	Nested bool
}

// Default builds a Spec with a plain default value.
func Default(v any) Spec { return Spec{Default: v} }

// Nested builds a Spec for the "+" sentinel.
func Nested() Spec { return Spec{Nested: true} }

// Schema declares the arguments a tokenizer factory accepts.
type Schema map[string]Spec

// Builder constructs a tokenizer from its own remaining argument list,
// used to resolve a Nested spec's inner tokenizer by name.
type Builder func(args []string) (tokenize.Tokenizer, error)

// Registry maps tokenizer names to their Builders, for resolving a
// Nested spec's inner tokenizer.
type Registry map[string]Builder

// Parse walks args as name/value pairs against schema, converting and
// validating each value, and resolving at most one Nested argument's
// inner tokenizer via registry. The result holds one entry per schema
// field: the parsed or default value, or (for a Nested field) the
// built tokenize.Tokenizer.
func Parse(args []string, schema Schema, registry Registry) (map[string]any, error) {
	result := make(map[string]any, len(schema))
	for name, spec := range schema {
		if !spec.Nested && spec.Default != nil {
			result[name] = spec.Default
		}
	}

	i := 0
	for i < len(args) {
		name := args[i]
		spec, ok := schema[name]
		if !ok {
			return nil, &ConfigError{Field: name, Reason: "unknown argument"}
		}
		i++

		if spec.Nested {
			if i >= len(args) {
				return nil, &ConfigError{Field: name, Reason: "no inner tokenizer name supplied"}
			}
			innerName := args[i]
			i++
			builder, ok := registry[innerName]
			if !ok {
				return nil, &ConfigError{Field: name, Reason: "unknown tokenizer " + innerName}
			}
			inner, err := builder(args[i:])
			if err != nil {
				return nil, err
			}
			result[name] = inner
			i = len(args)
			continue
		}

		if i >= len(args) {
			return nil, &ConfigError{Field: name, Reason: "no value supplied"}
		}
		raw := args[i]
		i++

		var value any
		if spec.Convertor != nil {
			v, err := spec.Convertor(raw)
			if err != nil {
				return nil, &ConfigError{Field: name, Reason: "conversion failed: " + err.Error()}
			}
			value = v
		} else {
			value = decodeLoose(raw)
		}

		if len(spec.Choices) > 0 && !inChoices(value, spec.Choices) {
			return nil, &ConfigError{Field: name, Reason: "value not in declared choices"}
		}

		result[name] = value
	}

	for name, spec := range schema {
		if !spec.Nested {
			if _, ok := result[name]; !ok {
				return nil, &ConfigError{Field: name, Reason: "required argument not supplied"}
			}
			continue
		}
		if _, ok := result[name]; !ok {
			return nil, &ConfigError{Field: name, Reason: "no inner tokenizer supplied"}
		}
	}

	return result, nil
}

// decodeLoose decodes raw as a JSON literal when it is valid as one --
// a number becomes a json.Number (preserving precision rather than
// forcing float64), "true"/"false"/"null" become their Go equivalents,
// and a quoted or bracketed value is unwrapped into a string/slice/map.
// raw is first validated as a complete JSON value via json.RawMessage
// so a partial or trailing-garbage literal doesn't silently decode a
// prefix; anything that fails either step -- most bare words, which
// aren't valid JSON on their own -- is returned unchanged as a string.
func decodeLoose(raw string) any {
	var msg json.RawMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return raw
	}

	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return raw
	}
	return v
}

func inChoices(value any, choices []any) bool {
	for _, c := range choices {
		if reflect.DeepEqual(c, value) {
			return true
		}
	}
	return false
}
