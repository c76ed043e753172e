package query

// Dict is the tagged-tree serializable form of a Query: a mapping with
// a discriminant key "@" plus the node's other fields, with
// default-valued fields elided on emit.
type Dict = map[string]any

// PhraseLike is anything from_dict/to_dict will accept where a PHRASE
// or PHRASES is expected on ingest: a bare string, a list of such
// items, or a fully-specified dict.
type PhraseLike any

// ToDict converts q to its tagged-tree form.
func ToDict(q Query) Dict {
	switch v := q.(type) {
	case Phrases:
		phrases := make([]any, len(v.Phrases))
		for i, ph := range v.Phrases {
			phrases[i] = phraseToDict(ph)
		}
		return Dict{"@": "PHRASES", "phrases": phrases}
	case And:
		return Dict{"@": "AND", "queries": queriesToDict(v.Children)}
	case Or:
		return Dict{"@": "OR", "queries": queriesToDict(v.Children)}
	case Not:
		return Dict{"@": "NOT", "match": ToDict(v.Match), "no_match": ToDict(v.NoMatch)}
	case Near:
		d := Dict{"@": "NEAR", "phrases": ToDict(v.Phrases)}
		if v.Distance != defaultNearDistance {
			d["distance"] = v.Distance
		}
		return d
	case ColumnFilter:
		return Dict{
			"@":       "COLUMNFILTER",
			"query":   ToDict(v.Query),
			"columns": append([]string(nil), v.Columns...),
			"filter":  string(v.Filter),
		}
	default:
		panic("query: unexpected Query type in ToDict")
	}
}

func phraseToDict(ph Phrase) Dict {
	d := Dict{"@": "PHRASE", "phrase": ph.Text}
	if ph.Prefix {
		d["prefix"] = true
	}
	if ph.Sequence {
		d["sequence"] = true
	}
	if ph.Initial {
		d["initial"] = true
	}
	return d
}

func queriesToDict(qs []Query) []any {
	out := make([]any, len(qs))
	for i, q := range qs {
		out[i] = ToDict(q)
	}
	return out
}

// FromDict rebuilds a Query from its tagged-tree form, or from the
// relaxations this codec accepts in place of PHRASE/PHRASES: a bare
// string, or a slice of such items.
func FromDict(v any) (Query, error) {
	switch t := v.(type) {
	case string, []any, []string:
		phrases, err := fromDictAsPhrases(v)
		if err != nil {
			return nil, err
		}
		return phrases, nil
	case map[string]any:
		return fromDictMap(t)
	default:
		return nil, &SchemaError{Path: "$", Reason: "expected a dict, string, or list"}
	}
}

func fromDictMap(d map[string]any) (Query, error) {
	tag, ok := d["@"].(string)
	if !ok {
		return nil, &SchemaError{Path: "$", Reason: "expected key '@'"}
	}

	switch tag {
	case "PHRASE", "PHRASES":
		return fromDictAsPhrases(d)

	case "AND", "OR":
		raw, ok := d["queries"]
		if !ok {
			return nil, &SchemaError{Path: "$.queries", Reason: "missing"}
		}
		items, err := asSlice(raw)
		if err != nil || len(items) < 1 {
			return nil, &SchemaError{Path: "$.queries", Reason: "must be a sequence of at least 1 item"}
		}
		children := make([]Query, len(items))
		for i, item := range items {
			q, err := FromDict(item)
			if err != nil {
				return nil, err
			}
			children[i] = q
		}
		if len(children) == 1 {
			return children[0], nil
		}
		if tag == "AND" {
			return And{Children: children}, nil
		}
		return Or{Children: children}, nil

	case "NOT":
		matchRaw, hasMatch := d["match"]
		noMatchRaw, hasNoMatch := d["no_match"]
		if !hasMatch || !hasNoMatch {
			return nil, &SchemaError{Path: "$", Reason: "must have 'match' and 'no_match'"}
		}
		match, err := FromDict(matchRaw)
		if err != nil {
			return nil, err
		}
		noMatch, err := FromDict(noMatchRaw)
		if err != nil {
			return nil, err
		}
		return Not{Match: match, NoMatch: noMatch}, nil

	case "NEAR":
		phrases, err := fromDictAsPhrases(d["phrases"])
		if err != nil {
			return nil, err
		}
		if len(phrases.Phrases) < 2 {
			return nil, &SchemaError{Path: "$.phrases", Reason: "NEAR requires at least 2 phrases"}
		}
		distance := defaultNearDistance
		if raw, ok := d["distance"]; ok {
			n, ok := asInt(raw)
			if !ok {
				return nil, &SchemaError{Path: "$.distance", Reason: "must be an integer"}
			}
			distance = n
		}
		if distance < 1 {
			return nil, &SchemaError{Path: "$.distance", Reason: "must be at least one"}
		}
		return Near{Phrases: phrases, Distance: distance}, nil

	case "COLUMNFILTER":
		rawColumns, ok := d["columns"]
		if !ok {
			return nil, &SchemaError{Path: "$.columns", Reason: "must have 'columns' with at least one member"}
		}
		columns, err := asStringSlice(rawColumns)
		if err != nil || len(columns) < 1 {
			return nil, &SchemaError{Path: "$.columns", Reason: "must have 'columns' with at least one string member"}
		}

		filterRaw, _ := d["filter"].(string)
		var filter Filter
		switch filterRaw {
		case "include":
			filter = Include
		case "exclude":
			filter = Exclude
		default:
			return nil, &SchemaError{Path: "$.filter", Reason: "must be 'include' or 'exclude'"}
		}

		queryRaw, ok := d["query"]
		if !ok {
			return nil, &SchemaError{Path: "$.query", Reason: "missing"}
		}
		inner, err := FromDict(queryRaw)
		if err != nil {
			return nil, err
		}

		return ColumnFilter{Columns: columns, Filter: filter, Query: inner}, nil

	default:
		return nil, &SchemaError{Path: "$.@", Reason: "\"" + tag + "\" is not a known query type"}
	}
}

func fromDictAsPhrase(item any, first bool) (Phrase, error) {
	switch v := item.(type) {
	case string:
		return Phrase{Text: v}, nil
	case map[string]any:
		if tag, _ := v["@"].(string); tag != "PHRASE" {
			return Phrase{}, &SchemaError{Path: "$", Reason: "needs to be a dict with '@': 'PHRASE'"}
		}
		text, ok := v["phrase"].(string)
		if !ok {
			return Phrase{}, &SchemaError{Path: "$.phrase", Reason: "must be present and a string"}
		}
		p := Phrase{Text: text}
		p.Initial, _ = v["initial"].(bool)
		p.Prefix, _ = v["prefix"].(bool)
		p.Sequence, _ = v["sequence"].(bool)
		if p.Sequence && first {
			return Phrase{}, &SchemaError{Path: "$.sequence", Reason: "first phrase can't have sequence==true"}
		}
		if p.Sequence && p.Initial {
			return Phrase{}, &SchemaError{Path: "$.sequence", Reason: "can't have both sequence and initial set"}
		}
		return p, nil
	default:
		return Phrase{}, &SchemaError{Path: "$", Reason: "can't convert to a phrase"}
	}
}

func fromDictAsPhrases(item any) (Phrases, error) {
	switch v := item.(type) {
	case string:
		return Phrases{Phrases: []Phrase{{Text: v}}}, nil
	case []any, []string:
		items, _ := asSlice(v)
		phrases := make([]Phrase, 0, len(items))
		for _, m := range items {
			p, err := fromDictAsPhrase(m, len(phrases) == 0)
			if err != nil {
				return Phrases{}, err
			}
			phrases = append(phrases, p)
		}
		if len(phrases) == 0 {
			return Phrases{}, &SchemaError{Path: "$", Reason: "no phrase found"}
		}
		return Phrases{Phrases: phrases}, nil
	case map[string]any:
		tag, _ := v["@"].(string)
		if tag != "PHRASE" && tag != "PHRASES" {
			return Phrases{}, &SchemaError{Path: "$.@", Reason: "expected PHRASE or PHRASES"}
		}
		if tag == "PHRASE" {
			p, err := fromDictAsPhrase(v, true)
			if err != nil {
				return Phrases{}, err
			}
			return Phrases{Phrases: []Phrase{p}}, nil
		}
		raw, ok := v["phrases"]
		if !ok {
			return Phrases{}, &SchemaError{Path: "$.phrases", Reason: "must be a sequence"}
		}
		items, err := asSlice(raw)
		if err != nil {
			return Phrases{}, &SchemaError{Path: "$.phrases", Reason: "must be a sequence"}
		}
		phrases := make([]Phrase, len(items))
		for i, m := range items {
			p, err := fromDictAsPhrase(m, i == 0)
			if err != nil {
				return Phrases{}, err
			}
			phrases[i] = p
		}
		return Phrases{Phrases: phrases}, nil
	default:
		return Phrases{}, &SchemaError{Path: "$", Reason: "can't turn into phrases"}
	}
}

func asSlice(v any) ([]any, error) {
	switch t := v.(type) {
	case []any:
		return t, nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, nil
	default:
		return nil, &SchemaError{Path: "$", Reason: "expected a sequence"}
	}
}

func asStringSlice(v any) ([]string, error) {
	items, err := asSlice(v)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &SchemaError{Path: "$", Reason: "expected a string"}
		}
		out[i] = s
	}
	return out, nil
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	default:
		return 0, false
	}
}
