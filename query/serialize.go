package query

import (
	"strconv"
	"strings"
)

// Serialize renders q back into FTS5 query syntax. Serialize(Parse(s))
// need not reproduce s byte-for-byte, but parsing its output again
// reproduces the same AST, except that chained AND/OR come back
// flattened (a AND (b AND c) re-parses as one three-child AND).
func Serialize(q Query) string {
	var b strings.Builder
	writeQuery(&b, q)
	return b.String()
}

func writeQuery(b *strings.Builder, q Query) {
	switch v := q.(type) {
	case Phrases:
		writePhrases(b, v)
	case Near:
		writeNear(b, v)
	case ColumnFilter:
		writeColumnFilter(b, v)
	case And:
		writeInfix(b, v, "AND", v.Children)
	case Or:
		writeInfix(b, v, "OR", v.Children)
	case Not:
		writeChild(b, v, v.Match)
		b.WriteString(" NOT ")
		if _, nested := v.NoMatch.(Not); nested {
			// NOT re-parses left-associatively, so a NOT on the right
			// needs explicit parentheses.
			b.WriteByte('(')
			writeQuery(b, v.NoMatch)
			b.WriteByte(')')
		} else {
			writeChild(b, v, v.NoMatch)
		}
	default:
		panic("query: unexpected Query type in Serialize")
	}
}

func writePhrase(b *strings.Builder, ph Phrase) {
	if ph.Initial {
		b.WriteByte('^')
	}
	if ph.Sequence {
		b.WriteByte('+')
	}
	b.WriteString(Quote(ph.Text))
	if ph.Prefix {
		b.WriteByte('*')
	}
}

func writePhrases(b *strings.Builder, ps Phrases) {
	for i, ph := range ps.Phrases {
		if i > 0 {
			b.WriteByte(' ')
		}
		writePhrase(b, ph)
	}
}

func writeNear(b *strings.Builder, n Near) {
	b.WriteString("NEAR(")
	writePhrases(b, n.Phrases)
	if n.Distance != defaultNearDistance {
		b.WriteByte(',')
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(n.Distance))
	}
	b.WriteByte(')')
}

func writeColumnFilter(b *strings.Builder, cf ColumnFilter) {
	if cf.Filter == Exclude {
		b.WriteByte('-')
	}
	if len(cf.Columns) == 1 {
		b.WriteString(Quote(cf.Columns[0]))
	} else {
		b.WriteByte('{')
		for i, c := range cf.Columns {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(Quote(c))
		}
		b.WriteByte('}')
	}
	b.WriteByte(':')
	// Only PHRASES and NEAR can follow the colon bare; anything else
	// must be parenthesised to re-parse as the filter's query.
	switch cf.Query.(type) {
	case Phrases, Near:
		writeQuery(b, cf.Query)
	default:
		b.WriteByte('(')
		writeQuery(b, cf.Query)
		b.WriteByte(')')
	}
}

func writeInfix(b *strings.Builder, parent Query, op string, children []Query) {
	for i, c := range children {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteString(op)
			b.WriteByte(' ')
		}
		writeChild(b, parent, c)
	}
}

// writeChild wraps child in parens when its precedence binds looser
// than parent's, so re-parsing the output reconstructs the same tree.
func writeChild(b *strings.Builder, parent, child Query) {
	if child.precedence() < parent.precedence() {
		b.WriteByte('(')
		writeQuery(b, child)
		b.WriteByte(')')
	} else {
		writeQuery(b, child)
	}
}

// Quote returns text as a bareword if it needs no escaping, or as a
// double-quoted string with internal quotes doubled otherwise.
func Quote(text string) string {
	if text != "" && isBareword(text) {
		return text
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func isBareword(s string) bool {
	if _, isKeyword := keywords[s]; isKeyword {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c == '_':
		case c >= 0x80:
		default:
			return false
		}
	}
	return true
}
