package query

import "strconv"

var infixPrecedence = map[Kind]int{
	OR:  10,
	AND: 20,
	NOT: 30,
}

// Parser is a recursive-descent parser over a fixed token stream,
// with one token of lookahead.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse lexes and parses a complete query string.
func Parse(q string) (Query, error) {
	tokens, err := Lex(q)
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens, pos: -1}
	result, err := p.parseQuery(0)
	if err != nil {
		return nil, err
	}
	if p.lookahead().Kind != EOF {
		return nil, &ParseError{Position: p.lookahead().Position, Message: "unexpected trailing input"}
	}
	return result, nil
}

func (p *Parser) lookahead() Token {
	return p.tokens[p.pos+1]
}

func (p *Parser) peek2() Token {
	if p.pos+2 < len(p.tokens) {
		return p.tokens[p.pos+2]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) take() Token {
	p.pos++
	return p.tokens[p.pos]
}

func (p *Parser) parseQuery(rbp int) (Query, error) {
	left, err := p.parsePart()
	if err != nil {
		return nil, err
	}

	for rbp < infixPrecedence[p.lookahead().Kind] {
		op := p.take()
		right, err := p.parseQuery(infixPrecedence[op.Kind])
		if err != nil {
			return nil, err
		}
		left = infix(op.Kind, left, right)
	}

	return left, nil
}

func (p *Parser) parsePart() (Query, error) {
	la := p.lookahead()

	if la.Kind == MINUS || la.Kind == LBRACE || (la.Kind == STRING && p.peek2().Kind == COLON) {
		return p.parseColumnFilter()
	}

	if la.Kind == LPAREN {
		open := p.take()
		inner, err := p.parseQuery(0)
		if err != nil {
			return nil, err
		}
		if p.lookahead().Kind != RPAREN {
			if p.lookahead().Kind == EOF {
				return nil, &ParseError{Position: open.Position, Message: "unclosed ("}
			}
			return nil, &ParseError{Position: p.lookahead().Position, Message: "expected )"}
		}
		p.take()
		return inner, nil
	}

	if la.Kind == NEAR {
		var nears []Query
		for p.lookahead().Kind == NEAR {
			n, err := p.parseNear()
			if err != nil {
				return nil, err
			}
			nears = append(nears, n)
		}
		if len(nears) == 1 {
			return nears[0], nil
		}
		return And{Children: nears}, nil
	}

	return p.parsePhrases()
}

func (p *Parser) parsePhrase(first bool) (Phrase, error) {
	var ph Phrase

	if p.lookahead().Kind == CARET {
		ph.Initial = true
		p.take()
	}
	if !first && !ph.Initial && p.lookahead().Kind == PLUS {
		ph.Sequence = true
		p.take()
	}

	tok := p.take()
	if tok.Kind != STRING {
		return Phrase{}, &ParseError{Position: tok.Position, Message: "expected a search term"}
	}
	ph.Text = tok.Value

	if p.lookahead().Kind == STAR {
		p.take()
		ph.Prefix = true
	}

	return ph, nil
}

func (p *Parser) parsePhrases() (Phrases, error) {
	var phrases Phrases

	first, err := p.parsePhrase(true)
	if err != nil {
		return Phrases{}, err
	}
	phrases.Phrases = append(phrases.Phrases, first)

	for {
		k := p.lookahead().Kind
		if k != PLUS && k != STRING && k != CARET {
			break
		}
		next, err := p.parsePhrase(false)
		if err != nil {
			return Phrases{}, err
		}
		phrases.Phrases = append(phrases.Phrases, next)
	}

	return phrases, nil
}

func (p *Parser) parseNear() (Near, error) {
	p.take() // NEAR

	open := p.take()
	if open.Kind != LPAREN {
		return Near{}, &ParseError{Position: open.Position, Message: "expected ("}
	}

	phrases, err := p.parsePhrases()
	if err != nil {
		return Near{}, err
	}
	if len(phrases.Phrases) < 2 {
		return Near{}, &ParseError{Position: p.lookahead().Position, Message: "at least two phrases must be present for NEAR"}
	}

	distance := defaultNearDistance
	if p.lookahead().Kind == COMMA {
		p.take()
		num := p.take()
		n, convErr := strconv.Atoi(num.Value)
		if num.Kind != STRING || convErr != nil || !isAllDigits(num.Value) {
			return Near{}, &ParseError{Position: num.Position, Message: "expected number"}
		}
		distance = n
	}

	if p.lookahead().Kind != RPAREN {
		return Near{}, &ParseError{Position: p.lookahead().Position, Message: "expected )"}
	}
	p.take()

	return Near{Phrases: phrases, Distance: distance}, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (p *Parser) parseColumnFilter() (ColumnFilter, error) {
	filter := Include
	var columns []string

	if p.lookahead().Kind == MINUS {
		filter = Exclude
		p.take()
	}

	if p.lookahead().Kind == LBRACE {
		p.take()
		for p.lookahead().Kind == STRING {
			columns = append(columns, p.take().Value)
		}
		if len(columns) == 0 {
			return ColumnFilter{}, &ParseError{Position: p.lookahead().Position, Message: "expected column name"}
		}
		if p.lookahead().Kind != RBRACE {
			return ColumnFilter{}, &ParseError{Position: p.lookahead().Position, Message: "expected }"}
		}
		p.take()
	} else {
		if p.lookahead().Kind != STRING {
			return ColumnFilter{}, &ParseError{Position: p.lookahead().Position, Message: "expected column name"}
		}
		columns = append(columns, p.take().Value)
	}

	if p.lookahead().Kind != COLON {
		return ColumnFilter{}, &ParseError{Position: p.lookahead().Position, Message: "expected :"}
	}
	p.take()

	var inner Query
	var err error
	switch p.lookahead().Kind {
	case LPAREN:
		inner, err = p.parsePart()
	case NEAR:
		inner, err = p.parsePart()
	default:
		inner, err = p.parsePhrases()
	}
	if err != nil {
		return ColumnFilter{}, err
	}

	return ColumnFilter{Columns: columns, Filter: filter, Query: inner}, nil
}

func infix(op Kind, left, right Query) Query {
	if op == NOT {
		return Not{Match: left, NoMatch: right}
	}
	switch op {
	case AND:
		if existing, ok := left.(And); ok {
			existing.Children = append(existing.Children, right)
			return existing
		}
		return And{Children: []Query{left, right}}
	case OR:
		if existing, ok := left.(Or); ok {
			existing.Children = append(existing.Children, right)
			return existing
		}
		return Or{Children: []Query{left, right}}
	}
	panic("unreachable infix operator")
}
