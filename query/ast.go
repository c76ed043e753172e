package query

// Filter selects whether a COLUMNFILTER includes or excludes its columns.
type Filter string

const (
	Include Filter = "include"
	Exclude Filter = "exclude"
)

// Query is any node that can stand as a complete query or as a child
// of a boolean/column-filter node: COLUMNFILTER, NEAR, AND, OR, NOT,
// or PHRASES.
type Query interface {
	queryNode()
	precedence() int
}

// Phrase is one quoted or bare search term with its modifiers.
// Initial and Sequence are mutually exclusive.
type Phrase struct {
	Text     string
	Initial  bool // "^": must match the start of a column
	Prefix   bool // "*": prefix search on the phrase's last token
	Sequence bool // "+": must immediately follow the previous phrase
}

func (Phrase) precedence() int { return 80 }

// Phrases is an implicitly AND-ed run of one or more Phrase atoms.
// The first phrase never has Sequence set.
type Phrases struct {
	Phrases []Phrase
}

func (Phrases) queryNode()     {}
func (Phrases) precedence() int { return 70 }

// Near is a proximity query: phrases must all occur within Distance
// tokens of one another.
type Near struct {
	Phrases  Phrases
	Distance int
}

func (Near) queryNode()     {}
func (Near) precedence() int { return 60 }

// ColumnFilter restricts Query to (or away from) a set of columns.
type ColumnFilter struct {
	Columns []string
	Filter  Filter
	Query   Query
}

func (ColumnFilter) queryNode()     {}
func (ColumnFilter) precedence() int { return 50 }

// And requires every child to match. Has at least two children.
type And struct {
	Children []Query
}

func (And) queryNode()     {}
func (And) precedence() int { return 20 }

// Or requires at least one child to match. Has at least two children.
type Or struct {
	Children []Query
}

func (Or) queryNode()     {}
func (Or) precedence() int { return 10 }

// Not requires Match and rejects No_Match.
type Not struct {
	Match   Query
	NoMatch Query
}

func (Not) queryNode()     {}
func (Not) precedence() int { return 30 }

const defaultNearDistance = 10
