// Package lr implements the table-driven LR(1) engine: given a finished
// LR(1) state graph and a set of combinator-shaped terminal parsers, it
// drives a shift/reduce/accept loop producing the same restree.Tree shape
// the combinators in pkg/combi produce, including the maximum-valid restart
// failure policy.
package lr

// Symbol is an opaque grammar-symbol handle: a nonterminal, a terminal, or
// the grammar's designated final/EOF terminal. Grammar-symbol interning is
// out of scope (see SPEC_FULL.md §1) — callers are free to use any
// comparable naming scheme; this package only ever compares symbols for
// equality and uses them as map keys.
type Symbol string

// Rule is one production lhs -> rhs[0] rhs[1] ... rhs[n-1].
type Rule struct {
	LHS Symbol
	RHS []Symbol
}

// Grammar is the abstract grammar over opaque symbol handles: its rules
// plus the designated EOF terminal.
type Grammar struct {
	Rules []Rule
	EOF   Symbol
}

// ActionKind classifies one cell of the raw shift/reduce/accept action
// table computed elsewhere (outside this package — LR(1) graph
// construction is out of scope, see SPEC_FULL.md §1).
type ActionKind int

const (
	// actionUndefined marks the absence of a table entry; it is never
	// stored, only returned by lookups that miss.
	actionUndefined ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// TableAction is one raw action-table cell: what to do on a given
// (state, terminal) pair.
type TableAction struct {
	Kind   ActionKind
	Target int // shift target state, when Kind == ActionShift
	Rule   int // index into Grammar.Rules, when Kind == ActionReduce
}

// Graph is the finished LR(1) state graph this package consumes: states
// numbered 0..NumStates-1, a per-state terminal action table, and a
// per-state nonterminal goto table. Constructing this graph (the LALR/LR(1)
// table-generation algorithm) is out of scope; Graph is a plain data value
// handed to BuildParsers.
type Graph struct {
	NumStates int
	Actions   map[int]map[Symbol]TableAction
	Goto      map[int]map[Symbol]int
}

// gotoState looks up the goto table entry for (state, nonterminal).
func (g *Graph) gotoState(state int, nonterminal Symbol) (int, bool) {
	row, ok := g.Goto[state]
	if !ok {
		return 0, false
	}
	target, ok := row[nonterminal]
	return target, ok
}
