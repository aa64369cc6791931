package lr

import (
	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/yaklabco/indentparse/internal/logging"
	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/perr"
	"github.com/yaklabco/indentparse/pkg/restree"
)

// Driver is a constructed LR(1) engine: a finished Graph, its per-state
// ActionPlans derived once at construction, and the collaborators needed
// to run it — terminal parsers and nonterminal labels.
type Driver[S, T any] struct {
	Grammar           Grammar
	Graph             *Graph
	Terminals         TerminalParsers[S, T]
	NonterminalLabels map[Symbol]T
	Invalid           *T
	plans             map[int]*ActionPlan
	finalStates       map[int]bool
	logger            *log.Logger
}

// BuildParsers derives per-state ActionPlans and the final-state set from
// graph, and returns a Driver ready to run. logger may be nil.
func BuildParsers[S, T any](
	grammar Grammar,
	graph *Graph,
	terminals TerminalParsers[S, T],
	nonterminalLabels map[Symbol]T,
	invalid *T,
	logger *log.Logger,
) (*Driver[S, T], ConflictReport) {
	plans := make(map[int]*ActionPlan, graph.NumStates)
	finalStates := make(map[int]bool, graph.NumStates)

	for state := 0; state < graph.NumStates; state++ {
		row := graph.Actions[state]
		plans[state] = synthesizePlan(row)

		nextTerminals := lo.Keys(row)
		if lo.Contains(nextTerminals, grammar.EOF) {
			finalStates[state] = true
		}
	}

	driver := &Driver[S, T]{
		Grammar:           grammar,
		Graph:             graph,
		Terminals:         terminals,
		NonterminalLabels: nonterminalLabels,
		Invalid:           invalid,
		plans:             plans,
		finalStates:       finalStates,
		logger:            logger,
	}

	report := detectConflicts(grammar, plans)
	if len(report.Conflicts) > 0 && logger != nil {
		logger.Warn("lr: grammar has shift/reduce conflicts", logging.FieldConflicts, len(report.Conflicts))
	}
	return driver, report
}

func (d *Driver[S, T]) debug(msg string, keyvals ...interface{}) {
	if d.logger != nil {
		d.logger.Debug(msg, keyvals...)
	}
}

// ParseResult is what running a Driver to completion produces.
type ParseResult[S, T any] struct {
	State     S
	Tree      restree.Tree[T]
	Ok        bool
	LastValid itext.Position
	HasValid  bool
}

type outcome int

const (
	outcomeContinue outcome = iota
	outcomeAccept
	outcomeError
)

// runtime carries the mutable state of a single parse attempt: the LR
// state stack, its parallel value stack, and the threaded user state and
// cursor position.
type runtime[S, T any] struct {
	lrStack []int
	values  []restree.Tree[T]
	cur     S
	line    int
	col     int
}

// RunMaximumValid runs the driver to completion or failure and, on
// failure, truncates the input at the last position at which the parser
// sat in a final state and runs again from the original (line, col) over
// that truncated view — the maximum-valid restart policy.
// It returns the tree recognized up to that point and hasValid reports
// whether any final state was ever reached.
func (d *Driver[S, T]) RunMaximumValid(model itext.TextModel, state S, line, col int) ParseResult[S, T] {
	final, tree, lastValid, hasValid, failLine, failCol, ok := d.run(model, state, line, col)
	if ok {
		return ParseResult[S, T]{State: final, Tree: tree, Ok: true, LastValid: lastValid, HasValid: hasValid}
	}
	if !hasValid {
		return d.invalidResult(line, col, failLine, failCol)
	}

	d.debug("lr: restarting at last valid position", logging.FieldLastValid, lastValid.String())
	truncated := itext.Until(model, lastValid.Line, lastValid.Col)
	restartFinal, restartTree, _, _, _, _, restartOK := d.run(truncated, state, line, col)
	if !restartOK {
		return d.invalidResult(line, col, lastValid.Line, lastValid.Col)
	}
	return ParseResult[S, T]{State: restartFinal, Tree: restartTree, Ok: true, LastValid: lastValid, HasValid: true}
}

// RunMaximumInvalid runs the driver once and reports failure verbatim,
// without the maximum-valid restart. Used by callers that want to surface
// exactly where a parse first went wrong.
func (d *Driver[S, T]) RunMaximumInvalid(model itext.TextModel, state S, line, col int) ParseResult[S, T] {
	final, tree, lastValid, hasValid, failLine, failCol, ok := d.run(model, state, line, col)
	if ok {
		return ParseResult[S, T]{State: final, Tree: tree, Ok: true, LastValid: lastValid, HasValid: hasValid}
	}
	return d.invalidResult(line, col, failLine, failCol)
}

// invalidResult builds the invalid-labeled best-effort partial tree
// spanning [startLine:startCol to endLine:endCol[, or reports plain
// failure when no invalid label was configured.
func (d *Driver[S, T]) invalidResult(startLine, startCol, endLine, endCol int) ParseResult[S, T] {
	if d.Invalid == nil {
		return ParseResult[S, T]{Ok: false}
	}
	span := itext.Span{
		Start: itext.Position{Line: startLine, Col: startCol},
		End:   itext.Position{Line: endLine, Col: endCol},
	}
	node := restree.Tree[T]{Kind: restree.Labeled, Label: *d.Invalid, Span: span}
	return ParseResult[S, T]{Tree: node, Ok: true}
}

func (d *Driver[S, T]) run(model itext.TextModel, state S, line, col int) (S, restree.Tree[T], itext.Position, bool, int, int, bool) {
	rt := &runtime[S, T]{lrStack: []int{0}, cur: state, line: line, col: col}
	var lastValid itext.Position
	hasValid := false

	for {
		top := rt.lrStack[len(rt.lrStack)-1]
		if d.finalStates[top] {
			lastValid = itext.Position{Line: rt.line, Col: rt.col}
			hasValid = true
			d.debug("lr: final state reached", logging.FieldLRState, top, logging.FieldLine, rt.line, logging.FieldCol, rt.col)
		}

		switch d.execState(top, model, rt) {
		case outcomeContinue:
			continue
		case outcomeAccept:
			return rt.cur, rt.values[0], lastValid, hasValid, rt.line, rt.col, true
		default:
			var zero restree.Tree[T]
			return rt.cur, zero, lastValid, hasValid, rt.line, rt.col, false
		}
	}
}

func (d *Driver[S, T]) execState(top int, model itext.TextModel, rt *runtime[S, T]) outcome {
	plan := d.plans[top]
	switch plan.Kind {
	case PlanError:
		return outcomeError
	case PlanAccept:
		if len(rt.values) != 1 {
			perr.Panic(perr.InternalError, "accept reached with a non-singleton value stack")
		}
		return outcomeAccept
	case PlanReduce:
		return d.reduce(plan, rt)
	case PlanShift:
		// The driver only ever reaches PlanShift as a Read continuation
		// (see execRead); a bare top-level Shift plan means synthesizePlan
		// produced one, which it never does.
		perr.Panic(perr.InternalError, "bare Shift plan with no preceding Read")
		return outcomeError
	case PlanRead:
		return d.execRead(plan, model, rt)
	default:
		return outcomeError
	}
}

// execRead drives a (possibly chained) Read decision: it reads terminals
// one at a time, following each match's option to its continuation, until
// it reaches a Shift, Reduce, Accept, or Error leaf. Read tokens are kept
// only in the local buffer; nothing about rt is mutated until the leaf is
// known, so a Reduce/Accept leaf rolls back to rt's original position and
// state exactly as if nothing had been read (reduce never consumes input).
func (d *Driver[S, T]) execRead(plan *ActionPlan, model itext.TextModel, rt *runtime[S, T]) outcome {
	type buffered struct {
		symbol Symbol
		state  S
		tree   restree.Tree[T]
	}

	var buf []buffered
	curState := rt.cur
	curLine, curCol := rt.line, rt.col

	for {
		requested := candidateUnion(plan.Options)
		matches := filterToRequested(d.Terminals(requested, curState, model, curLine, curCol), requested)
		if len(matches) != 1 {
			d.debug("lr: read failed", logging.FieldError, "ambiguous or empty match", logging.FieldLine, curLine, logging.FieldCol, curCol)
			return outcomeError
		}
		match := matches[0]
		d.debug("lr: read", logging.FieldSymbol, string(match.Symbol), logging.FieldLine, curLine, logging.FieldCol, curCol)

		opt, found := findOption(plan.Options, match.Symbol)
		if !found {
			d.debug("lr: read failed", logging.FieldError, "matched symbol not among plan options", logging.FieldSymbol, string(match.Symbol))
			return outcomeError
		}

		buf = append(buf, buffered{symbol: match.Symbol, state: match.State, tree: match.Result})
		curState = match.State
		curLine, curCol = match.Result.Span.End.Line, match.Result.Span.End.Col

		switch opt.Continuation.Kind {
		case PlanRead:
			plan = opt.Continuation
			continue
		case PlanShift:
			munch := opt.Continuation.Munch
			if munch <= 0 || munch > len(buf) {
				perr.Panic(perr.InternalError, "shift munch out of range for buffered reads")
			}
			committed := buf[:munch]
			var value restree.Tree[T]
			if munch == 1 {
				value = committed[0].tree
			} else {
				trees := make([]restree.Tree[T], munch)
				for i, c := range committed {
					trees[i] = c.tree
				}
				start := committed[0].tree.Span.Start
				end := committed[munch-1].tree.Span.End
				value = restree.Join(trees, restree.AsStructural[T](), &start, &end)
			}
			rt.lrStack = append(rt.lrStack, opt.Continuation.Target)
			rt.values = append(rt.values, value)
			rt.cur = committed[munch-1].state
			rt.line, rt.col = committed[munch-1].tree.Span.End.Line, committed[munch-1].tree.Span.End.Col
			d.debug("lr: shift", logging.FieldAction, "shift", logging.FieldLRState, opt.Continuation.Target, logging.FieldState, rt.cur, logging.FieldMunch, munch)
			return outcomeContinue
		case PlanReduce:
			return d.reduce(opt.Continuation, rt)
		case PlanAccept:
			if len(rt.values) != 1 {
				perr.Panic(perr.InternalError, "accept reached with a non-singleton value stack")
			}
			return outcomeAccept
		default:
			return outcomeError
		}
	}
}

func (d *Driver[S, T]) reduce(plan *ActionPlan, rt *runtime[S, T]) outcome {
	rule := d.Grammar.Rules[plan.Rule]
	n := len(rule.RHS)
	if len(rt.lrStack) <= n {
		perr.Panic(perr.InternalError, "reduce pops more states than the stack holds")
	}

	var start, end itext.Position
	var children []restree.Tree[T]
	if n == 0 {
		start = itext.Position{Line: rt.line, Col: rt.col}
		end = start
	} else {
		children = append(children, rt.values[len(rt.values)-n:]...)
		start = children[0].Span.Start
		end = children[len(children)-1].Span.End
	}

	rt.lrStack = rt.lrStack[:len(rt.lrStack)-n]
	rt.values = rt.values[:len(rt.values)-n]

	fromState := rt.lrStack[len(rt.lrStack)-1]
	target, ok := d.Graph.gotoState(fromState, rule.LHS)
	if !ok {
		return outcomeError
	}

	opt := restree.AsStructural[T]()
	if label, hasLabel := d.NonterminalLabels[rule.LHS]; hasLabel {
		opt = restree.WithLabel(label)
	}

	rt.lrStack = append(rt.lrStack, target)
	rt.values = append(rt.values, restree.Join(children, opt, &start, &end))
	d.debug("lr: reduce", logging.FieldAction, "reduce", logging.FieldRule, plan.Rule, logging.FieldNonterminal, string(rule.LHS))
	return outcomeContinue
}
