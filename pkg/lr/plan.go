package lr

import "github.com/samber/lo"

// PlanKind classifies one node of a synthesized ActionPlan tree, per
// spec.md §4.5.
type PlanKind int

const (
	PlanError PlanKind = iota
	PlanAccept
	PlanReduce
	PlanShift
	PlanRead
)

// ReadOption is one branch of a Read plan: the terminals that route to
// Continuation once matched.
type ReadOption struct {
	Candidates   []Symbol
	Continuation *ActionPlan
}

// ActionPlan is a precomputed, per-state decision tree derived once from a
// state's raw action-table row. A state whose row names a single Reduce or
// Accept action (no terminal ever disagrees) needs no lookahead and is
// synthesized directly as that leaf; any state that can Shift synthesizes
// as Read, since a Shift always needs the matched terminal's ResultTree.
type ActionPlan struct {
	Kind PlanKind

	// PlanReduce
	Rule int

	// PlanShift
	Target int
	Munch  int

	// PlanRead
	Options []ReadOption
}

// synthesizePlan derives one state's ActionPlan from its raw per-terminal
// action row. This package only ever synthesizes single-level Read plans
// (Munch always 1): resolving a lookahead decision that itself requires
// reading more than one terminal (true maximal-munch chaining) is left to
// callers that hand BuildParsers an already-deeper Graph — the driver's
// runtime executes chained Read plans of any depth (see driver.go), only
// this synthesizer is limited to the single-token case.
func synthesizePlan(row map[Symbol]TableAction) *ActionPlan {
	if len(row) == 0 {
		return &ActionPlan{Kind: PlanError}
	}

	groups := map[TableAction][]Symbol{}
	for sym, act := range row {
		groups[act] = append(groups[act], sym)
	}

	if len(groups) == 1 {
		for act := range groups {
			if act.Kind == ActionReduce {
				return &ActionPlan{Kind: PlanReduce, Rule: act.Rule}
			}
			if act.Kind == ActionAccept {
				return &ActionPlan{Kind: PlanAccept}
			}
			// A lone Shift action still needs a Read to obtain the
			// matched terminal's tree; fall through to the general case.
		}
	}

	options := make([]ReadOption, 0, len(groups))
	for act, syms := range groups {
		options = append(options, ReadOption{
			Candidates:   syms,
			Continuation: leafFromAction(act),
		})
	}
	return &ActionPlan{Kind: PlanRead, Options: options}
}

func leafFromAction(act TableAction) *ActionPlan {
	switch act.Kind {
	case ActionShift:
		return &ActionPlan{Kind: PlanShift, Target: act.Target, Munch: 1}
	case ActionReduce:
		return &ActionPlan{Kind: PlanReduce, Rule: act.Rule}
	case ActionAccept:
		return &ActionPlan{Kind: PlanAccept}
	default:
		return &ActionPlan{Kind: PlanError}
	}
}

// candidateUnion flattens and dedupes the candidate terminals across a
// Read plan's options.
func candidateUnion(options []ReadOption) []Symbol {
	all := make([]Symbol, 0)
	for _, opt := range options {
		all = append(all, opt.Candidates...)
	}
	return lo.Uniq(all)
}

// findOption returns the option whose Candidates contains sym.
func findOption(options []ReadOption, sym Symbol) (ReadOption, bool) {
	for _, opt := range options {
		if lo.Contains(opt.Candidates, sym) {
			return opt, true
		}
	}
	return ReadOption{}, false
}
