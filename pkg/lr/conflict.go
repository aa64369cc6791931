package lr

// Conflict names one nonterminal whose reduce actions share a state with a
// competing action (shift, or another reduce), and every state that
// pattern was seen in. These are not necessarily errors — the driver
// resolves them via Read's per-terminal disambiguation — but they mark
// grammar corners worth a human's attention.
type Conflict struct {
	Nonterminal Symbol
	States      []int
}

// ConflictReport is the diagnostic surface BuildParsers returns alongside
// the constructed Driver: every nonterminal a Read plan had to
// disambiguate around, and where.
type ConflictReport struct {
	Conflicts []Conflict
}

// detectConflicts scans the already-synthesized per-state plans for
// PlanRead states carrying a Reduce option, and groups those states by the
// reducing rule's LHS.
func detectConflicts(grammar Grammar, plans map[int]*ActionPlan) ConflictReport {
	byNonterminal := map[Symbol][]int{}

	for state := 0; state < len(plans); state++ {
		plan := plans[state]
		if plan.Kind != PlanRead {
			continue
		}
		for _, opt := range plan.Options {
			if opt.Continuation.Kind != PlanReduce {
				continue
			}
			lhs := grammar.Rules[opt.Continuation.Rule].LHS
			byNonterminal[lhs] = append(byNonterminal[lhs], state)
		}
	}

	report := ConflictReport{Conflicts: make([]Conflict, 0, len(byNonterminal))}
	for nonterminal, states := range byNonterminal {
		report.Conflicts = append(report.Conflicts, Conflict{Nonterminal: nonterminal, States: states})
	}
	return report
}
