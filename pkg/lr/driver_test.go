package lr_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/indentparse/internal/logging"
	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/lr"
	"github.com/yaklabco/indentparse/pkg/restree"
)

// Classic E -> E + T | T ; T -> num table (Dragon-book shape), hand-built
// rather than generated since LR(1) graph construction is out of scope.
//
// s0 [.E, .T]            num: shift 5           goto E->1, T->4
// s1 [E.  , E.+T]        +: shift 2, $: accept
// s2 [E+.T]              num: shift 5           goto T->3
// s3 [E+T.]              +: reduce0, $: reduce0
// s4 [T.]                +: reduce1, $: reduce1
// s5 [num.]              +: reduce2, $: reduce2
func exprGraph() (lr.Grammar, *lr.Graph) {
	grammar := lr.Grammar{
		Rules: []lr.Rule{
			{LHS: "E", RHS: []lr.Symbol{"E", "+", "T"}}, // rule 0
			{LHS: "E", RHS: []lr.Symbol{"T"}},            // rule 1
			{LHS: "T", RHS: []lr.Symbol{"num"}},          // rule 2
		},
		EOF: "$",
	}

	graph := &lr.Graph{
		NumStates: 6,
		Actions: map[int]map[lr.Symbol]lr.TableAction{
			0: {"num": {Kind: lr.ActionShift, Target: 5}},
			1: {"+": {Kind: lr.ActionShift, Target: 2}, "$": {Kind: lr.ActionAccept}},
			2: {"num": {Kind: lr.ActionShift, Target: 5}},
			3: {"+": {Kind: lr.ActionReduce, Rule: 0}, "$": {Kind: lr.ActionReduce, Rule: 0}},
			4: {"+": {Kind: lr.ActionReduce, Rule: 1}, "$": {Kind: lr.ActionReduce, Rule: 1}},
			5: {"+": {Kind: lr.ActionReduce, Rule: 2}, "$": {Kind: lr.ActionReduce, Rule: 2}},
		},
		Goto: map[int]map[lr.Symbol]int{
			0: {"E": 1, "T": 4},
			2: {"T": 3},
		},
	}
	return grammar, graph
}

func numParser(requested []lr.Symbol, state string, model itext.TextModel, line, col int) []lr.TerminalMatch[string, string] {
	if !contains(requested, "num") {
		return nil
	}
	runes := model.LineAt(line)
	start := col
	for col < len(runes) && runes[col] >= '0' && runes[col] <= '9' {
		col++
	}
	if col == start {
		return nil
	}
	tree := restree.Tree[string]{Kind: restree.Labeled, Label: "num", Span: itext.NewSpan(line, start, line, col)}
	return []lr.TerminalMatch[string, string]{{Symbol: "num", State: state + string(runes[start:col]), Result: tree}}
}

func plusParser(requested []lr.Symbol, state string, model itext.TextModel, line, col int) []lr.TerminalMatch[string, string] {
	if !contains(requested, "+") {
		return nil
	}
	runes := model.LineAt(line)
	if col >= len(runes) || runes[col] != '+' {
		return nil
	}
	tree := restree.Tree[string]{Kind: restree.Labeled, Label: "+", Span: itext.NewSpan(line, col, line, col+1)}
	return []lr.TerminalMatch[string, string]{{Symbol: "+", State: state + "+", Result: tree}}
}

func eofParser(requested []lr.Symbol, state string, model itext.TextModel, line, col int) []lr.TerminalMatch[string, string] {
	if !contains(requested, "$") {
		return nil
	}
	if line != model.LineCount()-1 || col != len(model.LineAt(line)) {
		return nil
	}
	tree := restree.Tree[string]{Kind: restree.Structural, Span: itext.NewSpan(line, col, line, col)}
	return []lr.TerminalMatch[string, string]{{Symbol: "$", State: state, Result: tree}}
}

func contains(syms []lr.Symbol, target lr.Symbol) bool {
	for _, s := range syms {
		if s == target {
			return true
		}
	}
	return false
}

func exprDriver() *lr.Driver[string, string] {
	driver, _ := exprDriverAndReport()
	return driver
}

func exprDriverAndReport() (*lr.Driver[string, string], lr.ConflictReport) {
	grammar, graph := exprGraph()
	terminals := lr.OrTerminalParsers(numParser, plusParser, eofParser)
	labels := map[lr.Symbol]string{"E": "E", "T": "T"}
	invalid := "Invalid"
	return lr.BuildParsers[string, string](grammar, graph, terminals, labels, &invalid, nil)
}

// E4: "1+2+3" parses to a Labeled E whose children are [E, +, T],
// recursively, with leaves 1, 2, 3.
func TestDriver_ParsesExpression(t *testing.T) {
	t.Parallel()

	model := itext.NewFromLines([]string{"1+2+3"})
	result := exprDriver().RunMaximumInvalid(model, "", 0, 0)
	require.True(t, result.Ok)

	root := result.Tree
	assert.Equal(t, restree.Labeled, root.Kind)
	assert.Equal(t, "E", root.Label)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "E", root.Children[0].Label)
	assert.Equal(t, "+", root.Children[1].Label)
	assert.Equal(t, "T", root.Children[2].Label)
	assert.Equal(t, itext.NewSpan(0, 0, 0, 5), root.Span)

	inner := root.Children[0]
	require.Len(t, inner.Children, 3)
	assert.Equal(t, "T", inner.Children[2].Label)

	base := inner.Children[0]
	assert.Equal(t, "E", base.Label)
	require.Len(t, base.Children, 1)
	assert.Equal(t, "T", base.Children[0].Label)
	require.Len(t, base.Children[0].Children, 1)
	assert.Equal(t, "num", base.Children[0].Children[0].Label)
	assert.Equal(t, itext.NewSpan(0, 0, 0, 1), base.Children[0].Children[0].Span)
}

// E5: maximum-valid on "1+2+" restarts from the last final state and
// returns the parse of "1+2"; maximum-invalid returns an invalid-labeled
// node covering the full "1+2+".
func TestDriver_MaximumValidRestartsAtLastFinalState(t *testing.T) {
	t.Parallel()

	model := itext.NewFromLines([]string{"1+2+"})

	invalidResult := exprDriver().RunMaximumInvalid(model, "", 0, 0)
	require.True(t, invalidResult.Ok)
	assert.Equal(t, "Invalid", invalidResult.Tree.Label)
	assert.Equal(t, itext.NewSpan(0, 0, 0, 4), invalidResult.Tree.Span)

	validResult := exprDriver().RunMaximumValid(model, "", 0, 0)
	require.True(t, validResult.Ok)
	assert.Equal(t, "E", validResult.Tree.Label)
	assert.Equal(t, itext.NewSpan(0, 0, 0, 3), validResult.Tree.Span)
	require.Len(t, validResult.Tree.Children, 3)
}

func TestBuildParsers_NoConflictsWhenReducesNeverShareAStateWithShift(t *testing.T) {
	t.Parallel()

	_, report := exprDriverAndReport()
	assert.Empty(t, report.Conflicts, "every reduce state in this grammar is unconditional")
}

func TestDriver_LogsStepTraceThroughConfiguredLogger(t *testing.T) {
	t.Parallel()

	grammar, graph := exprGraph()
	terminals := lr.OrTerminalParsers(numParser, plusParser, eofParser)
	labels := map[lr.Symbol]string{"E": "E", "T": "T"}
	invalid := "Invalid"

	var buf bytes.Buffer
	logger := logging.New("debug")
	logger.SetOutput(&buf)
	driver, _ := lr.BuildParsers[string, string](grammar, graph, terminals, labels, &invalid, logger)

	model := itext.NewFromLines([]string{"1+2"})
	result := driver.RunMaximumInvalid(model, "", 0, 0)
	require.True(t, result.Ok)

	out := buf.String()
	assert.Contains(t, out, "lr: shift")
	assert.Contains(t, out, "lr: reduce")
}

func TestBuildParsers_WarnsOnConflict(t *testing.T) {
	t.Parallel()

	grammar := lr.Grammar{Rules: []lr.Rule{{LHS: "S", RHS: []lr.Symbol{"a"}}}, EOF: "$"}
	graph := &lr.Graph{
		NumStates: 2,
		Actions: map[int]map[lr.Symbol]lr.TableAction{
			0: {"a": {Kind: lr.ActionShift, Target: 1}, "b": {Kind: lr.ActionReduce, Rule: 0}},
		},
		Goto: map[int]map[lr.Symbol]int{},
	}

	var buf bytes.Buffer
	logger := logging.New("debug")
	logger.SetOutput(&buf)

	_, report := lr.BuildParsers[string, string](grammar, graph, nil, nil, nil, logger)
	require.Len(t, report.Conflicts, 1)
	assert.Contains(t, buf.String(), "conflicts")
}

func TestOrGreedyTerminalParsers_StopsAtFirstNonEmpty(t *testing.T) {
	t.Parallel()

	calledSecond := false
	first := func(requested []lr.Symbol, state string, model itext.TextModel, line, col int) []lr.TerminalMatch[string, string] {
		return numParser(requested, state, model, line, col)
	}
	second := func(requested []lr.Symbol, state string, model itext.TextModel, line, col int) []lr.TerminalMatch[string, string] {
		calledSecond = true
		return nil
	}

	model := itext.NewFromLines([]string{"1"})
	matches := lr.OrGreedyTerminalParsers(first, second)([]lr.Symbol{"num"}, "", model, 0, 0)

	require.Len(t, matches, 1)
	assert.False(t, calledSecond)
}
