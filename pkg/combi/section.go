package combi

import (
	"github.com/yaklabco/indentparse/internal/logging"
	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/restree"
)

// BodyFactory builds the body parser for a section once the bullet has
// matched: it sees the original (unwindowed) source model, the threaded
// state, and the bullet's own result, and returns the parser to run inside
// the body's re-indented window.
type BodyFactory[S, T any] func(sourceModel itext.TextModel, state S, bullet restree.Tree[T]) Parser[S, T]

// SectionP recognizes an indentation-delimited block:
//
//	<bullet>
//	    <body lines, each indented per indentationL>
//	<after>
//
// The body runs against a re-indented window where (0,0) is the body's
// logical start; SectionP shifts the body's tree back into source
// coordinates before assembling the final node. See Option in trace.go for
// why this is the one combinator worth tracing (WithLogger).
func SectionP[S, T any](
	bulletP Parser[S, T],
	bodyPOf BodyFactory[S, T],
	spacesL itext.SkipFunc,
	indentationL itext.SkipFunc,
	afterP Parser[S, T],
	opts ...Option,
) Parser[S, T] {
	o := buildOptions(opts)
	isIndented := func(model itext.TextModel) func(line int) bool {
		return func(line int) bool {
			return spacesL(model.LineAt(line), 0) > 0
		}
	}

	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		var zero restree.Tree[T]
		if col != 0 {
			return state, zero, false
		}

		cutoff := itext.CutOff(model, line, isIndented(model))
		bulletState, bulletResult, ok := bulletP(state, cutoff, line, 0)
		if !ok {
			return state, zero, false
		}
		o.debug("bullet matched", logging.FieldCombinator, "sectionP", logging.FieldLine, line, "end", bulletResult.Span.End.String())

		anchorLine, anchorCol := bulletResult.Span.End.Line, bulletResult.Span.End.Col
		window := itext.CutOut(model, anchorLine, anchorCol, spacesL, indentationL)
		o.debug("body window built", logging.FieldCombinator, "sectionP", logging.FieldAnchorLine, anchorLine, logging.FieldAnchorCol, anchorCol, "lines", window.LineCount())

		bodyP := bodyPOf(model, bulletState, bulletResult)
		bodyState, windowedBody, ok := bodyP(bulletState, window, 0, 0)
		if !ok {
			return state, zero, false
		}

		shiftedBody := shiftTree[T](windowedBody, window)
		o.debug("shift applied", logging.FieldCombinator, "sectionP", logging.FieldShiftLine, shiftedBody.Span.Start.Line, logging.FieldShiftCol, shiftedBody.Span.Start.Col)

		children := []restree.Tree[T]{bulletResult, shiftedBody}
		end := shiftedBody.Span.End

		finalState, afterResult, afterOK := afterP(bodyState, model, end.Line, end.Col)
		if afterOK {
			children = append(children, afterResult)
			end = afterResult.Span.End
			bodyState = finalState
		}

		node := restree.Join(children, restree.AsStructural[T](), nil, &end)
		return bodyState, node, true
	}
}

// shiftTree translates every span in t, recursively, from w's window
// coordinates back to w's own source coordinates (one level; callers
// chaining further windows apply shiftTree again or use Absolute directly).
func shiftTree[T any](t restree.Tree[T], w itext.CutOutModel) restree.Tree[T] {
	sl, sc := w.Shift(t.Span.Start.Line, t.Span.Start.Col)
	el, ec := w.Shift(t.Span.End.Line, t.Span.End.Col)
	t.Span = itext.Span{Start: itext.Position{Line: sl, Col: sc}, End: itext.Position{Line: el, Col: ec}}

	if len(t.Children) == 0 {
		return t
	}
	children := make([]restree.Tree[T], len(t.Children))
	for i, c := range t.Children {
		children[i] = shiftTree(c, w)
	}
	t.Children = children
	return t
}
