package restree

import (
	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/perr"
)

// Join builds a node from results following spec.md §4.1:
//
//  1. If startOverride is nil, the start is results[0]'s start; Join panics
//     (perr.InvalidArguments) if results is empty and startOverride is nil.
//     Symmetric for end/endOverride against the last result.
//  2. Children are walked in order with a cursor starting at the computed
//     start. Each child's start must be >= the cursor (perr.InvalidLayout
//     otherwise); the cursor then advances to the child's end.
//  3. After the last child, the cursor must be <= the computed end
//     (perr.InvalidLayout otherwise).
//  4. Discarded children are excluded from the produced children; Labeled
//     and Structural children are retained.
//  5. The returned node's kind and label come from opt.
func Join[T any](results []Tree[T], opt LabelOpt[T], startOverride, endOverride *itext.Position) Tree[T] {
	start, end := joinBounds(results, startOverride, endOverride)

	cursor := start
	kept := make([]Tree[T], 0, len(results))
	for _, child := range results {
		if child.Span.Start.Less(cursor) {
			perr.PanicAt(perr.InvalidLayout, child.Span.Start.Line, child.Span.Start.Col,
				"child starts before the running cursor")
		}
		cursor = child.Span.End
		if child.Kind != Discarded {
			kept = append(kept, child)
		}
	}
	if end.Less(cursor) {
		perr.PanicAt(perr.InvalidLayout, cursor.Line, cursor.Col,
			"children extend past the node's computed end")
	}

	return Tree[T]{
		Kind:     opt.kind,
		Label:    opt.label,
		Span:     itext.Span{Start: start, End: end},
		Children: kept,
	}
}

func joinBounds[T any](results []Tree[T], startOverride, endOverride *itext.Position) (itext.Position, itext.Position) {
	var start, end itext.Position

	if startOverride != nil {
		start = *startOverride
	} else if len(results) > 0 {
		start = results[0].Span.Start
	} else {
		perr.Panic(perr.InvalidArguments, "join: no results and no startOverride")
	}

	if endOverride != nil {
		end = *endOverride
	} else if len(results) > 0 {
		end = results[len(results)-1].Span.End
	} else {
		perr.Panic(perr.InvalidArguments, "join: no results and no endOverride")
	}

	return start, end
}
