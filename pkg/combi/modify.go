package combi

import (
	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/restree"
)

// ModifyResultP post-processes a successful parse of p by rewriting its
// whole result via fn. Returning ok=false from fn turns a p success into a
// failure.
func ModifyResultP[S, T any](p Parser[S, T], fn func(state S, result restree.Tree[T]) (restree.Tree[T], bool)) Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		next, tree, ok := p(state, model, line, col)
		var zero restree.Tree[T]
		if !ok {
			return state, zero, false
		}
		rewritten, keep := fn(next, tree)
		if !keep {
			return state, zero, false
		}
		return next, rewritten, true
	}
}

// ModifyTypeP rewrites only a Labeled result's label via fn, leaving kind,
// span and children untouched.
func ModifyTypeP[S, T any](p Parser[S, T], fn func(label T) T) Parser[S, T] {
	return ModifyResultP(p, func(_ S, result restree.Tree[T]) (restree.Tree[T], bool) {
		if result.Kind == restree.Labeled {
			result.Label = fn(result.Label)
		}
		return result, true
	})
}

// SetTypeP forces a successful result's label to label and its kind to
// Labeled, regardless of what p produced.
func SetTypeP[S, T any](p Parser[S, T], label T) Parser[S, T] {
	return ModifyResultP(p, func(_ S, result restree.Tree[T]) (restree.Tree[T], bool) {
		result.Kind = restree.Labeled
		result.Label = label
		return result, true
	})
}
