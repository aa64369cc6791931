package combi

import (
	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/restree"
)

// EmptyP always succeeds with a zero-length Structural node, consuming
// nothing.
func EmptyP[S, T any]() Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		return state, restree.Leaf[T](restree.Structural, zeroSpan(line, col), *new(T)), true
	}
}

// FailP always fails.
func FailP[S, T any]() Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		var zero restree.Tree[T]
		return state, zero, false
	}
}

// CharP succeeds on a single character satisfying pred, producing a
// Discarded one-character node. It fails at end-of-line or end-of-input.
func CharP[S, T any](pred func(ch rune) bool) Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		var zero restree.Tree[T]
		if line >= model.LineCount() {
			return state, zero, false
		}
		ch, ok := model.CharAt(line, col)
		if !ok || !pred(ch) {
			return state, zero, false
		}
		span := itext.Span{Start: itext.Position{Line: line, Col: col}, End: itext.Position{Line: line, Col: col + 1}}
		return state, restree.DiscardedLeaf[T](span), true
	}
}

// AnyCharP matches any single character.
func AnyCharP[S, T any]() Parser[S, T] {
	return CharP[S, T](func(rune) bool { return true })
}

// NewlineP succeeds at the end of a non-last line, producing a Discarded
// node spanning (line, col) to (line+1, 0).
func NewlineP[S, T any]() Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		var zero restree.Tree[T]
		l := model.LineAt(line)
		if col != len(l) || line+1 >= model.LineCount() {
			return state, zero, false
		}
		span := itext.Span{Start: itext.Position{Line: line, Col: col}, End: itext.Position{Line: line + 1, Col: 0}}
		return state, restree.DiscardedLeaf[T](span), true
	}
}

// EofP succeeds at the model's overall end: either lineCount == line, or at
// the end of the last line.
func EofP[S, T any]() Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		var zero restree.Tree[T]
		n := model.LineCount()
		atEnd := line == n || (line == n-1 && col == len(model.LineAt(line)))
		if !atEnd {
			return state, zero, false
		}
		return state, restree.DiscardedLeaf[T](zeroSpan(line, col)), true
	}
}

// BolP succeeds at the start of any existing line.
func BolP[S, T any]() Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		var zero restree.Tree[T]
		if col != 0 || line >= model.LineCount() {
			return state, zero, false
		}
		return state, restree.DiscardedLeaf[T](zeroSpan(line, col)), true
	}
}

// EolP succeeds at end-of-input or end-of-line: EofP | NewlineP.
func EolP[S, T any]() Parser[S, T] {
	return OrP(EofP[S, T](), NewlineP[S, T]())
}

// NotP succeeds, producing a zero-length Discarded node and leaving state
// unchanged, iff p fails at (line, col).
func NotP[S, T any](p Parser[S, T]) Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		var zero restree.Tree[T]
		if _, _, ok := p(state, model, line, col); ok {
			return state, zero, false
		}
		return state, restree.DiscardedLeaf[T](zeroSpan(line, col)), true
	}
}

// LookaheadP succeeds, producing a zero-length Discarded node and leaving
// state unchanged, iff p succeeds at (line, col). p's own result and state
// updates are discarded.
func LookaheadP[S, T any](p Parser[S, T]) Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		var zero restree.Tree[T]
		if _, _, ok := p(state, model, line, col); !ok {
			return state, zero, false
		}
		return state, restree.DiscardedLeaf[T](zeroSpan(line, col)), true
	}
}
