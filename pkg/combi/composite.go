package combi

import (
	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/restree"
)

// SeqP threads state and cursor through each parser in order, failing as
// soon as one does, and assembles a Structural node spanning the whole run.
// Zero parsers returns EmptyP's behavior; a single parser is returned
// unwrapped.
func SeqP[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	switch len(ps) {
	case 0:
		return EmptyP[S, T]()
	case 1:
		return ps[0]
	}
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		startLine, startCol := line, col
		results := make([]restree.Tree[T], 0, len(ps))
		cur := state
		for _, p := range ps {
			next, tree, ok := p(cur, model, line, col)
			var zero restree.Tree[T]
			if !ok {
				return state, zero, false
			}
			cur = next
			results = append(results, tree)
			line, col = tree.Span.End.Line, tree.Span.End.Col
		}
		start := itext.Position{Line: startLine, Col: startCol}
		node := restree.Join(results, restree.AsStructural[T](), &start, nil)
		return cur, node, true
	}
}

// OrP tries each parser in order and returns the first success, with no
// backtracking inside the chosen branch.
func OrP[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		for _, p := range ps {
			if next, tree, ok := p(state, model, line, col); ok {
				return next, tree, true
			}
		}
		var zero restree.Tree[T]
		return state, zero, false
	}
}

// OptP is OrP(SeqP(ps...), EmptyP) — ps either all match or the parser
// succeeds with nothing consumed.
func OptP[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	return OrP(SeqP(ps...), EmptyP[S, T]())
}

// RepP greedily repeats SeqP(ps...), always succeeding (possibly with zero
// repetitions), stopping at the first failure of the inner sequence.
func RepP[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	inner := SeqP(ps...)
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		startLine, startCol := line, col
		var results []restree.Tree[T]
		cur := state
		for {
			next, tree, ok := inner(cur, model, line, col)
			if !ok {
				break
			}
			cur = next
			results = append(results, tree)
			line, col = tree.Span.End.Line, tree.Span.End.Col
		}
		start := itext.Position{Line: startLine, Col: startCol}
		end := itext.Position{Line: line, Col: col}
		node := restree.Join(results, restree.AsStructural[T](), &start, &end)
		return cur, node, true
	}
}

// Rep1P requires at least one occurrence: SeqP(p, RepP(p)).
func Rep1P[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	p := SeqP(ps...)
	return SeqP(p, RepP(p))
}

// JoinP matches elem, then repeats (sep, elem): SeqP(elem, RepP(sep, elem)).
func JoinP[S, T any](elem, sep Parser[S, T]) Parser[S, T] {
	return SeqP(elem, RepP(sep, elem))
}

// LazyP defers construction of the wrapped parser to first use and
// memoizes it, which is what makes recursive grammars constructible: a
// combinator can refer to a LazyP(func() Parser[S,T] { return p }) before p
// itself is fully assigned.
func LazyP[S, T any](thunk func() Parser[S, T]) Parser[S, T] {
	var cached Parser[S, T]
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		if cached == nil {
			cached = thunk()
		}
		return cached(state, model, line, col)
	}
}

// LiteralP matches text character by character via CharP, labeling the
// whole run with label.
func LiteralP[S, T any](text string, label T) Parser[S, T] {
	runes := []rune(text)
	ps := make([]Parser[S, T], len(runes))
	for i, want := range runes {
		w := want
		ps[i] = CharP[S, T](func(ch rune) bool { return ch == w })
	}
	inner := SeqP(ps...)
	return func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		model.Assert(line, col)
		next, tree, ok := inner(state, model, line, col)
		var zero restree.Tree[T]
		if !ok {
			return state, zero, false
		}
		labeled := restree.Join([]restree.Tree[T]{tree}, restree.WithLabel(label), &tree.Span.Start, &tree.Span.End)
		return next, labeled, true
	}
}

// LiteralsP is OrP over a set of already-built LiteralP parsers — the
// caller constructs each alternative's LiteralP(text, label) and passes the
// results here.
func LiteralsP[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	return OrP(ps...)
}
