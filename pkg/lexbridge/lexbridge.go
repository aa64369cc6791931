// Package lexbridge adapts a Parser into the position-advance function shape
// (itext.SkipFunc-compatible Lexer) that the section combinator's windowing
// uses, and erases a stateful Parser into a stateless one for callers that
// only need yes/no column-advance semantics.
package lexbridge

import (
	"github.com/yaklabco/indentparse/pkg/combi"
	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/restree"
)

// Lexer reports how many columns of line, starting at col, are consumed by
// a match; a negative return means no match.
type Lexer func(line []rune, col int) int

// ParserL wraps a stateful Parser into a Lexer by constructing a
// single-line TextModel from line, running p at column col with the given
// initial state, and returning end-col on success or -1 on failure.
func ParserL[S, T any](p combi.Parser[S, T], initialState S) Lexer {
	return func(line []rune, col int) int {
		model := itext.NewFromLines([]string{string(line)})
		_, tree, ok := p(initialState, model, 0, col)
		if !ok {
			return -1
		}
		return tree.Span.End.Col - col
	}
}

// NullP erases a stateful Parser into a stateless one: every call threads
// initialState in, regardless of the caller-supplied state, and the
// returned state is discarded in favor of initialState again — the
// state-free view a Lexer built over ParserL needs.
func NullP[S, T any](p combi.Parser[S, T], initialState S) combi.Parser[S, T] {
	return func(_ S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool) {
		_, tree, ok := p(initialState, model, line, col)
		return initialState, tree, ok
	}
}
