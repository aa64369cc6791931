package lr

import (
	"github.com/samber/lo"

	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/restree"
)

// TerminalMatch is one candidate terminal reading: which symbol matched,
// the user state after consuming it, and its ResultTree.
type TerminalMatch[S, T any] struct {
	Symbol Symbol
	State  S
	Result restree.Tree[T]
}

// TerminalParsers answers a Read step: given the requested candidate
// symbols, the current user state, and a position, it returns every
// terminal that matches there. The driver requires exactly one match to
// proceed; zero or more than one is an ordinary parse failure at that
// position, never a panic.
type TerminalParsers[S, T any] func(requested []Symbol, state S, model itext.TextModel, line, col int) []TerminalMatch[S, T]

// OrTerminalParsers concatenates every parser's matches, letting the
// driver's exactly-one-match rule police ambiguity between them.
func OrTerminalParsers[S, T any](ps ...TerminalParsers[S, T]) TerminalParsers[S, T] {
	return func(requested []Symbol, state S, model itext.TextModel, line, col int) []TerminalMatch[S, T] {
		var all []TerminalMatch[S, T]
		for _, p := range ps {
			all = append(all, p(requested, state, model, line, col)...)
		}
		return all
	}
}

// OrGreedyTerminalParsers tries each parser in order and returns the first
// one that produces any match at all, without consulting the rest.
func OrGreedyTerminalParsers[S, T any](ps ...TerminalParsers[S, T]) TerminalParsers[S, T] {
	return func(requested []Symbol, state S, model itext.TextModel, line, col int) []TerminalMatch[S, T] {
		for _, p := range ps {
			if matches := p(requested, state, model, line, col); len(matches) > 0 {
				return matches
			}
		}
		return nil
	}
}

// filterToRequested keeps only matches whose Symbol was actually asked
// for, defending against a TerminalParsers implementation that over-reports.
func filterToRequested[S, T any](matches []TerminalMatch[S, T], requested []Symbol) []TerminalMatch[S, T] {
	return lo.Filter(matches, func(m TerminalMatch[S, T], _ int) bool {
		return lo.ContainsBy(requested, func(r Symbol) bool { return r == m.Symbol })
	})
}
