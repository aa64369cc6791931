// Package combi provides the parser-combinator layer: primitive and
// composite Parsers over an itext.TextModel, producing restree.Tree values,
// plus the section parser that re-indents a body block into its own
// coordinate window.
package combi

import (
	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/restree"
)

// Parser is a pure function from a user state and a source position to
// either failure or an updated state plus a result tree rooted at that
// position. On success the returned tree's span must start at (line, col).
// Every Parser must call model.Assert(line, col) on entry.
type Parser[S, T any] func(state S, model itext.TextModel, line, col int) (S, restree.Tree[T], bool)

// zeroSpan returns the empty span at (line, col), the shape every
// zero-length primitive (EmptyP, EofP, BolP, NotP, LookaheadP) produces.
func zeroSpan(line, col int) itext.Span {
	return itext.Span{Start: itext.Position{Line: line, Col: col}, End: itext.Position{Line: line, Col: col}}
}
