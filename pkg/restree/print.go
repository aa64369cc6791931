package restree

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/indentparse/pkg/itext"
)

// PrintResult renders t (pruned first) to sink in the bit-exact format
// fixed by spec.md §6:
//
//	"[LL:CC to LL:CC[<indent>   <name>"
//
// or, for an atomic (childless) same-line Labeled node that is not opaque:
//
//	"[LL:CC to LL:CC[<indent>   <name> = \"<text>\""
//
// LL and CC are zero-padded to two digits; indent is four spaces per depth
// level. nameOf renders a label as its display name; isOpaque suppresses
// the `= "text"` suffix even for an eligible atomic node.
func PrintResult[T any](model itext.TextModel, t Tree[T], nameOf func(T) string, isOpaque func(T) bool, sink io.Writer) {
	for _, pruned := range Prune(t) {
		printNode(model, pruned, nameOf, isOpaque, sink, 0)
	}
}

func printNode[T any](model itext.TextModel, t Tree[T], nameOf func(T) string, isOpaque func(T) bool, sink io.Writer, depth int) {
	header := fmt.Sprintf("[%02d:%02d to %02d:%02d[%s   %s",
		t.Span.Start.Line, t.Span.Start.Col, t.Span.End.Line, t.Span.End.Col,
		strings.Repeat("    ", depth), nameOf(t.Label))

	if len(t.Children) == 0 && t.Span.Start.Line == t.Span.End.Line && !isOpaque(t.Label) {
		text := model.Slice(t.Span.Start, t.Span.End)
		fmt.Fprintf(sink, "%s = %q\n", header, text)
	} else {
		fmt.Fprintln(sink, header)
	}

	for _, c := range t.Children {
		printNode(model, c, nameOf, isOpaque, sink, depth+1)
	}
}
