package restree

import "github.com/yaklabco/indentparse/pkg/itext"

// TextOfResult slices model by t's span, returning the raw source text the
// node covers.
func TextOfResult[T any](model itext.TextModel, t Tree[T]) string {
	return model.Slice(t.Span.Start, t.Span.End)
}

// TextLinesOfResult returns the source text t covers as one string per
// line, rather than newline-joined — useful when a caller wants to inspect
// or re-indent a node's lines individually.
func TextLinesOfResult[T any](model itext.TextModel, t Tree[T]) []string {
	start, end := t.Span.Start, t.Span.End
	if start.Line == end.Line {
		return []string{model.Slice(start, end)}
	}

	lines := make([]string, 0, end.Line-start.Line+1)
	lines = append(lines, model.Slice(start, itext.Position{Line: start.Line, Col: len(model.LineAt(start.Line))}))
	for l := start.Line + 1; l < end.Line; l++ {
		lines = append(lines, string(model.LineAt(l)))
	}
	lines = append(lines, model.Slice(itext.Position{Line: end.Line, Col: 0}, end))
	return lines
}
