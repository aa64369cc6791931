package restree

import "github.com/yaklabco/indentparse/pkg/perr"

// Select performs a depth-first traversal of t, entering through
// Structural nodes transparently. It yields the first Labeled node found
// along each path and does not descend further into that node's own
// children — the shallow, "direct semantic children" view of a tree.
func Select[T any](t Tree[T], predicate func(Tree[T]) bool) []Tree[T] {
	var out []Tree[T]
	selectInto(t, predicate, &out)
	return out
}

func selectInto[T any](t Tree[T], predicate func(Tree[T]) bool, out *[]Tree[T]) {
	switch t.Kind {
	case Labeled:
		if predicate == nil || predicate(t) {
			*out = append(*out, t)
		}
	case Structural:
		for _, c := range t.Children {
			selectInto(c, predicate, out)
		}
	case Discarded:
		// contributes nothing
	}
}

// Collect performs a full depth-first traversal of t, descending through
// every node — Structural and Labeled alike — and yielding every Labeled
// node matching predicate at any depth. Unlike Select, a Labeled match does
// not stop the traversal from continuing into its children.
func Collect[T any](t Tree[T], predicate func(Tree[T]) bool) []Tree[T] {
	var out []Tree[T]
	collectInto(t, predicate, &out)
	return out
}

func collectInto[T any](t Tree[T], predicate func(Tree[T]) bool, out *[]Tree[T]) {
	if t.Kind == Labeled && (predicate == nil || predicate(t)) {
		*out = append(*out, t)
	}
	if t.Kind != Discarded {
		for _, c := range t.Children {
			collectInto(c, predicate, out)
		}
	}
}

// SelectUnique is Select requiring exactly one match; it panics with
// perr.AmbiguousSelection otherwise.
func SelectUnique[T any](t Tree[T], predicate func(Tree[T]) bool) Tree[T] {
	matches := Select(t, predicate)
	if len(matches) != 1 {
		perr.PanicAt(perr.AmbiguousSelection, t.Span.Start.Line, t.Span.Start.Col,
			"expected exactly one match")
	}
	return matches[0]
}

// CollectUnique is Collect requiring exactly one match; it panics with
// perr.AmbiguousSelection otherwise.
func CollectUnique[T any](t Tree[T], predicate func(Tree[T]) bool) Tree[T] {
	matches := Collect(t, predicate)
	if len(matches) != 1 {
		perr.PanicAt(perr.AmbiguousSelection, t.Span.Start.Line, t.Span.Start.Col,
			"expected exactly one match")
	}
	return matches[0]
}
