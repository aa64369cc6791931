// Package restree implements the parse-tree value produced by every Parser:
// an immutable node carrying a (line, column) span and one of three kinds —
// Labeled, Structural, or Discarded — plus the construction and traversal
// helpers (join, prune, select, collect, print) that operate on it.
package restree

import "github.com/yaklabco/indentparse/pkg/itext"

// Kind distinguishes the three node shapes a Tree can take.
type Kind int

const (
	// Discarded marks a transient node, removed from a finished tree by
	// join and never visible to code that only sees pruned trees.
	Discarded Kind = iota

	// Structural marks an unlabeled grouping node, retained until prune
	// collapses it into its Labeled descendants.
	Structural

	// Labeled marks a node carrying a user-defined label.
	Labeled
)

// String renders a Kind for debugging and the printer.
func (k Kind) String() string {
	switch k {
	case Discarded:
		return "Discarded"
	case Structural:
		return "Structural"
	case Labeled:
		return "Labeled"
	default:
		return "Unknown"
	}
}

// Tree is the parse-tree value. T is the label type carried by Labeled
// nodes; Structural and Discarded nodes carry the zero value of T.
type Tree[T any] struct {
	Kind     Kind
	Label    T
	Span     itext.Span
	Children []Tree[T]
}

// IsLabeled reports whether t carries a label.
func (t Tree[T]) IsLabeled() bool { return t.Kind == Labeled }

// Leaf builds a childless node of the given kind, span and label. Label is
// only meaningful when kind == Labeled.
func Leaf[T any](kind Kind, span itext.Span, label T) Tree[T] {
	return Tree[T]{Kind: kind, Label: label, Span: span}
}

// DiscardedLeaf builds a childless Discarded node over span — the shape
// every primitive combinator (charP, newlineP, eofP, bolP, notP,
// lookaheadP) produces.
func DiscardedLeaf[T any](span itext.Span) Tree[T] {
	var zero T
	return Tree[T]{Kind: Discarded, Span: span, Label: zero}
}

// LabelOpt selects what kind of node join should build: Labeled carries a
// value, Structural and Discarded carry none. Modeling this as its own
// type (rather than a nullable label) makes the three-way choice in
// spec.md §4.1 explicit instead of overloading absent/null as the source
// implementation does (see SPEC_FULL.md / DESIGN.md §9).
type LabelOpt[T any] struct {
	kind  Kind
	label T
}

// WithLabel requests a Labeled(label) node.
func WithLabel[T any](label T) LabelOpt[T] {
	return LabelOpt[T]{kind: Labeled, label: label}
}

// AsStructural requests a Structural node.
func AsStructural[T any]() LabelOpt[T] {
	return LabelOpt[T]{kind: Structural}
}

// AsDiscarded requests a Discarded node.
func AsDiscarded[T any]() LabelOpt[T] {
	return LabelOpt[T]{kind: Discarded}
}
