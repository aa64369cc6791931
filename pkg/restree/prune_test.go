package restree_test

import (
	"testing"

	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/restree"
)

func TestPrune_LabeledRecursesIntoChildren(t *testing.T) {
	t.Parallel()

	child := leafAt(0, 1, 2, "child")
	parent := restree.Tree[string]{
		Kind:     restree.Labeled,
		Label:    "parent",
		Span:     itext.NewSpan(0, 0, 0, 3),
		Children: []restree.Tree[string]{child},
	}

	got := restree.Prune(parent)

	if len(got) != 1 {
		t.Fatalf("Prune = %d nodes, want 1", len(got))
	}
	if got[0].Label != "parent" || len(got[0].Children) != 1 {
		t.Fatalf("got %+v", got[0])
	}
}

func TestPrune_StructuralFlattensIntoChildren(t *testing.T) {
	t.Parallel()

	structural := restree.Tree[string]{
		Kind: restree.Structural,
		Span: itext.NewSpan(0, 0, 0, 4),
		Children: []restree.Tree[string]{
			leafAt(0, 0, 1, "a"),
			leafAt(0, 1, 2, "b"),
		},
	}

	got := restree.Prune(structural)

	if len(got) != 2 {
		t.Fatalf("Prune = %d nodes, want 2", len(got))
	}
	if got[0].Label != "a" || got[1].Label != "b" {
		t.Errorf("got labels %v, %v", got[0].Label, got[1].Label)
	}
}

func TestPrune_DiscardedYieldsNothing(t *testing.T) {
	t.Parallel()

	got := restree.Prune(restree.DiscardedLeaf[string](itext.NewSpan(0, 0, 0, 1)))

	if len(got) != 0 {
		t.Fatalf("Prune(discarded) = %d nodes, want 0", len(got))
	}
}

func TestPrune_NestedStructuralCollapses(t *testing.T) {
	t.Parallel()

	inner := restree.Tree[string]{
		Kind: restree.Structural,
		Span: itext.NewSpan(0, 0, 0, 2),
		Children: []restree.Tree[string]{
			restree.DiscardedLeaf[string](itext.NewSpan(0, 0, 0, 1)),
			leafAt(0, 1, 2, "x"),
		},
	}
	outer := restree.Tree[string]{
		Kind:     restree.Structural,
		Span:     itext.NewSpan(0, 0, 0, 2),
		Children: []restree.Tree[string]{inner},
	}

	got := restree.Prune(outer)

	if len(got) != 1 || got[0].Label != "x" {
		t.Fatalf("got %+v, want single node labeled x", got)
	}
}
