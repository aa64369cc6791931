package restree_test

import (
	"testing"

	"github.com/yaklabco/indentparse/pkg/itext"
	"github.com/yaklabco/indentparse/pkg/restree"
)

func leafAt(line, startCol, endCol int, label string) restree.Tree[string] {
	return restree.Leaf(restree.Labeled, itext.NewSpan(line, startCol, line, endCol), label)
}

func TestJoin_SpanFromResults(t *testing.T) {
	t.Parallel()

	results := []restree.Tree[string]{
		leafAt(0, 0, 1, "a"),
		leafAt(0, 1, 3, "b"),
	}

	got := restree.Join(results, restree.WithLabel("group"), nil, nil)

	if got.Span != itext.NewSpan(0, 0, 0, 3) {
		t.Errorf("Span = %v, want 0:0 to 0:3", got.Span)
	}
	if got.Kind != restree.Labeled || got.Label != "group" {
		t.Errorf("Kind/Label = %v/%v, want Labeled/group", got.Kind, got.Label)
	}
	if len(got.Children) != 2 {
		t.Fatalf("Children = %d, want 2", len(got.Children))
	}
}

func TestJoin_DiscardedChildrenExcluded(t *testing.T) {
	t.Parallel()

	results := []restree.Tree[string]{
		restree.DiscardedLeaf[string](itext.NewSpan(0, 0, 0, 1)),
		leafAt(0, 1, 2, "b"),
	}

	got := restree.Join(results, restree.AsStructural[string](), nil, nil)

	if len(got.Children) != 1 {
		t.Fatalf("Children = %d, want 1 (discarded child dropped)", len(got.Children))
	}
	if got.Children[0].Label != "b" {
		t.Errorf("surviving child = %v, want b", got.Children[0].Label)
	}
}

func TestJoin_Overrides(t *testing.T) {
	t.Parallel()

	start := itext.Position{Line: 0, Col: 0}
	end := itext.Position{Line: 0, Col: 5}

	got := restree.Join[string](nil, restree.AsDiscarded[string](), &start, &end)

	if got.Span != (itext.Span{Start: start, End: end}) {
		t.Errorf("Span = %v, want %v", got.Span, itext.Span{Start: start, End: end})
	}
}

func TestJoin_PanicsOnEmptyResultsWithoutOverride(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty results with no start/end override")
		}
	}()
	restree.Join[string](nil, restree.AsStructural[string](), nil, nil)
}

func TestJoin_PanicsWhenChildStartsBeforeCursor(t *testing.T) {
	t.Parallel()

	results := []restree.Tree[string]{
		leafAt(0, 2, 4, "a"),
		leafAt(0, 1, 3, "b"),
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when a child starts before the running cursor")
		}
	}()
	restree.Join(results, restree.AsStructural[string](), nil, nil)
}

func TestJoin_PanicsWhenChildrenExtendPastComputedEnd(t *testing.T) {
	t.Parallel()

	end := itext.Position{Line: 0, Col: 2}
	results := []restree.Tree[string]{
		leafAt(0, 0, 5, "a"),
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when children overrun the computed end")
		}
	}()
	restree.Join(results, restree.AsStructural[string](), nil, &end)
}
