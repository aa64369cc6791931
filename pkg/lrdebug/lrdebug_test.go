package lrdebug_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/indentparse/pkg/lr"
	"github.com/yaklabco/indentparse/pkg/lrdebug"
)

func sampleReport() lr.ConflictReport {
	return lr.ConflictReport{Conflicts: []lr.Conflict{
		{Nonterminal: "E", States: []int{3, 1}},
		{Nonterminal: "T", States: []int{5}},
	}}
}

func TestIsColorEnabled_RespectsExplicitModes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, lrdebug.IsColorEnabled("always", &buf))
	assert.False(t, lrdebug.IsColorEnabled("never", &buf))
	assert.False(t, lrdebug.IsColorEnabled("auto", &buf), "a bytes.Buffer is never a terminal")
}

func TestRenderTable_NoConflictsIsExplicit(t *testing.T) {
	t.Parallel()

	out := lrdebug.RenderTable(lr.ConflictReport{}, lrdebug.NewStyles(false), 80)
	assert.Contains(t, out, "no conflicts")
}

func TestRenderTable_ListsEveryConflictSorted(t *testing.T) {
	t.Parallel()

	out := lrdebug.RenderTable(sampleReport(), lrdebug.NewStyles(false), 80)
	assert.Contains(t, out, "E")
	assert.Contains(t, out, "1, 3")
	assert.Contains(t, out, "T")
	assert.Contains(t, out, "5")
}

func TestRenderTable_WidensBelowMinimum(t *testing.T) {
	t.Parallel()

	out := lrdebug.RenderTable(sampleReport(), lrdebug.NewStyles(false), 0)
	assert.NotEmpty(t, out)
}

func TestToYAML_SerializesConflicts(t *testing.T) {
	t.Parallel()

	out, err := lrdebug.ToYAML(sampleReport())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "nonterminal: E")
	assert.Contains(t, text, "- 1")
	assert.Contains(t, text, "- 3")
	assert.True(t, bytes.Contains(out, []byte("conflicts:")))
}
