package itext

import "github.com/yaklabco/indentparse/pkg/perr"

// TextModel is an immutable, indexable view of line-oriented text. The root
// model is constructed from a string or a prepared list of lines; CutOff,
// CutOut and Until each wrap an existing TextModel without copying line
// content.
type TextModel interface {
	// LineCount returns the number of addressable lines.
	LineCount() int

	// LineAt returns the runes of line i. Panics (InvalidPosition) if i is
	// out of range.
	LineAt(line int) []rune

	// CharAt returns the rune at (line, col) and true, or (0, false) if col
	// is at or past the line's end.
	CharAt(line, col int) (rune, bool)

	// Slice returns the text from `from` (inclusive) to `to` (exclusive)
	// within this model, concatenating lines with "\n".
	Slice(from, to Position) string

	// Valid reports whether (line, col) is on a line (col in
	// [0, len(line)]) or is the one-past-last-line EOF position.
	Valid(line, col int) bool

	// Assert panics with perr.InvalidPosition if !Valid(line, col).
	Assert(line, col int)

	// Absolute translates a coordinate inside this model to the outermost
	// source coordinate. Identity for a root model, chained through
	// windows.
	Absolute(line, col int) Position
}

// root is the TextModel built directly from source text; Absolute is the
// identity translation.
type root struct {
	lines [][]rune
}

// NewFromString builds a root TextModel from raw text, splitting lines on
// any of "\n", "\r\n", "\r" per spec.md §6. Text normalization (NFC) is
// explicitly out of scope (spec.md §1) and is not performed here — see
// SPEC_FULL.md §6 and DESIGN.md.
func NewFromString(content string) TextModel {
	return &root{lines: splitLines(content)}
}

// NewFromLines builds a root TextModel from a prepared list of lines, each
// given as a string with no line terminator.
func NewFromLines(lines []string) TextModel {
	rs := make([][]rune, len(lines))
	for i, l := range lines {
		rs[i] = []rune(l)
	}
	return &root{lines: rs}
}

func (m *root) LineCount() int { return len(m.lines) }

func (m *root) LineAt(line int) []rune {
	if line < 0 || line >= len(m.lines) {
		perr.PanicAt(perr.InvalidPosition, line, 0, "line out of range")
	}
	return m.lines[line]
}

func (m *root) CharAt(line, col int) (rune, bool) {
	l := m.LineAt(line)
	if col < 0 || col >= len(l) {
		return 0, false
	}
	return l[col], true
}

func (m *root) Valid(line, col int) bool {
	if line < 0 || line > len(m.lines) {
		return false
	}
	if line == len(m.lines) {
		return col == 0
	}
	return col >= 0 && col <= len(m.lines[line])
}

func (m *root) Assert(line, col int) {
	assertPosition(m, line, col)
}

// assertPosition is the shared Assert body for every TextModel
// implementation: panic with perr.InvalidPosition unless m.Valid(line, col).
func assertPosition(m TextModel, line, col int) {
	if !m.Valid(line, col) {
		perr.PanicAt(perr.InvalidPosition, line, col, "position is not on a line or at line-end")
	}
}

func (m *root) Absolute(line, col int) Position {
	return Position{Line: line, Col: col}
}

func (m *root) Slice(from, to Position) string {
	return sliceLines(m, from, to)
}

// sliceLines is shared by every TextModel implementation: it walks
// from.Line..to.Line of model, trimming the first and last line to the
// given columns, and joins with "\n".
func sliceLines(m TextModel, from, to Position) string {
	if from.Line == to.Line {
		line := m.LineAt(from.Line)
		end := to.Col
		if end > len(line) {
			end = len(line)
		}
		start := from.Col
		if start > end {
			start = end
		}
		return string(line[start:end])
	}

	var out []rune
	first := m.LineAt(from.Line)
	start := from.Col
	if start > len(first) {
		start = len(first)
	}
	out = append(out, first[start:]...)

	for l := from.Line + 1; l < to.Line; l++ {
		out = append(out, '\n')
		out = append(out, m.LineAt(l)...)
	}

	out = append(out, '\n')
	last := m.LineAt(to.Line)
	end := to.Col
	if end > len(last) {
		end = len(last)
	}
	out = append(out, last[:end]...)

	return string(out)
}
