package lrdebug

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/indentparse/pkg/lr"
)

const defaultTermWidth = 100

// getTerminalWidth mirrors the teacher's reporter.getTerminalWidth: fall
// back to defaultTermWidth whenever the writer isn't a real terminal.
func getTerminalWidth(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// RenderTable renders report as a width-aware two-column table: one row
// per conflicted nonterminal, listing every state it conflicts in. width
// of 0 or less is widened to defaultTermWidth.
func RenderTable(report lr.ConflictReport, styles *Styles, width int) string {
	if width <= 0 {
		width = defaultTermWidth
	}
	if len(report.Conflicts) == 0 {
		return styles.Dim.Render("no conflicts") + "\n"
	}

	nameWidth := len("nonterminal")
	for _, c := range report.Conflicts {
		if n := len(string(c.Nonterminal)); n > nameWidth {
			nameWidth = n
		}
	}
	statesWidth := width - nameWidth - 3
	if statesWidth < 10 {
		statesWidth = 10
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", styles.Header.Render(pad("nonterminal", nameWidth)), styles.Header.Render("states"))
	fmt.Fprintln(&b, styles.Border.Render(strings.Repeat("-", nameWidth+1+statesWidth)))

	conflicts := append([]lr.Conflict(nil), report.Conflicts...)
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Nonterminal < conflicts[j].Nonterminal })

	for _, c := range conflicts {
		states := append([]int(nil), c.States...)
		sort.Ints(states)
		fmt.Fprintf(&b, "%s %s\n",
			styles.Nonterm.Render(pad(string(c.Nonterminal), nameWidth)),
			styles.StateList.Render(truncate(joinInts(states), statesWidth)))
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
