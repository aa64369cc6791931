// Package lrdebug renders an lr.ConflictReport for humans and machines. It
// is pure presentation over pkg/lr's output and never participates in
// parsing.
package lrdebug

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles bundles the lipgloss styles used to render a conflict table.
type Styles struct {
	Header    lipgloss.Style
	Border    lipgloss.Style
	Nonterm   lipgloss.Style
	StateList lipgloss.Style
	Dim       lipgloss.Style
}

// NewStyles builds a Styles bundle, colored or plain depending on
// colorEnabled.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{Header: plain, Border: plain, Nonterm: plain, StateList: plain, Dim: plain}
	}
	return &Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Nonterm:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		StateList: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

// IsColorEnabled mirrors the teacher's pretty.IsColorEnabled: mode is one
// of "auto" (default), "always", "never".
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
