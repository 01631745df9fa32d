package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette.
var (
	colorAccent  = lipgloss.Color("#2CD7C7")
	colorMuted   = lipgloss.Color("#6C7A89")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorFailure = lipgloss.Color("#E74C3C")
)

// Styles holds the lipgloss styles a Renderer applies.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// ColorStyles returns the terminal styles.
func ColorStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Header:  lipgloss.NewStyle().Bold(true),
		Cell:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Failure: lipgloss.NewStyle().Foreground(colorFailure),
	}
}

// PlainStyles returns styles that add no escape sequences, for pipes, files
// and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:   plain,
		Header:  plain,
		Cell:    plain,
		Muted:   plain,
		Success: plain,
		Failure: plain,
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StylesFor picks ColorStyles for terminals and PlainStyles otherwise.
func StylesFor(w io.Writer) Styles {
	if IsTerminal(w) {
		return ColorStyles()
	}
	return PlainStyles()
}
