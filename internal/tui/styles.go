// Package tui renders the contact and project-comment forms as interactive
// terminal pages. Each page owns its validation, gate and submission state;
// nothing is shared between form instances.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors
var (
	colorAccent      = lipgloss.Color("#8BC34A")
	colorDestructive = lipgloss.Color("#e53935")
	colorWarning     = lipgloss.Color("#FFC107")
	colorMuted       = lipgloss.Color("240")
)

// Styles holds the page styling. Created once at the composition root and
// passed to every page explicitly.
type Styles struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	FieldError     lipgloss.Style
	GateNotice     lipgloss.Style
	SuccessNotice  lipgloss.Style
	ErrorNotice    lipgloss.Style
	Submit         lipgloss.Style
	SubmitDisabled lipgloss.Style
	Help           lipgloss.Style
	Muted          lipgloss.Style
}

// DefaultStyles returns the standard styling.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Bold(true),
		FieldError: lipgloss.NewStyle().
			Foreground(colorDestructive),
		GateNotice: lipgloss.NewStyle().
			Foreground(colorWarning),
		SuccessNotice: lipgloss.NewStyle().
			Foreground(colorAccent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
		ErrorNotice: lipgloss.NewStyle().
			Foreground(colorDestructive).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDestructive).
			Padding(0, 1),
		Submit: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#101F38")).
			Background(colorAccent).
			Padding(0, 2),
		SubmitDisabled: lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2),
		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
		Muted: lipgloss.NewStyle().
			Foreground(colorMuted),
	}
}
