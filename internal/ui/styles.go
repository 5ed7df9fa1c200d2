package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Basic ANSI palette indices, so output matches plain 16-color terminals.
const (
	errorColor   = "1" // Red
	successColor = "2" // Green
	warningColor = "3" // Yellow
)

// Color modes accepted by NewPresenter.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type styles struct {
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

// withColorMode applies mode to r. In auto mode the color profile
// is detected from the output, so pipes and files get plain text.
func withColorMode(r *lipgloss.Renderer, mode string) *lipgloss.Renderer {
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	}
	return r
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		success: r.NewStyle().Foreground(lipgloss.Color(successColor)),
		warning: r.NewStyle().Foreground(lipgloss.Color(warningColor)),
		err:     r.NewStyle().Foreground(lipgloss.Color(errorColor)),
	}
}
