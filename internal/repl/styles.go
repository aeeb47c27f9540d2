package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorResult  = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colorResult)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// painter renders text with a style, or verbatim when color is off
type painter struct {
	color bool
}

func (p painter) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p painter) prompt(s string) string { return p.paint(PromptStyle, s) }
func (p painter) result(s string) string { return p.paint(ResultStyle, s) }
func (p painter) err(s string) string    { return p.paint(ErrorStyle, s) }
func (p painter) info(s string) string   { return p.paint(InfoStyle, s) }
