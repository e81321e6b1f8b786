package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the chat console.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Speakers
	User      lipgloss.Color
	Assistant lipgloss.Color
	Text      lipgloss.Color
}{
	Primary:    lipgloss.Color("#7C3AED"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	User:      lipgloss.Color("#74B9FF"), // Light blue
	Assistant: lipgloss.Color("#A29BFE"), // Lavender
	Text:      lipgloss.Color("#DFE6E9"), // Light gray
}

// Styles contains all the lipgloss styles for the chat console.
type Styles struct {
	// Header
	Header        lipgloss.Style
	HeaderProject lipgloss.Style
	HeaderMuted   lipgloss.Style

	// Transcript
	Transcript     lipgloss.Style
	UserLabel      lipgloss.Style
	UserText       lipgloss.Style
	AssistantLabel lipgloss.Style
	Note           lipgloss.Style
	Timestamp      lipgloss.Style
	Welcome        lipgloss.Style

	// Input
	Input   lipgloss.Style
	Spinner lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the chat console.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Text).
			Background(Colors.Primary).
			Padding(0, 1),

		HeaderProject: lipgloss.NewStyle().
			Bold(true),

		HeaderMuted: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		Transcript: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.User),

		UserText: lipgloss.NewStyle().
			Foreground(Colors.Text).
			PaddingLeft(2),

		AssistantLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Assistant),

		Note: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Italic(true).
			PaddingLeft(2),

		Timestamp: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Welcome: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		Spinner: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// projectBadge renders the project title in the project's own colour.
func (s Styles) projectBadge(title, color string) string {
	style := s.HeaderProject
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style.Render(title)
}
