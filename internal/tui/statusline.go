package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusLineInfo contains information for rendering the status line.
type StatusLineInfo struct {
	Right    string // Right-aligned text (model, scroll position)
	KeyHints []KeyHint
}

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusLine renders a unified status line at the bottom of the screen.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders the status line with the given info.
func (s *StatusLine) Render(info StatusLineInfo) string {
	hints := make([]string, 0, len(info.KeyHints))
	for _, h := range info.KeyHints {
		hints = append(hints, s.styles.FooterKey.Render(h.Key)+" "+h.Desc)
	}
	content := strings.Join(hints, "  ")

	contentWidth := s.width - 2 // Account for padding
	rightLen := lipgloss.Width(info.Right)
	contentLen := lipgloss.Width(content)

	// Truncate content if needed
	maxContentWidth := contentWidth - rightLen - 2
	if contentLen > maxContentWidth {
		if maxContentWidth <= 3 {
			content = "..."
		} else {
			truncateStyle := lipgloss.NewStyle().MaxWidth(maxContentWidth - 3)
			content = truncateStyle.Render(content) + "..."
		}
		contentLen = lipgloss.Width(content)
	}

	spacing := contentWidth - contentLen - rightLen
	if spacing < 1 {
		spacing = 1
	}

	return s.styles.Footer.Width(s.width).Render(content + strings.Repeat(" ", spacing) + info.Right)
}

// statusInfo returns status line info for the current state.
func (m *Model) statusInfo() StatusLineInfo {
	info := StatusLineInfo{Right: m.cfg.ModelName}
	if m.cfg.Offline {
		info.Right = "offline"
	}
	if !m.viewport.AtBottom() {
		info.Right = "↑ history  " + info.Right
	}

	if m.waiting {
		info.KeyHints = []KeyHint{
			{Key: "pgup/pgdn", Desc: "scroll"},
			{Key: "esc", Desc: "quit"},
		}
		return info
	}
	info.KeyHints = []KeyHint{
		{Key: "enter", Desc: "send"},
		{Key: "alt+enter", Desc: "newline"},
		{Key: "pgup/pgdn", Desc: "scroll"},
		{Key: "ctrl+g", Desc: "help"},
		{Key: "esc", Desc: "quit"},
	}
	return info
}
