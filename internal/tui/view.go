package tui

import (
	"fmt"
	"strings"

	"github.com/sevencode7/tasks/internal/assistant"
	"github.com/sevencode7/tasks/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	b.WriteString(m.styles.Transcript.Width(m.viewport.Width).Render(m.viewport.View()))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.ErrorMsg.Render(" Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.waiting:
		b.WriteString(" " + m.spinner.View() + " Thinking...")
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Input.Width(m.viewport.Width).Render(m.textarea.View()))
	b.WriteString("\n")

	if m.showHelp {
		m.help.ShowAll = true
		b.WriteString(m.help.View(m.keys))
	} else {
		b.WriteString(m.statusLine.Render(m.statusInfo()))
	}

	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.Header.Render("tasks")
	project := m.styles.HeaderMuted.Render("no project selected")
	if m.project != nil {
		project = " " + m.styles.projectBadge(m.project.Title, m.project.Color)
	}
	return title + project
}

// refreshTranscript re-renders every entry into the viewport and follows the newest one.
func (m *Model) refreshTranscript() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	if len(m.entries) == 0 {
		return m.renderWelcome()
	}

	var sb strings.Builder
	for _, e := range m.entries {
		ts := m.styles.Timestamp.Render(e.at.Format("15:04"))
		switch e.role {
		case domain.RoleUser:
			sb.WriteString(m.styles.UserLabel.Render("You") + " " + ts + "\n")
			sb.WriteString(m.styles.UserText.Render(e.text))
			sb.WriteString("\n\n")
		case domain.RoleAssistant:
			sb.WriteString(m.styles.AssistantLabel.Render("Assistant") + " " + ts + "\n")
			sb.WriteString(m.renderMarkdown(e.text))
			if e.note != "" {
				sb.WriteString(m.styles.Note.Render("(" + e.note + ")"))
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		default:
			sb.WriteString(m.styles.Note.Render(e.text))
			sb.WriteString("\n\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderWelcome() string {
	lines := []string{
		"Ask the assistant to plan, create or update tasks in the current project.",
		"Examples: \"break down the launch\", \"what should I do first?\", \"mark the report as done\"",
	}
	if m.cfg.Offline {
		lines = append(lines,
			"",
			"No API key is configured, so replies come from built-in answers.",
			fmt.Sprintf("Try: %s", strings.Join(assistant.FallbackKeys(), ", ")),
		)
	}
	return m.styles.Welcome.Render(strings.Join(lines, "\n"))
}

// renderMarkdown renders a reply as markdown, falling back to plain text.
func (m Model) renderMarkdown(text string) (out string) {
	if m.renderer == nil {
		return text + "\n"
	}
	defer func() {
		if r := recover(); r != nil {
			out = text + "\n"
		}
	}()
	rendered, err := m.renderer.Render(text)
	if err != nil {
		return text + "\n"
	}
	return strings.TrimLeft(rendered, "\n")
}
