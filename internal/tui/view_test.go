package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevencode7/tasks/internal/domain"
)

func TestView_WelcomeOffline(t *testing.T) {
	m := newTestModel(t, Config{Offline: true})

	view := plain(m.View())

	assert.Contains(t, view, "no project selected")
	assert.Contains(t, view, "built-in answers")
	assert.Contains(t, view, "summary")
	assert.Contains(t, view, "offline")
}

func TestView_WelcomeOnline(t *testing.T) {
	m := newTestModel(t, Config{ModelName: "gemini-2.0-flash"})

	view := plain(m.View())

	assert.NotContains(t, view, "built-in answers")
	assert.Contains(t, view, "gemini-2.0-flash")
}

func TestView_Transcript(t *testing.T) {
	// Setup
	m := newTestModel(t, Config{})
	m.entries = []entry{
		{at: testNow, role: domain.RoleUser, text: "what next?"},
		{at: testNow, role: domain.RoleAssistant, text: "Start with the report.", note: "offline reply: boom"},
		{at: testNow, text: "Created 1 task from recurring tasks."},
	}

	// Execute
	out := plain(m.renderTranscript())

	// Assert
	assert.Contains(t, out, "You 09:30")
	assert.Contains(t, out, "what next?")
	assert.Contains(t, out, "Assistant 09:30")
	assert.Contains(t, out, "Start with the report.")
	assert.Contains(t, out, "(offline reply: boom)")
	assert.Contains(t, out, "Created 1 task from recurring tasks.")
}

func TestRenderMarkdown_PlainWithoutRenderer(t *testing.T) {
	m := newTestModel(t, Config{})
	m.renderer = nil

	assert.Equal(t, "**bold**\n", m.renderMarkdown("**bold**"))
}

func TestRenderMarkdown_Formats(t *testing.T) {
	m := newTestModel(t, Config{})

	out := plain(m.renderMarkdown("**bold** move"))

	assert.Contains(t, out, "bold")
	assert.NotContains(t, out, "**")
}
