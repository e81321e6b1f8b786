package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevencode7/tasks/internal/domain"
)

// Layout heights in lines.
const (
	headerHeight = 1
	inputHeight  = 3
	footerHeight = 1
	borderHeight = 2
	minViewport  = 3
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshTranscript()
		return m, nil

	case MsgReply:
		m.waiting = false
		m.entries = append(m.entries, entry{
			at:   m.cfg.Now(),
			role: domain.RoleAssistant,
			text: msg.Reply.Text,
			note: replyNote(msg.Reply),
		})
		m.updateLayout()
		m.refreshTranscript()
		return m, m.loadProject

	case MsgProjectLoaded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.project = msg.Project
		return m, nil

	case MsgRecurringTick:
		return m, m.periodicChecks()

	case MsgRecurringChecked:
		if msg.Err != nil {
			m.err = fmt.Errorf("recurring check: %w", msg.Err)
		} else if msg.Created > 0 {
			m.entries = append(m.entries, entry{
				at:   m.cfg.Now(),
				text: fmt.Sprintf("Created %s from recurring tasks.", pluralize(msg.Created, "task")),
			})
			m.refreshTranscript()
		}
		return m, m.scheduleRecurring()

	case MsgRemindersChecked:
		if msg.Err != nil {
			m.err = fmt.Errorf("reminder check: %w", msg.Err)
		} else if len(msg.Reminders) > 0 {
			for _, r := range msg.Reminders {
				m.entries = append(m.entries, entry{at: m.cfg.Now(), text: r})
			}
			m.refreshTranscript()
		}
		// The recurring check owns the tick when both run.
		if m.cfg.CheckRecurring != nil {
			return m, nil
		}
		return m, m.scheduleRecurring()

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.updateLayout()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.entries = nil
		m.err = nil
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Send):
		return m.submit()
	}

	// Forward to textarea
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// submit sends the typed message unless a reply is pending or it is blank.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.waiting {
		return m, nil
	}
	text := strings.TrimSpace(m.textarea.Value())
	if text == "" {
		return m, nil
	}
	if m.cfg.Assistant == nil {
		m.err = errors.New("assistant not configured")
		return m, nil
	}

	m.textarea.Reset()
	m.err = nil
	m.waiting = true
	m.entries = append(m.entries, entry{
		at:   m.cfg.Now(),
		role: domain.RoleUser,
		text: text,
	})
	m.updateLayout()
	m.refreshTranscript()
	return m, tea.Batch(m.send(text), m.spinner.Tick)
}

func (m *Model) updateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	footer := footerHeight
	if m.showHelp {
		footer = len(m.keys.FullHelp()[1]) + 1
	}
	extra := 0
	if m.waiting || m.err != nil {
		extra = 1
	}

	vpHeight := m.height - headerHeight - (inputHeight + borderHeight) - footer - borderHeight - extra
	if vpHeight < minViewport {
		vpHeight = minViewport
	}

	m.viewport.Width = m.width - 2
	m.viewport.Height = vpHeight
	m.textarea.SetWidth(m.width - 4)
	m.statusLine.SetWidth(m.width)
	m.help.Width = m.width
	m.renderer = newRenderer(m.viewport.Width - 4)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
