// Package tui implements the interactive chat console.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"

	"github.com/sevencode7/tasks/internal/assistant"
	"github.com/sevencode7/tasks/internal/domain"
)

// DefaultRecurringInterval is how often the console checks recurring tasks
// and due-date reminders.
const DefaultRecurringInterval = time.Minute

// Sender runs one exchange with the assistant.
type Sender interface {
	Send(ctx context.Context, message string) assistant.Reply
}

// Config contains the collaborators of the chat console.
type Config struct {
	Assistant      Sender
	CurrentProject func() (*domain.Project, error)
	// CheckRecurring creates due occurrences and returns how many were created.
	// Nil disables the periodic check.
	CheckRecurring func(ctx context.Context) (int, error)
	// CheckReminders returns the reminders raised since the last call.
	// Nil disables reminders.
	CheckReminders    func(ctx context.Context) ([]string, error)
	Now               func() time.Time
	ModelName         string
	RecurringInterval time.Duration
	Offline           bool // No API key, every reply is a fallback
}

// entry is one block of the visible transcript.
type entry struct {
	at   time.Time
	role domain.Role // Empty for console notices
	text string
	note string
}

// Model is the bubbletea model for the chat console.
type Model struct {
	ctx        context.Context
	err        error
	renderer   *glamour.TermRenderer
	project    *domain.Project
	statusLine *StatusLine
	cfg        Config
	entries    []entry
	keys       KeyMap
	help       help.Model
	styles     Styles
	spinner    spinner.Model
	textarea   textarea.Model
	viewport   viewport.Model
	width      int
	height     int
	waiting    bool
	showHelp   bool
	quitting   bool
}

// New creates a new chat console model.
func New(ctx context.Context, cfg Config) Model {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.RecurringInterval <= 0 {
		cfg.RecurringInterval = DefaultRecurringInterval
	}

	styles := DefaultStyles()

	ta := textarea.New()
	ta.Placeholder = "Ask about your tasks..."
	ta.CharLimit = 4096
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")
	ta.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.Spinner),
	)

	vp := viewport.New(80, 20)

	m := Model{
		ctx:      ctx,
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   styles,
		spinner:  sp,
		textarea: ta,
		viewport: vp,
		renderer: newRenderer(76),
	}
	m.statusLine = NewStatusLine(80, &m.styles)
	m.refreshTranscript()
	return m
}

// newRenderer builds the markdown renderer for assistant replies.
// It returns nil when glamour cannot be configured; replies are then shown as plain text.
func newRenderer(wrap int) *glamour.TermRenderer {
	if wrap < 20 {
		wrap = 20
	}
	style := glamourstyles.DarkStyleConfig
	style.CodeBlock.Chroma = nil
	style.CodeBlock.Theme = ChromaTheme
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.loadProject}
	if check := m.periodicChecks(); check != nil {
		cmds = append(cmds, check)
	}
	return tea.Batch(cmds...)
}

// periodicChecks returns the configured background checks, or nil.
func (m Model) periodicChecks() tea.Cmd {
	var cmds []tea.Cmd
	if m.cfg.CheckRecurring != nil {
		cmds = append(cmds, m.checkRecurring)
	}
	if m.cfg.CheckReminders != nil {
		cmds = append(cmds, m.checkReminders)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m Model) loadProject() tea.Msg {
	if m.cfg.CurrentProject == nil {
		return MsgProjectLoaded{}
	}
	project, err := m.cfg.CurrentProject()
	return MsgProjectLoaded{Project: project, Err: err}
}

func (m Model) checkRecurring() tea.Msg {
	created, err := m.cfg.CheckRecurring(m.ctx)
	return MsgRecurringChecked{Created: created, Err: err}
}

func (m Model) checkReminders() tea.Msg {
	reminders, err := m.cfg.CheckReminders(m.ctx)
	return MsgRemindersChecked{Reminders: reminders, Err: err}
}

func (m Model) scheduleRecurring() tea.Cmd {
	return tea.Tick(m.cfg.RecurringInterval, func(time.Time) tea.Msg {
		return MsgRecurringTick{}
	})
}

// send returns a command that runs one exchange off the UI loop.
func (m Model) send(text string) tea.Cmd {
	sender := m.cfg.Assistant
	ctx := m.ctx
	return func() tea.Msg {
		return MsgReply{Reply: sender.Send(ctx, text)}
	}
}

// replyNote describes how a reply was produced when it is not a plain success.
func replyNote(r assistant.Reply) string {
	return strings.Join(r.Notes(), "; ")
}

// Run starts the chat console.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
