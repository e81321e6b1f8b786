package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sevencode7/tasks/internal/domain"
)

// EmptyReplyText replaces a successful but empty completion.
const EmptyReplyText = "I couldn't process that request."

// Reply is the displayable outcome of one exchange.
type Reply struct {
	RemoteErr error  // completion failure that triggered the fallback
	Text      string // always non-empty
	Executed  int
	Skipped   int
	Rejected  int
	Failed    int
	Fallback  bool
	Degraded  bool
}

// Notes lists what the reply text alone does not show: an offline
// fallback, commands that did not run and commands that were dropped.
func (r Reply) Notes() []string {
	var notes []string
	if r.Fallback && r.RemoteErr != nil && !errors.Is(r.RemoteErr, domain.ErrNoAPIKey) {
		notes = append(notes, "offline reply: "+r.RemoteErr.Error())
	}
	if r.Degraded {
		notes = append(notes, "no project selected, task commands were not run")
	}
	if r.Skipped > 0 {
		notes = append(notes, commandCount(r.Skipped)+" skipped: no task with that title")
	}
	if r.Rejected > 0 {
		notes = append(notes, commandCount(r.Rejected)+" rejected: task title is empty")
	}
	if r.Failed > 0 {
		notes = append(notes, commandCount(r.Failed)+" could not be saved")
	}
	return notes
}

func commandCount(n int) string {
	if n == 1 {
		return "1 command"
	}
	return fmt.Sprintf("%d commands", n)
}

// Options configures an Assistant.
type Options struct {
	SystemPrompt  string
	Generation    domain.GenerationOptions
	HistoryWindow int
}

// DefaultOptions returns the standard prompt, generation settings and window.
func DefaultOptions() Options {
	return Options{
		SystemPrompt:  DefaultSystemPrompt,
		Generation:    domain.DefaultGenerationOptions(),
		HistoryWindow: domain.DefaultHistoryWindow,
	}
}

// Assistant runs conversation exchanges against a completer and the task store.
type Assistant struct {
	completer domain.Completer
	builder   *ContextBuilder
	executor  *Executor
	tasks     domain.TaskRepository
	clock     domain.Clock
	logger    domain.Logger
	history   domain.Conversation
	opts      Options
	mu        sync.Mutex
}

// New creates a new Assistant. A nil completer makes every exchange use the fallback.
func New(
	completer domain.Completer,
	projects domain.ProjectRepository,
	tasks domain.TaskRepository,
	selector domain.ProjectSelector,
	clock domain.Clock,
	logger domain.Logger,
	opts Options,
) *Assistant {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if opts.SystemPrompt == "" {
		opts.SystemPrompt = DefaultSystemPrompt
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = domain.DefaultHistoryWindow
	}
	return &Assistant{
		completer: completer,
		builder:   NewContextBuilder(projects, tasks, selector, clock),
		executor:  NewExecutor(tasks, clock, logger),
		tasks:     tasks,
		clock:     clock,
		logger:    logger,
		opts:      opts,
	}
}

// Send runs one exchange and always returns a displayable reply.
// Exchanges are serialized.
func (a *Assistant) Send(ctx context.Context, message string) Reply {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot, project, err := a.builder.Build()
	if err != nil {
		a.logger.Error(logCategory, fmt.Sprintf("build context: %v", err))
		snapshot = "[Context unavailable]\n"
		project = nil
	}

	prompt := BuildPrompt(a.opts.SystemPrompt, snapshot, a.history.Window(a.opts.HistoryWindow), message)

	var reply Reply
	raw, err := a.complete(ctx, prompt)
	if err != nil {
		a.logger.Error(logCategory, fmt.Sprintf("completion failed: %v", err))
		reply = Reply{
			Text:      a.fallback(message, project),
			Fallback:  true,
			RemoteErr: err,
		}
		a.logger.Info(logCategory, "using fallback reply")
	} else {
		if raw == "" {
			raw = EmptyReplyText
		}
		res := a.executor.Apply(raw, project)
		reply = Reply{
			Text:     res.Text,
			Executed: res.Executed,
			Skipped:  res.Skipped,
			Rejected: res.Rejected,
			Failed:   res.Failed,
			Degraded: res.Degraded,
		}
		if reply.Text == "" {
			reply.Text = EmptyReplyText
		}
	}

	a.history.Append(domain.RoleUser, message)
	a.history.Append(domain.RoleAssistant, reply.Text)
	return reply
}

func (a *Assistant) complete(ctx context.Context, prompt string) (string, error) {
	if a.completer == nil {
		return "", &domain.RemoteCallError{Op: "complete", Err: domain.ErrNoAPIKey}
	}
	return a.completer.Complete(ctx, prompt, a.opts.Generation)
}

func (a *Assistant) fallback(message string, project *domain.Project) string {
	v := fallbackView{now: a.clock.Now(), project: project}
	if project != nil {
		tasks, err := a.tasks.ListTasksForProject(project.ID)
		if err != nil {
			a.logger.Error(logCategory, fmt.Sprintf("fallback: list tasks: %v", err))
		}
		v.tasks = tasks
	}
	return fallbackReply(message, v)
}

// History returns the full transcript, oldest first.
func (a *Assistant) History() []domain.Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Turns()
}

// Prompt returns the prompt the next exchange would send for message.
func (a *Assistant) Prompt(message string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	snapshot, _, err := a.builder.Build()
	if err != nil {
		return "", err
	}
	return BuildPrompt(a.opts.SystemPrompt, snapshot, a.history.Window(a.opts.HistoryWindow), message), nil
}
