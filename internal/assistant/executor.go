package assistant

import (
	"fmt"
	"strconv"

	"github.com/sevencode7/tasks/internal/domain"
)

const logCategory = "assistant"

// Result is the outcome of applying a reply's commands.
type Result struct {
	Text     string
	Executed int  // commands that ran and were replaced by their output
	Skipped  int  // commands removed because their target task does not exist
	Rejected int  // commands left verbatim because their arguments are invalid
	Failed   int  // commands left verbatim because the repository failed
	Degraded bool // commands present but not run because no project is selected
}

// outcome is the effect of one command.
type outcome struct {
	replacement string
	status      outcomeStatus
}

type outcomeStatus int

const (
	outcomeExecuted outcomeStatus = iota
	outcomeSkipped
	outcomeRejected
	outcomeFailed
)

// Executor applies commands against the task repository.
type Executor struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *Executor {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Executor{tasks: tasks, clock: clock, logger: logger}
}

// Apply scans reply for commands, runs them in kind order and replaces each
// span with its output. With no project selected nothing runs and the text
// is returned as is.
func (e *Executor) Apply(reply string, project *domain.Project) Result {
	if project == nil {
		if ContainsCommand(reply) {
			e.logger.Warn(logCategory, "commands left unexecuted: no project selected")
			return Result{Text: reply, Degraded: true}
		}
		return Result{Text: reply}
	}

	res := Result{}
	text := reply
	for _, kind := range Kinds() {
		offset := 0
		for {
			cmd, ok := Scan(text, kind, offset)
			if !ok {
				break
			}
			out := e.execute(cmd, project)
			switch out.status {
			case outcomeExecuted:
				res.Executed++
			case outcomeSkipped:
				res.Skipped++
			case outcomeRejected:
				res.Rejected++
				out.replacement = cmd.Span(text)
			case outcomeFailed:
				res.Failed++
				out.replacement = cmd.Span(text)
			}
			text = text[:cmd.Start] + out.replacement + text[cmd.End:]
			offset = cmd.Start + len(out.replacement)

			if kind == KindProgressSummary {
				break
			}
		}
	}
	res.Text = text
	return res
}

func (e *Executor) execute(cmd Command, project *domain.Project) outcome {
	switch cmd.Kind {
	case KindCreateTask:
		return e.createTask(cmd, project)
	case KindUpdateTask:
		return e.updateTask(cmd)
	case KindAddTag:
		return e.addTag(cmd)
	case KindSuggestTitle:
		return outcome{replacement: FormatTitleSuggestions(SuggestTitles(cmd.Arg(0)))}
	case KindBreakdownTask:
		return outcome{replacement: FormatBreakdown(BreakdownSteps(cmd.Arg(0)))}
	case KindProgressSummary:
		return e.progress(project)
	default:
		return outcome{status: outcomeFailed}
	}
}

func (e *Executor) createTask(cmd Command, project *domain.Project) outcome {
	title := cmd.Arg(0)
	if title == "" {
		e.logger.Warn(logCategory, "create_task rejected: empty title")
		return outcome{status: outcomeRejected}
	}

	priority, err := domain.ParsePriority(cmd.Arg(2))
	if err != nil {
		e.logger.Warn(logCategory, fmt.Sprintf("create_task %q: priority %q not recognized, using %s", title, cmd.Arg(2), domain.DefaultPriority))
		priority = domain.DefaultPriority
	}

	estimate, err := strconv.Atoi(cmd.Arg(3))
	if err != nil || estimate < 0 {
		estimate = 0
	}

	task, err := e.tasks.CreateTask(project.ID, title, cmd.Arg(1), domain.StatusBacklog)
	if err != nil {
		e.logger.Error(logCategory, fmt.Sprintf("create_task %q: %v", title, err))
		return outcome{status: outcomeFailed}
	}
	if priority != task.Priority || estimate != task.EstimateMin {
		updated := *task
		updated.Priority = priority
		updated.EstimateMin = estimate
		updated.Touch(e.clock.Now())
		if err := e.tasks.SaveTask(&updated); err != nil {
			e.logger.Error(logCategory, fmt.Sprintf("create_task %q: %v", title, err))
			return e.rollbackCreate(task)
		}
		task = &updated
	}

	e.logger.Info(logCategory, fmt.Sprintf("task created: %s %q", task.ID, task.Title))
	return outcome{replacement: fmt.Sprintf("✅ Task created: \"%s\"", task.Title)}
}

// rollbackCreate deletes a task whose follow-up save failed. If the delete
// fails too, the task keeps its default priority and estimate and counts as created.
func (e *Executor) rollbackCreate(task *domain.Task) outcome {
	if err := e.tasks.DeleteTask(task.ID); err != nil {
		e.logger.Warn(logCategory, fmt.Sprintf("create_task %q: rollback failed, keeping defaults: %v", task.Title, err))
		return outcome{replacement: fmt.Sprintf("✅ Task created: \"%s\"", task.Title)}
	}
	return outcome{status: outcomeFailed}
}

func (e *Executor) updateTask(cmd Command) outcome {
	title := cmd.Arg(0)
	task, err := e.tasks.FindTaskByExactTitle(title)
	if err != nil {
		e.logger.Error(logCategory, fmt.Sprintf("update_task %q: %v", title, err))
		return outcome{status: outcomeFailed}
	}
	if task == nil {
		e.logger.Warn(logCategory, fmt.Sprintf("update_task: no task titled %q", title))
		return outcome{status: outcomeSkipped}
	}

	if status, err := domain.ParseStatus(cmd.Arg(1)); err == nil {
		task.Status = status
	} else {
		e.logger.Warn(logCategory, fmt.Sprintf("update_task %q: status %q not recognized, keeping %s", title, cmd.Arg(1), task.Status))
	}

	if arg := cmd.Arg(2); arg != "none" {
		if priority, err := domain.ParsePriority(arg); err == nil {
			task.Priority = priority
		} else {
			e.logger.Warn(logCategory, fmt.Sprintf("update_task %q: priority %q not recognized, keeping %s", title, arg, task.Priority))
		}
	}

	task.Touch(e.clock.Now())
	if err := e.tasks.SaveTask(task); err != nil {
		e.logger.Error(logCategory, fmt.Sprintf("update_task %q: %v", title, err))
		return outcome{status: outcomeFailed}
	}

	e.logger.Info(logCategory, fmt.Sprintf("task updated: %s %q", task.ID, task.Title))
	return outcome{replacement: fmt.Sprintf("✅ Task updated: \"%s\"", task.Title)}
}

func (e *Executor) addTag(cmd Command) outcome {
	title, tag := cmd.Arg(0), cmd.Arg(1)
	task, err := e.tasks.FindTaskByExactTitle(title)
	if err != nil {
		e.logger.Error(logCategory, fmt.Sprintf("add_tag %q: %v", title, err))
		return outcome{status: outcomeFailed}
	}
	if task == nil {
		e.logger.Warn(logCategory, fmt.Sprintf("add_tag: no task titled %q", title))
		return outcome{status: outcomeSkipped}
	}

	if task.AddTag(tag) {
		task.Touch(e.clock.Now())
		if err := e.tasks.SaveTask(task); err != nil {
			e.logger.Error(logCategory, fmt.Sprintf("add_tag %q: %v", title, err))
			return outcome{status: outcomeFailed}
		}
	}

	return outcome{replacement: fmt.Sprintf("🏷️ Tag added: \"%s\"", tag)}
}

func (e *Executor) progress(project *domain.Project) outcome {
	tasks, err := e.tasks.ListTasksForProject(project.ID)
	if err != nil {
		e.logger.Error(logCategory, fmt.Sprintf("progress_summary: %v", err))
		return outcome{status: outcomeFailed}
	}
	return outcome{replacement: FormatProgress(ComputeProgress(tasks, e.clock.Now()))}
}
