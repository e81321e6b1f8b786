package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/assistant"
	"github.com/sevencode7/tasks/internal/domain"
)

// Report kinds.
const (
	ReportSummary    = "summary"
	ReportPriorities = "priorities"
	ReportProgress   = "progress"
)

// ReportInput selects the report.
type ReportInput struct {
	Kind string
}

// ReportOutput contains the rendered report.
type ReportOutput struct {
	Text string
}

// Report is the use case for the current project reports.
type Report struct {
	tasks    domain.TaskRepository
	selector domain.ProjectSelector
	clock    domain.Clock
}

// NewReport creates a new Report use case.
func NewReport(tasks domain.TaskRepository, selector domain.ProjectSelector, clock domain.Clock) *Report {
	return &Report{tasks: tasks, selector: selector, clock: clock}
}

// Execute renders the report for the current project.
func (uc *Report) Execute(_ context.Context, in ReportInput) (*ReportOutput, error) {
	project, err := uc.selector.CurrentProject()
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	var tasks []*domain.Task
	if project != nil {
		tasks, err = uc.tasks.ListTasksForProject(project.ID)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
	}

	now := uc.clock.Now()
	switch in.Kind {
	case ReportSummary, "":
		return &ReportOutput{Text: assistant.DailySummary(project, tasks, now)}, nil
	case ReportPriorities:
		return &ReportOutput{Text: assistant.Priorities(project, tasks)}, nil
	case ReportProgress:
		if project == nil {
			return nil, domain.ErrNoProjectSelected
		}
		return &ReportOutput{Text: assistant.FormatProgress(assistant.ComputeProgress(tasks, now))}, nil
	default:
		return nil, fmt.Errorf("unknown report %q (use %s, %s or %s)", in.Kind, ReportSummary, ReportPriorities, ReportProgress)
	}
}
