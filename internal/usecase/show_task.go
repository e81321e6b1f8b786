package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	Ref string // Task ID, prefix or exact title
}

// ShowTaskOutput contains the task and its derived state.
type ShowTaskOutput struct {
	Task      *domain.Task
	Project   *domain.Project // Nil when the project no longer exists
	Elapsed   int64           // Tracked seconds including a running session
	Overdue   bool
	DaysToDue int
	HasDue    bool
}

// ShowTask is the use case for displaying task details.
type ShowTask struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	clock    domain.Clock
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(projects domain.ProjectRepository, tasks domain.TaskRepository, clock domain.Clock) *ShowTask {
	return &ShowTask{projects: projects, tasks: tasks, clock: clock}
}

// Execute returns the task details.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := shared.ResolveTask(uc.tasks, in.Ref)
	if err != nil {
		return nil, err
	}
	project, err := uc.projects.GetProject(task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	now := uc.clock.Now()
	days, hasDue := task.DaysUntilDue(now)
	return &ShowTaskOutput{
		Task:      task,
		Project:   project,
		Elapsed:   task.Elapsed(now),
		Overdue:   task.IsOverdue(now),
		DaysToDue: days,
		HasDue:    hasDue,
	}, nil
}
