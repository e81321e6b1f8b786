package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// SetRecurringInput contains the recurrence settings for a task.
type SetRecurringInput struct {
	EndDate  *time.Time // Optional last day of recurrence
	Ref      string
	Pattern  string // daily, weekly or monthly
	Interval int
	Disable  bool
}

// SetRecurringOutput contains the updated task.
type SetRecurringOutput struct {
	Task *domain.Task
}

// SetRecurring is the use case for enabling and disabling recurrence.
type SetRecurring struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewSetRecurring creates a new SetRecurring use case.
func NewSetRecurring(tasks domain.TaskRepository, clock domain.Clock) *SetRecurring {
	return &SetRecurring{tasks: tasks, clock: clock}
}

// Execute updates the recurrence settings.
func (uc *SetRecurring) Execute(_ context.Context, in SetRecurringInput) (*SetRecurringOutput, error) {
	task, err := shared.ResolveTask(uc.tasks, in.Ref)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if in.Disable {
		task.DisableRecurring(now)
	} else {
		pattern := domain.RecurPattern(strings.ToLower(strings.TrimSpace(in.Pattern)))
		if err := task.SetRecurring(pattern, in.Interval, in.EndDate, now); err != nil {
			return nil, err
		}
	}

	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	return &SetRecurringOutput{Task: task}, nil
}
