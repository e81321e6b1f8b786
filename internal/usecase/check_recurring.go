package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sevencode7/tasks/internal/domain"
)

// CheckRecurringInput contains the parameters for the recurrence check.
type CheckRecurringInput struct{}

// CheckRecurringOutput lists the occurrences created by the check.
type CheckRecurringOutput struct {
	Created []*domain.Task
}

// CheckRecurring is the use case that spawns due occurrences of finished
// recurring tasks.
type CheckRecurring struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
	newID  func() string
}

// NewCheckRecurring creates a new CheckRecurring use case.
// newID defaults to random UUIDs.
func NewCheckRecurring(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger, newID func() string) *CheckRecurring {
	if newID == nil {
		newID = uuid.NewString
	}
	return &CheckRecurring{tasks: tasks, clock: clock, logger: logger, newID: newID}
}

// Execute runs one pass over all tasks. The whole task list is written once.
func (uc *CheckRecurring) Execute(_ context.Context, _ CheckRecurringInput) (*CheckRecurringOutput, error) {
	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := uc.clock.Now()
	out := &CheckRecurringOutput{}
	for _, t := range tasks {
		if !t.ShouldRecur(now) {
			continue
		}
		out.Created = append(out.Created, t.SpawnOccurrence(uc.newID(), now))
	}
	if len(out.Created) == 0 {
		return out, nil
	}

	if err := uc.tasks.PersistTasks(append(tasks, out.Created...)); err != nil {
		return nil, fmt.Errorf("persist tasks: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("recurring", fmt.Sprintf("created %d occurrence(s)", len(out.Created)))
	}
	return out, nil
}
