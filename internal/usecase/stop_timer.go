package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// StopTimer is the use case for stopping a task stopwatch.
type StopTimer struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewStopTimer creates a new StopTimer use case.
func NewStopTimer(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *StopTimer {
	return &StopTimer{tasks: tasks, clock: clock, logger: logger}
}

// Execute stops the stopwatch and records the session.
func (uc *StopTimer) Execute(_ context.Context, in TimerInput) (*TimerOutput, error) {
	task, err := shared.ResolveTask(uc.tasks, in.Ref)
	if err != nil {
		return nil, err
	}
	session, err := task.StopTimer(uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Debug("timer", fmt.Sprintf("stopped: %q after %s", task.Title, domain.FormatDuration(session.Duration)))
	}
	return &TimerOutput{Task: task, Session: &session}, nil
}
