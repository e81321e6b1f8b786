package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// TimerInput identifies the task whose stopwatch is operated.
type TimerInput struct {
	Ref string
}

// TimerOutput contains the task after the timer operation.
type TimerOutput struct {
	Task    *domain.Task
	Session *domain.WorkSession // Set by StopTimer
}

// StartTimer is the use case for starting a task stopwatch.
type StartTimer struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewStartTimer creates a new StartTimer use case.
func NewStartTimer(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *StartTimer {
	return &StartTimer{tasks: tasks, clock: clock, logger: logger}
}

// Execute starts the stopwatch. It fails with ErrTimerRunning if it already runs.
func (uc *StartTimer) Execute(_ context.Context, in TimerInput) (*TimerOutput, error) {
	task, err := shared.ResolveTask(uc.tasks, in.Ref)
	if err != nil {
		return nil, err
	}
	if err := task.StartTimer(uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Debug("timer", fmt.Sprintf("started: %q", task.Title))
	}
	return &TimerOutput{Task: task}, nil
}
