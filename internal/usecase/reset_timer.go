package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// ResetTimer is the use case for clearing tracked time.
type ResetTimer struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewResetTimer creates a new ResetTimer use case.
func NewResetTimer(tasks domain.TaskRepository, clock domain.Clock) *ResetTimer {
	return &ResetTimer{tasks: tasks, clock: clock}
}

// Execute clears sessions and total time, stopping a running timer.
func (uc *ResetTimer) Execute(_ context.Context, in TimerInput) (*TimerOutput, error) {
	task, err := shared.ResolveTask(uc.tasks, in.Ref)
	if err != nil {
		return nil, err
	}
	task.ResetTimer(uc.clock.Now())
	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	return &TimerOutput{Task: task}, nil
}
