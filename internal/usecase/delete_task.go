package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Ref string
}

// DeleteTaskOutput contains the deleted task.
type DeleteTaskOutput struct {
	Task *domain.Task
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, logger: logger}
}

// Execute deletes the task.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, err := shared.ResolveTask(uc.tasks, in.Ref)
	if err != nil {
		return nil, err
	}
	if err := uc.tasks.DeleteTask(task.ID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted: %q", task.Title))
	}
	return &DeleteTaskOutput{Task: task}, nil
}
