package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
)

// ClearDataInput contains the parameters for wiping the store.
type ClearDataInput struct{}

// ClearDataOutput reports what was removed.
type ClearDataOutput struct {
	Projects int
	Tasks    int
}

// ClearData is the use case for removing every project and task.
type ClearData struct {
	projects  domain.ProjectRepository
	tasks     domain.TaskRepository
	selection domain.SelectionWriter
}

// NewClearData creates a new ClearData use case.
func NewClearData(projects domain.ProjectRepository, tasks domain.TaskRepository, selection domain.SelectionWriter) *ClearData {
	return &ClearData{projects: projects, tasks: tasks, selection: selection}
}

// Execute empties the store and clears the selection.
func (uc *ClearData) Execute(_ context.Context, _ ClearDataInput) (*ClearDataOutput, error) {
	projects, err := uc.projects.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if err := uc.tasks.PersistTasks([]*domain.Task{}); err != nil {
		return nil, fmt.Errorf("persist tasks: %w", err)
	}
	if err := uc.projects.PersistProjects([]*domain.Project{}); err != nil {
		return nil, fmt.Errorf("persist projects: %w", err)
	}
	if err := uc.selection.SelectProject(""); err != nil {
		return nil, fmt.Errorf("clear selection: %w", err)
	}
	return &ClearDataOutput{Projects: len(projects), Tasks: len(tasks)}, nil
}
