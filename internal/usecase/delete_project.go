package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// DeleteProjectInput contains the parameters for deleting a project.
type DeleteProjectInput struct {
	Ref string
}

// DeleteProjectOutput contains the result of deleting a project.
type DeleteProjectOutput struct {
	Project      *domain.Project
	DeletedTasks int
}

// DeleteProject is the use case for deleting a project and its tasks.
type DeleteProject struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	logger   domain.Logger
}

// NewDeleteProject creates a new DeleteProject use case.
func NewDeleteProject(projects domain.ProjectRepository, tasks domain.TaskRepository, logger domain.Logger) *DeleteProject {
	return &DeleteProject{projects: projects, tasks: tasks, logger: logger}
}

// Execute deletes the project. Its tasks go with it and a selection of it is cleared.
func (uc *DeleteProject) Execute(_ context.Context, in DeleteProjectInput) (*DeleteProjectOutput, error) {
	project, err := shared.ResolveProject(uc.projects, in.Ref)
	if err != nil {
		return nil, err
	}
	own, err := uc.tasks.ListTasksForProject(project.ID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if err := uc.projects.DeleteProject(project.ID); err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("project", fmt.Sprintf("deleted: %q (%d tasks)", project.Title, len(own)))
	}
	return &DeleteProjectOutput{Project: project, DeletedTasks: len(own)}, nil
}
