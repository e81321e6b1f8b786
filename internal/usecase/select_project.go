package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// SelectProjectInput contains the parameters for selecting a project.
type SelectProjectInput struct {
	Ref   string // ID, ID prefix or exact title
	Clear bool   // Clear the selection instead
}

// SelectProjectOutput contains the result of selecting a project.
type SelectProjectOutput struct {
	Project *domain.Project // Nil when the selection was cleared
}

// SelectProject is the use case for changing the current project.
type SelectProject struct {
	projects  domain.ProjectRepository
	selection domain.SelectionWriter
}

// NewSelectProject creates a new SelectProject use case.
func NewSelectProject(projects domain.ProjectRepository, selection domain.SelectionWriter) *SelectProject {
	return &SelectProject{projects: projects, selection: selection}
}

// Execute selects or clears the current project.
func (uc *SelectProject) Execute(_ context.Context, in SelectProjectInput) (*SelectProjectOutput, error) {
	if in.Clear {
		if err := uc.selection.SelectProject(""); err != nil {
			return nil, fmt.Errorf("clear selection: %w", err)
		}
		return &SelectProjectOutput{}, nil
	}

	project, err := shared.ResolveProject(uc.projects, in.Ref)
	if err != nil {
		return nil, err
	}
	if err := uc.selection.SelectProject(project.ID); err != nil {
		return nil, fmt.Errorf("select project: %w", err)
	}
	return &SelectProjectOutput{Project: project}, nil
}
