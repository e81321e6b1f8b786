package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// ArchiveProjectInput contains the parameters for archiving a project.
type ArchiveProjectInput struct {
	Ref     string
	Restore bool // Unarchive instead
}

// ArchiveProjectOutput contains the result of archiving a project.
type ArchiveProjectOutput struct {
	Project *domain.Project
}

// ArchiveProject is the use case for archiving and restoring projects.
type ArchiveProject struct {
	projects domain.ProjectRepository
	clock    domain.Clock
}

// NewArchiveProject creates a new ArchiveProject use case.
func NewArchiveProject(projects domain.ProjectRepository, clock domain.Clock) *ArchiveProject {
	return &ArchiveProject{projects: projects, clock: clock}
}

// Execute sets the archived flag.
func (uc *ArchiveProject) Execute(_ context.Context, in ArchiveProjectInput) (*ArchiveProjectOutput, error) {
	project, err := shared.ResolveProject(uc.projects, in.Ref)
	if err != nil {
		return nil, err
	}
	project.Archived = !in.Restore
	project.UpdatedAt = uc.clock.Now()
	if err := uc.projects.SaveProject(project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return &ArchiveProjectOutput{Project: project}, nil
}
