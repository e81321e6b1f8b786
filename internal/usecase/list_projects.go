package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
)

// ListProjectsInput contains the parameters for listing projects.
type ListProjectsInput struct {
	IncludeArchived bool
}

// ProjectSummary is a project with its task counts.
type ProjectSummary struct {
	Project *domain.Project
	Total   int
	Done    int
	Current bool
}

// ListProjectsOutput contains the result of listing projects.
type ListProjectsOutput struct {
	Projects []ProjectSummary
}

// ListProjects is the use case for listing projects.
type ListProjects struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	selector domain.ProjectSelector
}

// NewListProjects creates a new ListProjects use case.
func NewListProjects(projects domain.ProjectRepository, tasks domain.TaskRepository, selector domain.ProjectSelector) *ListProjects {
	return &ListProjects{projects: projects, tasks: tasks, selector: selector}
}

// Execute lists projects in creation order.
func (uc *ListProjects) Execute(_ context.Context, in ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.projects.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	current, err := uc.selector.CurrentProject()
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}

	out := &ListProjectsOutput{}
	for _, p := range projects {
		if p.Archived && !in.IncludeArchived {
			continue
		}
		own := domain.TasksForProject(tasks, p.ID)
		out.Projects = append(out.Projects, ProjectSummary{
			Project: p,
			Total:   len(own),
			Done:    domain.CountStatus(own, domain.StatusDone),
			Current: current != nil && current.ID == p.ID,
		})
	}
	return out, nil
}
