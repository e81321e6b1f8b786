package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	ProjectRef  string // Project ID, prefix or title (empty = current project)
	Status      string // Filter by status (empty = any)
	Priority    string // Filter by priority (empty = any)
	Tag         string // Filter by tag (empty = any)
	AllProjects bool   // Ignore the project filter
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Project *domain.Project // Nil when AllProjects is set
	Tasks   []*domain.Task
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	selector domain.ProjectSelector
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(projects domain.ProjectRepository, tasks domain.TaskRepository, selector domain.ProjectSelector) *ListTasks {
	return &ListTasks{projects: projects, tasks: tasks, selector: selector}
}

// Execute lists tasks in creation order.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	var status domain.Status
	if in.Status != "" {
		s, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", in.Status, err)
		}
		status = s
	}
	var priority domain.Priority
	if in.Priority != "" {
		p, err := domain.ParsePriority(in.Priority)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", in.Priority, err)
		}
		priority = p
	}

	out := &ListTasksOutput{}
	var tasks []*domain.Task
	var err error
	if in.AllProjects {
		tasks, err = uc.tasks.ListTasks()
	} else {
		out.Project, err = shared.ProjectOrCurrent(uc.projects, uc.selector, in.ProjectRef)
		if err != nil {
			return nil, err
		}
		tasks, err = uc.tasks.ListTasksForProject(out.Project.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	for _, t := range tasks {
		if status != "" && t.Status != status {
			continue
		}
		if priority != "" && t.Priority != priority {
			continue
		}
		if in.Tag != "" && !t.HasTag(in.Tag) {
			continue
		}
		out.Tasks = append(out.Tasks, t)
	}
	return out, nil
}
