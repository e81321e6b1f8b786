// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Due         *time.Time // Due date (optional)
	ProjectRef  string     // Project ID, prefix or title (empty = current project)
	Title       string     // Task title (required)
	Description string     // Task description (optional)
	Status      string     // Initial status (empty = backlog)
	Priority    string     // Priority (empty = medium)
	Tags        []string   // Tags (optional)
	EstimateMin int        // Estimate in minutes (optional)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task    *domain.Task
	Project *domain.Project
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	selector domain.ProjectSelector
	clock    domain.Clock
	logger   domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(projects domain.ProjectRepository, tasks domain.TaskRepository, selector domain.ProjectSelector, clock domain.Clock, logger domain.Logger) *NewTask {
	return &NewTask{
		projects: projects,
		tasks:    tasks,
		selector: selector,
		clock:    clock,
		logger:   logger,
	}
}

// Execute creates a new task with the given input.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.EstimateMin < 0 {
		return nil, domain.ErrNegativeEstimate
	}

	status := domain.StatusBacklog
	if in.Status != "" {
		s, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", in.Status, err)
		}
		status = s
	}
	priority := domain.DefaultPriority
	if in.Priority != "" {
		p, err := domain.ParsePriority(in.Priority)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", in.Priority, err)
		}
		priority = p
	}

	project, err := shared.ProjectOrCurrent(uc.projects, uc.selector, in.ProjectRef)
	if err != nil {
		return nil, err
	}

	task, err := uc.tasks.CreateTask(project.ID, title, strings.TrimSpace(in.Description), status)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	task.Priority = priority
	task.EstimateMin = in.EstimateMin
	task.Due = in.Due
	task.Tags = cleanTags(in.Tags)
	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created: %q in %q", title, project.Title))
	}

	return &NewTaskOutput{Task: task, Project: project}, nil
}
