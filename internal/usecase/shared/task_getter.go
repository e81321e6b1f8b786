// Package shared holds helpers used by several use cases.
package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sevencode7/tasks/internal/domain"
)

// MinPrefixLen is the shortest ID prefix accepted as a reference.
const MinPrefixLen = 4

// ShortID returns the display form of an ID.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// GetTask retrieves a task by ID and returns domain.ErrTaskNotFound if not found.
func GetTask(repo domain.TaskRepository, taskID string) (*domain.Task, error) {
	task, err := repo.GetTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// ResolveTask finds a task by full ID, exact title or unique ID prefix.
func ResolveTask(repo domain.TaskRepository, ref string) (*domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrTaskNotFound
	}
	task, err := GetTask(repo, ref)
	if err == nil {
		return task, nil
	}
	if !errors.Is(err, domain.ErrTaskNotFound) {
		return nil, err
	}
	tasks, err := repo.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return resolve(tasks, ref, domain.ErrTaskNotFound,
		func(t *domain.Task) string { return t.ID },
		func(t *domain.Task) string { return t.Title },
	)
}

// ResolveProject finds a project by full ID, exact title or unique ID prefix.
func ResolveProject(repo domain.ProjectRepository, ref string) (*domain.Project, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrProjectNotFound
	}
	projects, err := repo.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return resolve(projects, ref, domain.ErrProjectNotFound,
		func(p *domain.Project) string { return p.ID },
		func(p *domain.Project) string { return p.Title },
	)
}

// ProjectOrCurrent resolves ref, or returns the selected project when ref is empty.
func ProjectOrCurrent(repo domain.ProjectRepository, selector domain.ProjectSelector, ref string) (*domain.Project, error) {
	if strings.TrimSpace(ref) != "" {
		return ResolveProject(repo, ref)
	}
	project, err := selector.CurrentProject()
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	if project == nil {
		return nil, domain.ErrNoProjectSelected
	}
	return project, nil
}

func resolve[T any](items []T, ref string, notFound error, id, title func(T) string) (T, error) {
	var zero T
	for _, it := range items {
		if id(it) == ref {
			return it, nil
		}
	}
	for _, it := range items {
		if title(it) == ref {
			return it, nil
		}
	}
	if len(ref) < MinPrefixLen {
		return zero, notFound
	}
	var match T
	found := 0
	for _, it := range items {
		if strings.HasPrefix(id(it), ref) {
			match = it
			found++
		}
	}
	switch found {
	case 0:
		return zero, notFound
	case 1:
		return match, nil
	default:
		return zero, fmt.Errorf("%q: %w", ref, domain.ErrAmbiguousReference)
	}
}
