package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a task.
// Only non-nil/non-empty fields will be updated.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Title       *string    // New title (nil = no change)
	Description *string    // New description (nil = no change)
	Status      *string    // New status (nil = no change)
	Priority    *string    // New priority (nil = no change)
	Due         *time.Time // New due date (nil = no change)
	EstimateMin *int       // New estimate (nil = no change)
	Ref         string     // Task ID, prefix or exact title (required)
	AddTags     []string   // Tags to add
	RemoveTags  []string   // Tags to remove
	ClearDue    bool       // Remove the due date
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, clock domain.Clock) *EditTask {
	return &EditTask{tasks: tasks, clock: clock}
}

func (in EditTaskInput) empty() bool {
	return in.Title == nil && in.Description == nil && in.Status == nil && in.Priority == nil &&
		in.Due == nil && in.EstimateMin == nil && !in.ClearDue &&
		len(in.AddTags) == 0 && len(in.RemoveTags) == 0
}

// Execute edits a task with the given input.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.EstimateMin != nil && *in.EstimateMin < 0 {
		return nil, domain.ErrNegativeEstimate
	}

	task, err := shared.ResolveTask(uc.tasks, in.Ref)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		s, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", *in.Status, err)
		}
		task.Status = s
	}
	if in.Priority != nil {
		p, err := domain.ParsePriority(*in.Priority)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", *in.Priority, err)
		}
		task.Priority = p
	}
	if in.Title != nil {
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Desc = strings.TrimSpace(*in.Description)
	}
	if in.EstimateMin != nil {
		task.EstimateMin = *in.EstimateMin
	}
	if in.ClearDue {
		task.Due = nil
	} else if in.Due != nil {
		due := *in.Due
		task.Due = &due
	}
	if len(in.AddTags) > 0 || len(in.RemoveTags) > 0 {
		task.Tags = updateTags(task.Tags, in.AddTags, in.RemoveTags)
	}

	task.Touch(uc.clock.Now())
	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	return &EditTaskOutput{Task: task}, nil
}

// updateTags adds and removes tags, keeping insertion order.
func updateTags(current, add, remove []string) []string {
	removeSet := make(map[string]bool, len(remove))
	for _, tag := range remove {
		removeSet[strings.TrimSpace(tag)] = true
	}

	out := slices.DeleteFunc(slices.Clone(current), func(tag string) bool { return removeSet[tag] })
	for _, tag := range cleanTags(add) {
		if !removeSet[tag] && !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}
