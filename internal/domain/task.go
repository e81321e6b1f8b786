// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// Task is a unit of work inside a project.
// JSON field names follow the browser backup format so old exports stay importable.
type Task struct {
	CreatedAt    time.Time    `json:"createdAt" yaml:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt" yaml:"updatedAt"`
	Due          *time.Time   `json:"due" yaml:"due,omitempty"`
	ID           string       `json:"id" yaml:"id"`
	ProjectID    string       `json:"projectId" yaml:"projectId"`
	Title        string       `json:"title" yaml:"title"`
	Desc         string       `json:"desc" yaml:"desc"`
	Status       Status       `json:"status" yaml:"status"`
	Priority     Priority     `json:"priority" yaml:"priority"`
	Tags         []string     `json:"tags" yaml:"tags"`
	TimeTracking TimeTracking `json:"timeTracking" yaml:"timeTracking"`
	Recurring    Recurring    `json:"recurring" yaml:"recurring"`
	EstimateMin  int          `json:"estimateMin" yaml:"estimateMin"`
}

// TimeTracking holds the stopwatch state of a task.
type TimeTracking struct {
	StartedAt *time.Time    `json:"startedAt" yaml:"startedAt,omitempty"`
	Sessions  []WorkSession `json:"sessions" yaml:"sessions"`
	TotalTime int64         `json:"totalTime" yaml:"totalTime"` // seconds
	IsRunning bool          `json:"isRunning" yaml:"isRunning"`
}

// WorkSession is one closed stopwatch interval.
type WorkSession struct {
	Start    time.Time `json:"start" yaml:"start"`
	End      time.Time `json:"end" yaml:"end"`
	Duration int64     `json:"duration" yaml:"duration"` // seconds
}

// NewTask builds a task with the documented defaults:
// medium priority, no due date, zero estimate, empty tags, stopped timer,
// recurrence disabled (daily, every 1).
func NewTask(id, projectID, title, desc string, status Status, now time.Time) *Task {
	return &Task{
		ID:        id,
		ProjectID: projectID,
		Title:     title,
		Desc:      desc,
		Status:    status,
		Priority:  DefaultPriority,
		Tags:      []string{},
		TimeTracking: TimeTracking{
			Sessions: []WorkSession{},
		},
		Recurring: Recurring{
			Pattern:  RecurDaily,
			Interval: 1,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt. Every mutation must call it.
func (t *Task) Touch(now time.Time) {
	t.UpdatedAt = now
}

// HasTag reports whether the tag is already present.
func (t *Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// AddTag appends tag if it is not present yet. Returns true if the tag was added.
func (t *Task) AddTag(tag string) bool {
	if tag == "" || t.HasTag(tag) {
		return false
	}
	t.Tags = append(t.Tags, tag)
	return true
}

// IsOverdue reports whether the task has a due date strictly before now.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Due != nil && t.Due.Before(now)
}

// DaysUntilDue returns the number of days until the due date, rounded up.
// The second value is false when the task has no due date.
func (t *Task) DaysUntilDue(now time.Time) (int, bool) {
	if t.Due == nil {
		return 0, false
	}
	days := math.Ceil(t.Due.Sub(now).Hours() / 24)
	return int(days), true
}

// IsDueSoon reports whether the due date falls within [0, days] days from now.
func (t *Task) IsDueSoon(now time.Time, days int) bool {
	d, ok := t.DaysUntilDue(now)
	return ok && d >= 0 && d <= days
}

// StartTimer starts the stopwatch.
func (t *Task) StartTimer(now time.Time) error {
	if t.TimeTracking.IsRunning {
		return ErrTimerRunning
	}
	started := now
	t.TimeTracking.IsRunning = true
	t.TimeTracking.StartedAt = &started
	t.Touch(now)
	return nil
}

// StopTimer stops the stopwatch and records the closed session.
func (t *Task) StopTimer(now time.Time) (WorkSession, error) {
	tt := &t.TimeTracking
	if !tt.IsRunning || tt.StartedAt == nil {
		return WorkSession{}, ErrTimerNotRunning
	}
	duration := int64(now.Sub(*tt.StartedAt) / time.Second)
	if duration < 0 {
		duration = 0
	}
	session := WorkSession{Start: *tt.StartedAt, End: now, Duration: duration}
	tt.Sessions = append(tt.Sessions, session)
	tt.TotalTime += duration
	tt.IsRunning = false
	tt.StartedAt = nil
	t.Touch(now)
	return session, nil
}

// ResetTimer clears all tracked time. This is the only way TotalTime decreases.
func (t *Task) ResetTimer(now time.Time) {
	t.TimeTracking = TimeTracking{Sessions: []WorkSession{}}
	t.Touch(now)
}

// Elapsed returns tracked seconds including the running session, if any.
func (t *Task) Elapsed(now time.Time) int64 {
	total := t.TimeTracking.TotalTime
	if t.TimeTracking.IsRunning && t.TimeTracking.StartedAt != nil {
		if d := int64(now.Sub(*t.TimeTracking.StartedAt) / time.Second); d > 0 {
			total += d
		}
	}
	return total
}

// EstimateLabel returns "N min" or "not set".
func (t *Task) EstimateLabel() string {
	if t.EstimateMin <= 0 {
		return "not set"
	}
	return fmt.Sprintf("%d min", t.EstimateMin)
}

// FormatDuration renders seconds as "2h 5m" or "5m".
func FormatDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FindByExactTitle returns the first task whose title equals the trimmed title.
// Matching is case-sensitive. Returns nil if nothing matches.
func FindByExactTitle(tasks []*Task, title string) *Task {
	title = strings.TrimSpace(title)
	for _, t := range tasks {
		if t.Title == title {
			return t
		}
	}
	return nil
}

// TasksForProject filters tasks by project ID, keeping order.
func TasksForProject(tasks []*Task, projectID string) []*Task {
	var out []*Task
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// CountStatus counts tasks in the given status.
func CountStatus(tasks []*Task, status Status) int {
	n := 0
	for _, t := range tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

// CountOverdue counts tasks with a due date strictly before now.
func CountOverdue(tasks []*Task, now time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.IsOverdue(now) {
			n++
		}
	}
	return n
}
