package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sevencode7/tasks/internal/domain"
)

// CheckRemindersInput contains the parameters for the reminder check.
type CheckRemindersInput struct{}

// Reminder is one due-date warning for a task.
type Reminder struct {
	Task      *domain.Task
	Threshold domain.ReminderThreshold
}

// String returns the console form of the reminder.
func (r Reminder) String() string {
	return fmt.Sprintf("⏰ %s: %s", r.Task.Title, r.Threshold.Label)
}

// CheckRemindersOutput lists the reminders raised by the check.
type CheckRemindersOutput struct {
	Reminders []Reminder
}

// CheckReminders is the use case that warns about approaching due dates.
// It remembers when each task and threshold was last reported, so one
// instance should live as long as the session that polls it.
type CheckReminders struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
	last   map[string]time.Time
	mu     sync.Mutex
}

// NewCheckReminders creates a new CheckReminders use case.
func NewCheckReminders(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CheckReminders {
	return &CheckReminders{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
		last:   make(map[string]time.Time),
	}
}

// Execute runs one pass over all tasks.
func (uc *CheckReminders) Execute(_ context.Context, _ CheckRemindersInput) (*CheckRemindersOutput, error) {
	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.clock.Now()
	out := &CheckRemindersOutput{}
	for _, t := range tasks {
		for _, th := range t.DueReminders(now) {
			key := fmt.Sprintf("%s/%s", t.ID, th.Before)
			if last, ok := uc.last[key]; ok && now.Sub(last) <= domain.ReminderRepeat {
				continue
			}
			uc.last[key] = now
			out.Reminders = append(out.Reminders, Reminder{Task: t, Threshold: th})
		}
	}
	if len(out.Reminders) > 0 && uc.logger != nil {
		uc.logger.Info("reminders", fmt.Sprintf("raised %d reminder(s)", len(out.Reminders)))
	}
	return out, nil
}
