package domain

import "time"

// Reminder timing.
const (
	// ReminderWindow is how close the time until due must be to a threshold.
	ReminderWindow = 6 * time.Minute
	// ReminderRepeat is the quiet period per task and threshold after a reminder.
	ReminderRepeat = time.Hour
)

// ReminderThreshold is a point before the due time at which a reminder fires.
type ReminderThreshold struct {
	Label  string
	Before time.Duration
}

// ReminderThresholds lists the reminder points, earliest first.
var ReminderThresholds = []ReminderThreshold{
	{Label: "due tomorrow", Before: 24 * time.Hour},
	{Label: "due within an hour", Before: time.Hour},
	{Label: "due now", Before: 0},
}

// DueReminders returns the thresholds whose window contains now.
// Done tasks and tasks without a due date have none.
func (t *Task) DueReminders(now time.Time) []ReminderThreshold {
	if t.Due == nil || t.Status == StatusDone {
		return nil
	}
	left := t.Due.Sub(now)
	var out []ReminderThreshold
	for _, th := range ReminderThresholds {
		d := left - th.Before
		if d < 0 {
			d = -d
		}
		if d < ReminderWindow {
			out = append(out, th)
		}
	}
	return out
}
