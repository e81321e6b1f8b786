package domain

import "time"

// RecurPattern is the unit of a recurrence interval.
type RecurPattern string

const (
	RecurDaily   RecurPattern = "daily"
	RecurWeekly  RecurPattern = "weekly"
	RecurMonthly RecurPattern = "monthly"
)

// IsValid returns true if the pattern is known.
func (p RecurPattern) IsValid() bool {
	return p == RecurDaily || p == RecurWeekly || p == RecurMonthly
}

// Recurring describes how a finished task spawns its next occurrence.
type Recurring struct {
	EndDate     *time.Time   `json:"endDate" yaml:"endDate,omitempty"`
	LastCreated *time.Time   `json:"lastCreated" yaml:"lastCreated,omitempty"`
	Pattern     RecurPattern `json:"pattern" yaml:"pattern"`
	Interval    int          `json:"interval" yaml:"interval"`
	Enabled     bool         `json:"enabled" yaml:"enabled"`
}

// RecurringCopySuffix is appended to the title of spawned occurrences.
const RecurringCopySuffix = " (recurring)"

// SetRecurring enables recurrence with the given pattern and interval.
func (t *Task) SetRecurring(pattern RecurPattern, interval int, endDate *time.Time, now time.Time) error {
	if !pattern.IsValid() || interval < 1 {
		return ErrInvalidRecurrence
	}
	last := now
	t.Recurring = Recurring{
		Enabled:     true,
		Pattern:     pattern,
		Interval:    interval,
		EndDate:     endDate,
		LastCreated: &last,
	}
	t.Touch(now)
	return nil
}

// DisableRecurring turns recurrence off, keeping the pattern for later.
func (t *Task) DisableRecurring(now time.Time) {
	t.Recurring.Enabled = false
	t.Touch(now)
}

// ShouldRecur reports whether a new occurrence is due.
// Only finished tasks recur; the interval is measured from the last spawned
// occurrence, or from creation when none was spawned yet.
func (t *Task) ShouldRecur(now time.Time) bool {
	r := t.Recurring
	if !r.Enabled || t.Status != StatusDone || r.Interval < 1 {
		return false
	}
	if r.EndDate != nil && now.After(*r.EndDate) {
		return false
	}
	last := t.CreatedAt
	if r.LastCreated != nil {
		last = *r.LastCreated
	}
	days := now.Sub(last).Hours() / 24
	switch r.Pattern {
	case RecurDaily:
		return days >= float64(r.Interval)
	case RecurWeekly:
		return days >= float64(r.Interval*7)
	case RecurMonthly:
		months := (now.Year()-last.Year())*12 + int(now.Month()) - int(last.Month())
		return months >= r.Interval
	default:
		return false
	}
}

// NextDue shifts the due date forward by one interval. Nil stays nil.
func (t *Task) NextDue() *time.Time {
	if t.Due == nil {
		return nil
	}
	var next time.Time
	switch t.Recurring.Pattern {
	case RecurWeekly:
		next = t.Due.AddDate(0, 0, 7*t.Recurring.Interval)
	case RecurMonthly:
		next = t.Due.AddDate(0, t.Recurring.Interval, 0)
	default:
		next = t.Due.AddDate(0, 0, t.Recurring.Interval)
	}
	return &next
}

// SpawnOccurrence creates the next backlog copy of a recurring task and marks
// both the original and the copy as created now.
func (t *Task) SpawnOccurrence(id string, now time.Time) *Task {
	next := NewTask(id, t.ProjectID, t.Title+RecurringCopySuffix, t.Desc, StatusBacklog, now)
	next.Priority = t.Priority
	next.EstimateMin = t.EstimateMin
	next.Tags = append([]string{}, t.Tags...)
	next.Due = t.NextDue()
	next.Recurring = t.Recurring
	created := now
	next.Recurring.LastCreated = &created
	t.Recurring.LastCreated = &created
	t.Touch(now)
	return next
}
