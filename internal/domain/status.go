package domain

import "strings"

// Status represents the board column a task sits in.
type Status string

const (
	StatusBacklog Status = "backlog" // Created, not started
	StatusDoing   Status = "doing"   // Being worked on
	StatusReview  Status = "review"  // Waiting for review
	StatusDone    Status = "done"    // Finished
)

// AllStatuses returns all valid status values in board order.
func AllStatuses() []Status {
	return []Status{
		StatusBacklog,
		StatusDoing,
		StatusReview,
		StatusDone,
	}
}

// ParseStatus converts free text into a Status.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusBacklog, StatusDoing, StatusReview, StatusDone:
		return true
	default:
		return false
	}
}

// IsDone returns true for the terminal column.
func (s Status) IsDone() bool {
	return s == StatusDone
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusBacklog:
		return "Backlog"
	case StatusDoing:
		return "In Progress"
	case StatusReview:
		return "In Review"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// DefaultPriority is assigned to tasks created without an explicit priority.
const DefaultPriority = PriorityMedium

// AllPriorities returns all priorities from most to least urgent.
func AllPriorities() []Priority {
	return []Priority{
		PriorityCritical,
		PriorityHigh,
		PriorityMedium,
		PriorityLow,
	}
}

// ParsePriority converts free text into a Priority.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// Display returns the priority label with its colour marker.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low 🔵"
	case PriorityMedium:
		return "Medium 🟡"
	case PriorityHigh:
		return "High 🟠"
	case PriorityCritical:
		return "Critical 🔴"
	default:
		return string(p)
	}
}
