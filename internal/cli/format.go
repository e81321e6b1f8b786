package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sevencode7/tasks/internal/domain"
)

// dateLayouts are the accepted --due and --until formats, in local time.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

// parseDate parses a date flag. "today" and "tomorrow" resolve relative to now.
func parseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	day := func(offset int) time.Time {
		y, m, d := now.Date()
		return time.Date(y, m, d+offset, 0, 0, 0, 0, now.Location())
	}
	switch strings.ToLower(s) {
	case "today":
		return day(0), nil
	case "tomorrow":
		return day(1), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

// formatDue renders a due date with its distance from now in calendar days.
func formatDue(due *time.Time, now time.Time) string {
	if due == nil {
		return "-"
	}
	local := due.In(now.Location())
	date := local.Format("2006-01-02")
	if local.Before(now) {
		return date + " (overdue)"
	}
	switch days := calendarDays(now, local); days {
	case 0:
		return date + " (today)"
	case 1:
		return date + " (tomorrow)"
	default:
		return fmt.Sprintf("%s (in %d days)", date, days)
	}
}

// calendarDays counts midnights between from and to in from's location.
func calendarDays(from, to time.Time) int {
	day := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, from.Location())
	}
	return int(math.Round(day(to).Sub(day(from)).Hours() / 24))
}

// formatTimer renders tracked time, marking a running stopwatch.
func formatTimer(task *domain.Task, now time.Time) string {
	elapsed := domain.FormatDuration(task.Elapsed(now))
	if task.TimeTracking.IsRunning {
		return elapsed + " (running)"
	}
	return elapsed
}

// formatRecurring renders the recurrence rule, or "-" when disabled.
func formatRecurring(r domain.Recurring) string {
	if !r.Enabled {
		return "-"
	}
	rule := string(r.Pattern)
	if r.Interval > 1 {
		rule = fmt.Sprintf("every %d %s", r.Interval, recurUnit(r.Pattern))
	}
	if r.EndDate != nil {
		rule += " until " + r.EndDate.Format("2006-01-02")
	}
	return rule
}

func recurUnit(p domain.RecurPattern) string {
	switch p {
	case domain.RecurWeekly:
		return "weeks"
	case domain.RecurMonthly:
		return "months"
	default:
		return "days"
	}
}
