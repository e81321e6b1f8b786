package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-03-14", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"2025-03-14 17:30", time.Date(2025, 3, 14, 17, 30, 0, 0, time.UTC)},
		{"2025-03-14T17:30", time.Date(2025, 3, 14, 17, 30, 0, 0, time.UTC)},
		{"2025-03-14T17:30:00Z", time.Date(2025, 3, 14, 17, 30, 0, 0, time.UTC)},
		{"today", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{" Tomorrow ", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDate(tt.input, testNow)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "14/03/2025", "next week"} {
		_, err := parseDate(input, testNow)
		assert.Error(t, err, input)
	}
}

func TestFormatDue(t *testing.T) {
	at := func(d time.Time) *time.Time { return &d }

	tests := []struct {
		name string
		due  *time.Time
		want string
	}{
		{"none", nil, "-"},
		{"overdue", at(testNow.Add(-time.Hour)), "2025-03-10 (overdue)"},
		{"today", at(testNow.Add(time.Hour)), "2025-03-10 (today)"},
		{"tomorrow", at(testNow.Add(20 * time.Hour)), "2025-03-11 (tomorrow)"},
		{"later", at(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)), "2025-03-14 (in 4 days)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDue(tt.due, testNow))
		})
	}
}

func TestFormatRecurring(t *testing.T) {
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "-", formatRecurring(domain.Recurring{Pattern: domain.RecurDaily, Interval: 1}))
	assert.Equal(t, "daily", formatRecurring(domain.Recurring{Enabled: true, Pattern: domain.RecurDaily, Interval: 1}))
	assert.Equal(t, "every 3 months until 2025-12-31",
		formatRecurring(domain.Recurring{Enabled: true, Pattern: domain.RecurMonthly, Interval: 3, EndDate: &end}))
}

func TestFormatTimer(t *testing.T) {
	task := domain.NewTask("t1", "p1", "Write", "", domain.StatusDoing, testNow)
	task.TimeTracking.TotalTime = 600
	assert.Equal(t, "10m", formatTimer(task, testNow))

	require.NoError(t, task.StartTimer(testNow))
	assert.Equal(t, "1h 10m (running)", formatTimer(task, testNow.Add(time.Hour)))
}
