package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_DueReminders(t *testing.T) {
	tests := []struct {
		name   string
		due    time.Duration // relative to testNow
		status Status
		want   []string
	}{
		{name: "one day out", due: 24 * time.Hour, status: StatusBacklog, want: []string{"due tomorrow"}},
		{name: "just inside window", due: 24*time.Hour + 5*time.Minute, status: StatusBacklog, want: []string{"due tomorrow"}},
		{name: "window edge excluded", due: 24*time.Hour + 6*time.Minute, status: StatusBacklog},
		{name: "one hour out", due: 58 * time.Minute, status: StatusDoing, want: []string{"due within an hour"}},
		{name: "due now", due: -3 * time.Minute, status: StatusBacklog, want: []string{"due now"}},
		{name: "between thresholds", due: 5 * time.Hour, status: StatusBacklog},
		{name: "done task", due: time.Hour, status: StatusDone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask("t1", "p1", "Rent", "", tt.status, testNow)
			due := testNow.Add(tt.due)
			task.Due = &due

			var labels []string
			for _, th := range task.DueReminders(testNow) {
				labels = append(labels, th.Label)
			}

			assert.Equal(t, tt.want, labels)
		})
	}
}

func TestTask_DueReminders_NoDueDate(t *testing.T) {
	task := NewTask("t1", "p1", "Rent", "", StatusBacklog, testNow)

	require.Nil(t, task.Due)
	assert.Empty(t, task.DueReminders(testNow))
}
