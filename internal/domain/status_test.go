package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"backlog", StatusBacklog, false},
		{" Doing ", StatusDoing, false},
		{"REVIEW", StatusReview, false},
		{"done", StatusDone, false},
		{"in_progress", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "Backlog", StatusBacklog.Display())
	assert.Equal(t, "In Progress", StatusDoing.Display())
	assert.Equal(t, "In Review", StatusReview.Display())
	assert.Equal(t, "Done", StatusDone.Display())
	assert.Equal(t, "weird", Status("weird").Display())
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("  HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestPriority_Display(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.NotEqual(t, string(p), p.Display(), "known priority %q should have a label", p)
	}
	assert.Equal(t, "urgent", Priority("urgent").Display())
}
