package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
)

func TestRecurringSet(t *testing.T) {
	// Setup
	store, home := selectedStore()
	task := store.AddTask(home.ID, "Water plants", domain.StatusBacklog)
	c := newTestContainer(store, nil)

	// Execute
	out, err := run(t, newRecurringCommand(c), "set", "Water plants",
		"--pattern", "weekly", "--every", "2", "--until", "2025-12-31")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "recurs every 2 weeks until 2025-12-31")
	assert.True(t, task.Recurring.Enabled)
	assert.Equal(t, domain.RecurWeekly, task.Recurring.Pattern)
	assert.Equal(t, 2, task.Recurring.Interval)
}

func TestRecurringSet_Off(t *testing.T) {
	store, home := selectedStore()
	task := store.AddTask(home.ID, "Water plants", domain.StatusBacklog)
	task.Recurring.Enabled = true
	c := newTestContainer(store, nil)

	out, err := run(t, newRecurringCommand(c), "set", "Water plants", "--off")

	require.NoError(t, err)
	assert.Contains(t, out, "Recurrence disabled")
	assert.False(t, task.Recurring.Enabled)
}

func TestRecurringSet_InvalidPattern(t *testing.T) {
	store, home := selectedStore()
	store.AddTask(home.ID, "Water plants", domain.StatusBacklog)
	c := newTestContainer(store, nil)

	_, err := run(t, newRecurringCommand(c), "set", "Water plants", "--pattern", "yearly")

	assert.ErrorIs(t, err, domain.ErrInvalidRecurrence)
}

func TestRecurringCheck(t *testing.T) {
	// Setup
	store, home := selectedStore()
	task := store.AddTask(home.ID, "Water plants", domain.StatusDone)
	last := testNow.Add(-48 * time.Hour)
	task.Recurring = domain.Recurring{Enabled: true, Pattern: domain.RecurDaily, Interval: 1, LastCreated: &last}
	c := newTestContainer(store, nil)

	// Execute
	out, err := run(t, newRecurringCommand(c), "check")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Water plants (recurring)")
	assert.Len(t, store.Tasks, 2)
}

func TestRecurringCheck_NothingDue(t *testing.T) {
	store, home := selectedStore()
	store.AddTask(home.ID, "Water plants", domain.StatusDone)
	c := newTestContainer(store, nil)

	out, err := run(t, newRecurringCommand(c), "check")

	require.NoError(t, err)
	assert.Equal(t, "No recurring tasks due\n", out)
}
