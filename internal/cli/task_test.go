package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
)

// =============================================================================
// New Command Tests
// =============================================================================

func TestNewCommand_CreateTask(t *testing.T) {
	// Setup
	store, home := selectedStore()
	c := newTestContainer(store, nil)

	// Execute
	out, err := run(t, newNewCommand(c), "Write tests")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Created task")
	assert.Contains(t, out, "in Home: Write tests")
	require.Len(t, store.Tasks, 1)
	task := store.Tasks[0]
	assert.Equal(t, home.ID, task.ProjectID)
	assert.Equal(t, domain.StatusBacklog, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Nil(t, task.Due)
}

func TestNewCommand_AllFlags(t *testing.T) {
	// Setup
	store, _ := selectedStore()
	c := newTestContainer(store, nil)

	// Execute
	_, err := run(t, newNewCommand(c), "Fix login",
		"--desc", "Users cannot log in",
		"--status", "doing",
		"--priority", "high",
		"--due", "2025-03-14",
		"--tag", "bug,auth",
		"--estimate", "45",
	)

	// Assert
	require.NoError(t, err)
	require.Len(t, store.Tasks, 1)
	task := store.Tasks[0]
	assert.Equal(t, "Users cannot log in", task.Desc)
	assert.Equal(t, domain.StatusDoing, task.Status)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	require.NotNil(t, task.Due)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), *task.Due)
	assert.Equal(t, []string{"bug", "auth"}, task.Tags)
	assert.Equal(t, 45, task.EstimateMin)
}

func TestNewCommand_ExplicitProject(t *testing.T) {
	store, _ := selectedStore()
	work := store.AddProject("Work")
	c := newTestContainer(store, nil)

	_, err := run(t, newNewCommand(c), "Standup notes", "--project", "Work")

	require.NoError(t, err)
	require.Len(t, store.Tasks, 1)
	assert.Equal(t, work.ID, store.Tasks[0].ProjectID)
}

func TestNewCommand_NoProjectSelected(t *testing.T) {
	store := newTestStore()
	c := newTestContainer(store, nil)

	_, err := run(t, newNewCommand(c), "Orphan")

	assert.ErrorIs(t, err, domain.ErrNoProjectSelected)
	assert.Empty(t, store.Tasks)
}

func TestNewCommand_InvalidDue(t *testing.T) {
	store, _ := selectedStore()
	c := newTestContainer(store, nil)

	_, err := run(t, newNewCommand(c), "Task", "--due", "next week")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
	assert.Empty(t, store.Tasks)
}

func TestNewCommand_InvalidPriority(t *testing.T) {
	store, _ := selectedStore()
	c := newTestContainer(store, nil)

	_, err := run(t, newNewCommand(c), "Task", "--priority", "urgent")

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

// =============================================================================
// List / Show Command Tests
// =============================================================================

func TestListCommand(t *testing.T) {
	// Setup
	store, home := selectedStore()
	overdue := store.AddTask(home.ID, "Pay rent", domain.StatusBacklog)
	due := testNow.Add(-24 * time.Hour)
	overdue.Due = &due
	overdue.Tags = []string{"bills"}
	store.AddTask(home.ID, "Dishes", domain.StatusDone)
	c := newTestContainer(store, nil)

	// Execute
	out, err := run(t, newListCommand(c))

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "Pay rent")
	assert.Contains(t, out, "2025-03-09!")
	assert.Contains(t, out, "[bills]")
	assert.Contains(t, out, "Dishes")
}

func TestListCommand_StatusFilter(t *testing.T) {
	store, home := selectedStore()
	store.AddTask(home.ID, "Pay rent", domain.StatusBacklog)
	store.AddTask(home.ID, "Dishes", domain.StatusDone)
	c := newTestContainer(store, nil)

	out, err := run(t, newListCommand(c), "--status", "done")

	require.NoError(t, err)
	assert.Contains(t, out, "Dishes")
	assert.NotContains(t, out, "Pay rent")
}

func TestListCommand_AllProjects(t *testing.T) {
	store, home := selectedStore()
	work := store.AddProject("Work")
	store.AddTask(home.ID, "Dishes", domain.StatusBacklog)
	store.AddTask(work.ID, "Standup", domain.StatusBacklog)
	c := newTestContainer(store, nil)

	out, err := run(t, newListCommand(c), "--all")

	require.NoError(t, err)
	assert.Contains(t, out, "Dishes")
	assert.Contains(t, out, "Standup")
}

func TestListCommand_Empty(t *testing.T) {
	store, _ := selectedStore()
	c := newTestContainer(store, nil)

	out, err := run(t, newListCommand(c))

	require.NoError(t, err)
	assert.Equal(t, "No tasks\n", out)
}

func TestShowCommand(t *testing.T) {
	// Setup
	store, home := selectedStore()
	task := store.AddTask(home.ID, "Fix login", domain.StatusDoing)
	task.Desc = "Users cannot log in"
	task.Priority = domain.PriorityHigh
	due := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	task.Due = &due
	task.EstimateMin = 30
	c := newTestContainer(store, nil)

	// Execute
	out, err := run(t, newShowCommand(c), "Fix login")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "# Fix login")
	assert.Contains(t, out, "Project:   Home")
	assert.Contains(t, out, "Due:       2025-03-14 (in 4 days)")
	assert.Contains(t, out, "Estimate:  30 min")
	assert.Contains(t, out, "Tracked:   0m (0 sessions)")
	assert.Contains(t, out, "Recurring: -")
	assert.Contains(t, out, "Users cannot log in")
}

func TestShowCommand_NotFound(t *testing.T) {
	c := newTestContainer(newTestStore(), nil)

	_, err := run(t, newShowCommand(c), "nothing")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

// =============================================================================
// Edit / Rm Command Tests
// =============================================================================

func TestEditCommand(t *testing.T) {
	// Setup
	store, home := selectedStore()
	task := store.AddTask(home.ID, "Dishes", domain.StatusBacklog)
	c := newTestContainer(store, nil)

	// Execute
	out, err := run(t, newEditCommand(c), "Dishes",
		"--title", "Wash dishes",
		"--status", "doing",
		"--priority", "low",
		"--due", "tomorrow",
		"--estimate", "15",
		"--add-tag", "kitchen",
	)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Updated task")
	assert.Equal(t, "Wash dishes", task.Title)
	assert.Equal(t, domain.StatusDoing, task.Status)
	assert.Equal(t, domain.PriorityLow, task.Priority)
	require.NotNil(t, task.Due)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), *task.Due)
	assert.Equal(t, 15, task.EstimateMin)
	assert.Equal(t, []string{"kitchen"}, task.Tags)
}

func TestEditCommand_ClearDue(t *testing.T) {
	store, home := selectedStore()
	task := store.AddTask(home.ID, "Dishes", domain.StatusBacklog)
	due := testNow
	task.Due = &due
	c := newTestContainer(store, nil)

	_, err := run(t, newEditCommand(c), "Dishes", "--clear-due")

	require.NoError(t, err)
	assert.Nil(t, task.Due)
}

func TestEditCommand_NoFlags(t *testing.T) {
	store, home := selectedStore()
	store.AddTask(home.ID, "Dishes", domain.StatusBacklog)
	c := newTestContainer(store, nil)

	_, err := run(t, newEditCommand(c), "Dishes")

	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestEditCommand_DueAndClearDueConflict(t *testing.T) {
	store, home := selectedStore()
	store.AddTask(home.ID, "Dishes", domain.StatusBacklog)
	c := newTestContainer(store, nil)

	_, err := run(t, newEditCommand(c), "Dishes", "--due", "today", "--clear-due")

	assert.Error(t, err)
}

func TestRmCommand(t *testing.T) {
	store, home := selectedStore()
	store.AddTask(home.ID, "Dishes", domain.StatusBacklog)
	c := newTestContainer(store, nil)

	out, err := run(t, newRmCommand(c), "Dishes")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted task")
	assert.Empty(t, store.Tasks)
}
