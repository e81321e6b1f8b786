package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
)

func TestRemindCommand(t *testing.T) {
	// Setup
	store, home := selectedStore()
	rent := store.AddTask(home.ID, "Pay rent", domain.StatusBacklog)
	due := testNow.Add(time.Hour)
	rent.Due = &due
	later := store.AddTask(home.ID, "Renew passport", domain.StatusBacklog)
	farOff := testNow.Add(72 * time.Hour)
	later.Due = &farOff
	c := newTestContainer(store, nil)

	// Execute
	out, err := run(t, newRemindCommand(c))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "⏰ Pay rent: due within an hour\n", out)
}

func TestRemindCommand_NothingDue(t *testing.T) {
	store, _ := selectedStore()
	c := newTestContainer(store, nil)

	out, err := run(t, newRemindCommand(c))

	require.NoError(t, err)
	assert.Equal(t, "No reminders\n", out)
}
