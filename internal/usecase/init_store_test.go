package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/testutil"
)

func TestInitStore_Execute(t *testing.T) {
	// Setup
	store, _ := newFixture()
	logger := &testutil.RecordingLogger{}
	uc := NewInitStore(store, logger)

	// Execute
	first, err := uc.Execute(context.Background(), InitStoreInput{})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), InitStoreInput{})
	require.NoError(t, err)

	// Assert
	assert.True(t, first.Created)
	assert.False(t, second.Created)
	assert.Equal(t, 1, logger.Count("INFO"))
}
