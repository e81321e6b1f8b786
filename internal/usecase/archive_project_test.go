package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveProject_Execute(t *testing.T) {
	// Setup
	store, clock := newFixture()
	project := store.AddProject("Alpha")
	clock.NowTime = testNow.Add(time.Hour)
	uc := NewArchiveProject(store, clock)

	// Execute
	out, err := uc.Execute(context.Background(), ArchiveProjectInput{Ref: "Alpha"})
	require.NoError(t, err)

	// Assert
	assert.True(t, out.Project.Archived)
	assert.True(t, project.Archived)
	assert.Equal(t, clock.NowTime, project.UpdatedAt)

	out, err = uc.Execute(context.Background(), ArchiveProjectInput{Ref: "Alpha", Restore: true})
	require.NoError(t, err)
	assert.False(t, out.Project.Archived)
}
