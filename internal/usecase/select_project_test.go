package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
)

func TestSelectProject_ByTitle(t *testing.T) {
	// Setup
	store, _ := newFixture()
	store.AddProject("Alpha")
	beta := store.AddProject("Beta")
	uc := NewSelectProject(store, store)

	// Execute
	out, err := uc.Execute(context.Background(), SelectProjectInput{Ref: "Beta"})

	// Assert
	require.NoError(t, err)
	assert.Same(t, beta, out.Project)
	assert.Equal(t, beta.ID, store.SelectedID)
}

func TestSelectProject_Clear(t *testing.T) {
	store, _ := newFixture()
	store.SelectedID = store.AddProject("Alpha").ID
	uc := NewSelectProject(store, store)

	out, err := uc.Execute(context.Background(), SelectProjectInput{Clear: true})

	require.NoError(t, err)
	assert.Nil(t, out.Project)
	assert.Empty(t, store.SelectedID)
}

func TestSelectProject_NotFound(t *testing.T) {
	store, _ := newFixture()
	uc := NewSelectProject(store, store)

	_, err := uc.Execute(context.Background(), SelectProjectInput{Ref: "nope"})

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
