package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/testutil"
)

func TestGetTask_Success(t *testing.T) {
	store := testutil.NewMockStore(nil)
	task := store.AddTask("project-1", "Write docs", domain.StatusBacklog)

	got, err := GetTask(store, task.ID)

	require.NoError(t, err)
	assert.Same(t, task, got)
}

func TestGetTask_NotFound(t *testing.T) {
	store := testutil.NewMockStore(nil)

	_, err := GetTask(store, "missing")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestGetTask_RepositoryError(t *testing.T) {
	store := testutil.NewMockStore(nil)
	store.ListErr = errors.New("disk error")

	_, err := GetTask(store, "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get task")
	assert.NotErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestResolveTask(t *testing.T) {
	store := testutil.NewMockStore(nil)
	first := store.AddTask("p", "Write docs", domain.StatusBacklog)
	first.ID = "a1b2c3d4-0000"
	second := store.AddTask("p", "Ship", domain.StatusBacklog)
	second.ID = "a1b2ffff-0000"

	tests := []struct {
		wantErr error
		want    *domain.Task
		name    string
		ref     string
	}{
		{name: "full id", ref: "a1b2c3d4-0000", want: first},
		{name: "exact title", ref: "  Ship ", want: second},
		{name: "unique prefix", ref: "a1b2c", want: first},
		{name: "ambiguous prefix", ref: "a1b2", wantErr: domain.ErrAmbiguousReference},
		{name: "short prefix", ref: "a1b", wantErr: domain.ErrTaskNotFound},
		{name: "title is case sensitive", ref: "ship", wantErr: domain.ErrTaskNotFound},
		{name: "empty", ref: "", wantErr: domain.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTask(store, tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestProjectOrCurrent(t *testing.T) {
	store := testutil.NewMockStore(nil)
	alpha := store.AddProject("Alpha")
	beta := store.AddProject("Beta")

	_, err := ProjectOrCurrent(store, store, "")
	assert.ErrorIs(t, err, domain.ErrNoProjectSelected)

	store.SelectedID = alpha.ID
	got, err := ProjectOrCurrent(store, store, "")
	require.NoError(t, err)
	assert.Same(t, alpha, got)

	got, err = ProjectOrCurrent(store, store, "Beta")
	require.NoError(t, err)
	assert.Same(t, beta, got)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "a1b2c3d4", ShortID("a1b2c3d4-e5f6"))
	assert.Equal(t, "abc", ShortID("abc"))
}
