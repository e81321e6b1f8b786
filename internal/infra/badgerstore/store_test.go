package badgerstore

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/testutil"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenInMemory(&testutil.MockClock{NowTime: testNow})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	_, err = store.Initialize()
	require.NoError(t, err)
	return store
}

func TestStore_Initialize(t *testing.T) {
	store, err := OpenInMemory(nil)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.ListTasks()
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	created, err := store.Initialize()
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.Initialize()
	require.NoError(t, err)
	assert.False(t, created)

	tasks, err := store.ListTasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStore_Open_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	clock := &testutil.MockClock{NowTime: testNow}

	store, err := Open(dir, clock)
	require.NoError(t, err)
	_, err = store.Initialize()
	require.NoError(t, err)
	require.NoError(t, store.SaveProject(domain.NewProject("p1", "Website", "", nil, "#7C3AED", testNow)))
	_, err = store.CreateTask("p1", "Hero", "", domain.StatusBacklog)
	require.NoError(t, err)
	require.NoError(t, store.SelectProject("p1"))
	require.NoError(t, store.Close())

	reopened, err := Open(dir, clock)
	require.NoError(t, err)
	defer reopened.Close()

	current, err := reopened.CurrentProject()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Website", current.Title)
	tasks, err := reopened.ListTasksForProject("p1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Hero", tasks[0].Title)
}

func TestStore_TaskLifecycle(t *testing.T) {
	store := newTestStore(t)

	task, err := store.CreateTask("p1", "Buy milk", "from store", domain.StatusBacklog)
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)

	task.Priority = domain.PriorityHigh
	task.AddTag("errand")
	require.NoError(t, store.SaveTask(task))

	found, err := store.FindTaskByExactTitle(" Buy milk ")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, task.ID, found.ID)
	assert.Equal(t, domain.PriorityHigh, found.Priority)
	assert.Equal(t, []string{"errand"}, found.Tags)

	require.NoError(t, store.DeleteTask(task.ID))
	got, err := store.GetTask(task.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistTasks_ReplacesCollection(t *testing.T) {
	store := newTestStore(t)
	_, err := store.CreateTask("p1", "old", "", domain.StatusBacklog)
	require.NoError(t, err)
	replacement := []*domain.Task{
		domain.NewTask("a", "p1", "A", "", domain.StatusBacklog, testNow),
		domain.NewTask("b", "p1", "B", "", domain.StatusDone, testNow),
	}

	require.NoError(t, store.PersistTasks(replacement))
	require.NoError(t, store.PersistTasks(replacement))

	got, err := store.ListTasks()
	require.NoError(t, err)
	want := []domain.Task{*replacement[0], *replacement[1]}
	gotValues := []domain.Task{*got[0], *got[1]}
	require.Len(t, got, 2)
	assert.Empty(t, cmp.Diff(want, gotValues))
}

func TestStore_DeleteProject_Cascades(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.PersistProjects([]*domain.Project{
		domain.NewProject("keep", "Keep", "", nil, "#7C3AED", testNow),
		domain.NewProject("drop", "Drop", "", nil, "#06B6D4", testNow),
	}))
	_, err := store.CreateTask("keep", "stays", "", domain.StatusBacklog)
	require.NoError(t, err)
	_, err = store.CreateTask("drop", "goes", "", domain.StatusBacklog)
	require.NoError(t, err)
	require.NoError(t, store.SelectProject("drop"))

	require.NoError(t, store.DeleteProject("drop"))

	projects, err := store.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "keep", projects[0].ID)
	tasks, err := store.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "stays", tasks[0].Title)
	current, err := store.CurrentProject()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestStore_SelectProject_Unknown(t *testing.T) {
	store := newTestStore(t)

	assert.ErrorIs(t, store.SelectProject("missing"), domain.ErrProjectNotFound)
}
