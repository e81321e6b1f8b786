package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/testutil"
)

func TestSnapshot_EmptyStore(t *testing.T) {
	got := Snapshot(nil, nil, nil, testNow)

	assert.Contains(t, got, "total projects: 0")
	assert.Contains(t, got, "total tasks: 0")
	assert.Contains(t, got, "overdue tasks: 0")
	assert.Contains(t, got, "[No project selected]")
	assert.NotContains(t, got, "[Current project]")
}

func TestSnapshot_SelectedProject(t *testing.T) {
	store := testutil.NewMockStore(&testutil.MockClock{NowTime: testNow})
	web := store.AddProject("Website")
	other := store.AddProject("Other")
	landing := store.AddTask(web.ID, "Landing page", domain.StatusDoing)
	landing.Desc = "hero and footer"
	landing.EstimateMin = 90
	landing.Priority = domain.PriorityHigh
	store.AddTask(web.ID, "Deploy", domain.StatusDone)
	late := store.AddTask(other.ID, "Late", domain.StatusBacklog)
	yesterday := testNow.AddDate(0, 0, -1)
	late.Due = &yesterday

	got := Snapshot(store.Projects, store.Tasks, web, testNow)

	assert.Contains(t, got, "total projects: 2")
	assert.Contains(t, got, "total tasks: 3")
	assert.Contains(t, got, "completed tasks: 1")
	assert.Contains(t, got, "tasks in progress: 1")
	assert.Contains(t, got, "overdue tasks: 1")
	assert.Contains(t, got, "📌 Title: Website")
	assert.Contains(t, got, "📝 Description: no description")
	assert.Contains(t, got, "📊 Task count: 2")
	assert.Contains(t, got, "1. \"Landing page\"\n   - Status: In Progress\n   - Priority: High 🟠\n   - Estimated time: 90 min\n   - Description: hero and footer\n")
	assert.Contains(t, got, "2. \"Deploy\"\n   - Status: Done\n   - Priority: Medium 🟡\n   - Estimated time: not set\n   - Description: no description\n")
	assert.NotContains(t, got, "Late")
}

func TestSnapshot_Deterministic(t *testing.T) {
	store := testutil.NewMockStore(&testutil.MockClock{NowTime: testNow})
	p := store.AddProject("P")
	for _, title := range []string{"a", "b", "c"} {
		store.AddTask(p.ID, title, domain.StatusBacklog)
	}

	first := Snapshot(store.Projects, store.Tasks, p, testNow)
	second := Snapshot(store.Projects, store.Tasks, p, testNow)

	assert.Equal(t, first, second)
	assert.Less(t, strings.Index(first, `"a"`), strings.Index(first, `"c"`))
}

func TestContextBuilder_Build(t *testing.T) {
	clock := &testutil.MockClock{NowTime: testNow}
	store := testutil.NewMockStore(clock)
	p := store.AddProject("Website")
	store.SelectedID = p.ID

	b := NewContextBuilder(store, store, store, clock)
	snapshot, current, err := b.Build()

	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, p.ID, current.ID)
	assert.Equal(t, Snapshot(store.Projects, store.Tasks, p, testNow), snapshot)
}

func TestContextBuilder_Build_ListError(t *testing.T) {
	clock := &testutil.MockClock{NowTime: testNow}
	store := testutil.NewMockStore(clock)
	store.ListErr = assert.AnError

	_, _, err := NewContextBuilder(store, store, store, clock).Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list projects")
}
