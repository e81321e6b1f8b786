package cli

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/testutil"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

// newTestContainer creates an app.Container with mock dependencies.
// A nil completer leaves the assistant offline.
func newTestContainer(store *testutil.MockStore, completer domain.Completer) *app.Container {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	c := app.NewWithDeps(app.Config{}, store, completer, &testutil.MockClock{NowTime: testNow}, logger)
	c.ConfigLoader = &testutil.MockConfigLoader{}
	c.ConfigManager = &testutil.MockConfigManager{}
	return c
}

func newTestStore() *testutil.MockStore {
	return testutil.NewMockStore(&testutil.MockClock{NowTime: testNow})
}

// selectedStore returns a store with one selected project.
func selectedStore() (*testutil.MockStore, *domain.Project) {
	store := newTestStore()
	project := store.AddProject("Home")
	store.SelectedID = project.ID
	return store, project
}

// run executes cmd with args and returns stdout.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
