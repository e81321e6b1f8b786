package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/app"
)

func TestNewRootCommand_NoArgs_LaunchesChat(t *testing.T) {
	// Save original function and restore after test
	originalFunc := launchChatFunc
	defer func() {
		launchChatFunc = originalFunc
	}()

	called := false
	launchChatFunc = func(_ *cobra.Command, _ *app.Container) error {
		called = true
		return nil
	}

	// Create root command with nil container (not used in this test)
	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchChatFunc should be called when no arguments are provided")
}

func TestNewRootCommand_ChatSubcommand(t *testing.T) {
	originalFunc := launchChatFunc
	defer func() {
		launchChatFunc = originalFunc
	}()

	var got *app.Container
	launchChatFunc = func(_ *cobra.Command, c *app.Container) error {
		got = c
		return nil
	}

	c := newTestContainer(newTestStore(), nil)
	root := NewRootCommand(c, "test-version")
	root.SetArgs([]string{"chat"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.Same(t, c, got)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchChatFunc
	defer func() {
		launchChatFunc = originalFunc
	}()

	called := false
	launchChatFunc = func(_ *cobra.Command, _ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchChatFunc should not be called with --help")
	for _, group := range []string{"Setup Commands:", "Project Management:", "Task Management:", "Assistant:"} {
		assert.Contains(t, buf.String(), group)
	}
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	// Setup
	c := newTestContainer(newTestStore(), nil)
	c.AppConfig.Warnings = []string{"unknown key: top"}
	root := NewRootCommand(c, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"project", "list"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Warning: unknown key: top")
	assert.NotContains(t, out.String(), "Warning")
}

func TestNewRootCommand_RegistersCommands(t *testing.T) {
	root := NewRootCommand(nil, "test")

	for _, name := range []string{
		"init", "config", "export", "import", "clear", "mcp",
		"project", "new", "list", "show", "edit", "rm", "timer", "recurring", "remind",
		"ask", "chat", "report",
	} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
