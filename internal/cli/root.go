// Package cli provides the command-line interface for tasks.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
)

// Command group IDs.
const (
	groupSetup     = "setup"
	groupProject   = "project"
	groupTask      = "task"
	groupAssistant = "assistant"
)

// launchChatFunc launches the chat console, allowing it to be mocked in tests.
var launchChatFunc = launchChat

// NewRootCommand creates the root command for tasks.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasks",
		Short: "Personal task tracker with an AI assistant",
		Long: `tasks keeps projects and their tasks in a local store and lets you
talk to an assistant that can create and update tasks for you.

Run without arguments to open the chat console.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchChatFunc(cmd, c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupProject, Title: "Project Management:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupAssistant, Title: "Assistant:"},
	)

	grouped := func(group string, cmds ...*cobra.Command) {
		for _, cmd := range cmds {
			cmd.GroupID = group
			root.AddCommand(cmd)
		}
	}

	grouped(groupSetup,
		newInitCommand(c),
		newConfigCommand(c),
		newExportCommand(c),
		newImportCommand(c),
		newClearCommand(c),
		newMCPCommand(c, version),
	)
	grouped(groupProject,
		newProjectCommand(c),
	)
	grouped(groupTask,
		newNewCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newEditCommand(c),
		newRmCommand(c),
		newTimerCommand(c),
		newRecurringCommand(c),
		newRemindCommand(c),
	)
	grouped(groupAssistant,
		newAskCommand(c),
		newChatCommand(c),
		newReportCommand(c),
	)

	return root
}
