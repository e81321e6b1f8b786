package cli

import (
	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/mcpserver"
)

// newMCPCommand creates the mcp command that serves tools over stdio.
func newMCPCommand(c *app.Container, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the task tools over MCP (stdio)",
		Long: `Run a Model Context Protocol server on standard input and output.

Clients can list projects and tasks, create and update tasks, read
reports and talk to the assistant.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcpserver.New(c, version).ServeStdio()
		},
	}
}
