package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the task store",
		Long: `Initialize the task store in the data directory.

The data directory is $TASKS_DATA_DIR, or $XDG_DATA_HOME/tasks
(~/.local/share/tasks). Running init again is harmless.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitStoreInput{})
			if err != nil {
				return err
			}

			if out.Created {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized tasks in %s\n", c.Config.DataDir)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Already initialized in %s\n", c.Config.DataDir)
			}
			return nil
		},
	}
}
