package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/usecase"
)

// newRemindCommand creates the remind command.
func newRemindCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Show tasks due in 24 hours, in 1 hour or now",
		Long: `Show due-date reminders.

A task is reported when its due time is within 6 minutes of one of the
reminder points: 24 hours before, 1 hour before, or the due time itself.
Done tasks are skipped. The chat console runs the same check every minute.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.CheckRemindersUseCase().Execute(cmd.Context(), usecase.CheckRemindersInput{})
			if err != nil {
				return err
			}

			if len(out.Reminders) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No reminders")
				return nil
			}
			for _, r := range out.Reminders {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), r.String())
			}
			return nil
		},
	}
}
