package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/usecase"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// newRecurringCommand creates the recurring command.
func newRecurringCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring tasks",
		Long: `Manage recurring tasks.

When a recurring task is done and its next due date has arrived, a copy
is created in backlog. The chat console checks every minute; use
'tasks recurring check' to run the check once.`,
	}

	cmd.AddCommand(newRecurringSetCommand(c), newRecurringCheckCommand(c))

	return cmd
}

func newRecurringSetCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Pattern  string
		Until    string
		Interval int
		Off      bool
	}

	cmd := &cobra.Command{
		Use:   "set <task>",
		Short: "Configure or disable recurrence",
		Long: `Configure how a task recurs.

Examples:
  tasks recurring set "Water plants" --every 3 --pattern daily
  tasks recurring set 3f2a --pattern weekly --until 2025-12-31
  tasks recurring set 3f2a --off`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.SetRecurringInput{
				Ref:      args[0],
				Pattern:  opts.Pattern,
				Interval: opts.Interval,
				Disable:  opts.Off,
			}
			if opts.Until != "" {
				until, err := parseDate(opts.Until, c.Clock.Now())
				if err != nil {
					return err
				}
				input.EndDate = &until
			}

			out, err := c.SetRecurringUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if opts.Off {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recurrence disabled for %s: %s\n", shared.ShortID(out.Task.ID), out.Task.Title)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s recurs %s\n", shared.ShortID(out.Task.ID), formatRecurring(out.Task.Recurring))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Pattern, "pattern", "daily", "Pattern (daily, weekly, monthly)")
	cmd.Flags().IntVar(&opts.Interval, "every", 1, "Interval in pattern units")
	cmd.Flags().StringVar(&opts.Until, "until", "", "Last day of recurrence (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.Off, "off", false, "Disable recurrence")

	return cmd
}

func newRecurringCheckCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Create due occurrences of recurring tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.CheckRecurringUseCase().Execute(cmd.Context(), usecase.CheckRecurringInput{})
			if err != nil {
				return err
			}

			if len(out.Created) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No recurring tasks due")
				return nil
			}
			for _, task := range out.Created {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %s\n", shared.ShortID(task.ID), task.Title)
			}
			return nil
		},
	}
}
