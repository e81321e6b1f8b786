package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// newTimerCommand creates the timer command with start, stop and reset.
func newTimerCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Track time spent on a task",
		Long: `Track time spent on a task with a stopwatch.

Stopping the timer records a work session and adds it to the task's
total. Reset discards every recorded session.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start <task>",
			Short: "Start the stopwatch",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := c.StartTimerUseCase().Execute(cmd.Context(), usecase.TimerInput{Ref: args[0]})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Timer started for %s: %s\n", shared.ShortID(out.Task.ID), out.Task.Title)
				return nil
			},
		},
		&cobra.Command{
			Use:   "stop <task>",
			Short: "Stop the stopwatch and record the session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := c.StopTimerUseCase().Execute(cmd.Context(), usecase.TimerInput{Ref: args[0]})
				if err != nil {
					return err
				}
				var session int64
				if out.Session != nil {
					session = out.Session.Duration
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Timer stopped for %s: +%s (total %s)\n",
					shared.ShortID(out.Task.ID),
					domain.FormatDuration(session),
					domain.FormatDuration(out.Task.TimeTracking.TotalTime))
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset <task>",
			Short: "Discard all tracked time",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := c.ResetTimerUseCase().Execute(cmd.Context(), usecase.TimerInput{Ref: args[0]})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Timer reset for %s: %s\n", shared.ShortID(out.Task.ID), out.Task.Title)
				return nil
			},
		},
	)

	return cmd
}
