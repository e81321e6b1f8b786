package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/tui"
	"github.com/sevencode7/tasks/internal/usecase"
)

// newAskCommand creates the ask command for one-shot questions.
func newAskCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>...",
		Short: "Ask the assistant once",
		Long: `Send one message to the assistant and print its reply.

Task commands in the reply (create, update, tag) are applied to the
current project. Use '-' to read the message from standard input.

Examples:
  tasks ask "break down the website launch into tasks"
  echo "what should I do first?" | tasks ask -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			if message == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read message: %w", err)
				}
				message = string(data)
			}
			message = strings.TrimSpace(message)
			if message == "" {
				return domain.ErrEmptyMessage
			}

			reply := c.Assistant().Send(cmd.Context(), message)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Text)

			for _, note := range reply.Notes() {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Note: %s\n", note)
			}
			return nil
		},
	}
}

// newChatCommand creates the chat command.
func newChatCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the chat console",
		Long: `Open the interactive chat console.

The console talks to the assistant about the current project. Every
minute it checks recurring tasks and warns about tasks due in 24 hours,
in 1 hour or now. Running tasks without a command does the
same.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchChatFunc(cmd, c)
		},
	}
}

// launchChat opens the chat console, initializing the store on first use.
func launchChat(cmd *cobra.Command, c *app.Container) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := c.InitStoreUseCase().Execute(ctx, usecase.InitStoreInput{}); err != nil {
		return err
	}

	reminders := c.CheckRemindersUseCase()
	return tui.Run(ctx, tui.Config{
		Assistant:      c.Assistant(),
		CurrentProject: c.Store.CurrentProject,
		CheckRecurring: func(ctx context.Context) (int, error) {
			out, err := c.CheckRecurringUseCase().Execute(ctx, usecase.CheckRecurringInput{})
			if err != nil {
				return 0, err
			}
			return len(out.Created), nil
		},
		CheckReminders: func(ctx context.Context) ([]string, error) {
			out, err := reminders.Execute(ctx, usecase.CheckRemindersInput{})
			if err != nil {
				return nil, err
			}
			lines := make([]string, 0, len(out.Reminders))
			for _, r := range out.Reminders {
				lines = append(lines, r.String())
			}
			return lines, nil
		},
		Now:       c.Clock.Now,
		ModelName: c.AppConfig.Assistant.Model,
		Offline:   c.Completer == nil,
	})
}

// newReportCommand creates the report command.
func newReportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "report [summary|priorities|progress]",
		Short: "Print a report for the current project",
		Long: `Print a report for the current project without calling the assistant.

  summary     Daily summary (default)
  priorities  Open tasks grouped by priority
  progress    Completion percentage, overdue and due soon counts`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{usecase.ReportSummary, usecase.ReportPriorities, usecase.ReportProgress},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := usecase.ReportSummary
			if len(args) > 0 {
				kind = args[0]
			}

			out, err := c.ReportUseCase().Execute(cmd.Context(), usecase.ReportInput{Kind: kind})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}
}
