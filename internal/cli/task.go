package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Project     string
		Description string
		Status      string
		Priority    string
		Due         string
		Tags        []string
		Estimate    int
	}

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new task",
		Long: `Create a new task in the current project.

The task starts in backlog with medium priority unless --status or
--priority says otherwise.

Examples:
  tasks new "Write tests"
  tasks new "Fix login" --priority high --due 2025-03-14 --tag bug
  tasks new "Plan sprint" --project Website --estimate 45`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.NewTaskInput{
				ProjectRef:  opts.Project,
				Title:       args[0],
				Description: opts.Description,
				Status:      opts.Status,
				Priority:    opts.Priority,
				Tags:        opts.Tags,
				EstimateMin: opts.Estimate,
			}
			if opts.Due != "" {
				due, err := parseDate(opts.Due, c.Clock.Now())
				if err != nil {
					return err
				}
				input.Due = &due
			}

			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s in %s: %s\n",
				shared.ShortID(out.Task.ID), out.Project.Title, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "Project (default: current project)")
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "Task description")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Initial status (backlog, doing, review, done)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority (low, medium, high, critical)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringSliceVarP(&opts.Tags, "tag", "t", nil, "Tags (repeat or comma-separate)")
	cmd.Flags().IntVarP(&opts.Estimate, "estimate", "e", 0, "Estimate in minutes")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Project  string
		Status   string
		Priority string
		Tag      string
		All      bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display the tasks of the current project.

Output columns: ID, STATUS, PRIORITY, DUE, TIME, TAGS, TITLE

Examples:
  tasks list
  tasks list --status doing
  tasks list --all --tag bug`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				ProjectRef:  opts.Project,
				Status:      opts.Status,
				Priority:    opts.Priority,
				Tag:         opts.Tag,
				AllProjects: opts.All,
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
				return nil
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks, c.Clock.Now())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "Project (default: current project)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Filter by priority")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Filter by tag")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "List tasks of every project")

	return cmd
}

// printTaskList prints tasks as an aligned table.
func printTaskList(w io.Writer, tasks []*domain.Task, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDUE\tTIME\tTAGS\tTITLE")
	for _, task := range tasks {
		due := "-"
		if task.Due != nil {
			due = task.Due.In(now.Location()).Format("2006-01-02")
			if task.IsOverdue(now) && !task.Status.IsDone() {
				due += "!"
			}
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			shared.ShortID(task.ID),
			task.Status,
			task.Priority,
			due,
			formatTimer(task, now),
			formatTags(task.Tags),
			task.Title,
		)
	}
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task>",
		Short: "Show task details",
		Long: `Show the details of a task.

Tasks are referenced by full ID, exact title, or an ID prefix of at
least four characters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{Ref: args[0]})
			if err != nil {
				return err
			}
			printTaskDetail(cmd.OutOrStdout(), out, c.Clock.Now())
			return nil
		},
	}
}

// printTaskDetail prints every field of a task.
func printTaskDetail(w io.Writer, out *usecase.ShowTaskOutput, now time.Time) {
	task := out.Task
	project := "-"
	if out.Project != nil {
		project = out.Project.Title
	}

	_, _ = fmt.Fprintf(w, "# %s\n\n", task.Title)
	_, _ = fmt.Fprintf(w, "ID:        %s\n", task.ID)
	_, _ = fmt.Fprintf(w, "Project:   %s\n", project)
	_, _ = fmt.Fprintf(w, "Status:    %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority:  %s\n", task.Priority.Display())
	_, _ = fmt.Fprintf(w, "Tags:      %s\n", formatTags(task.Tags))
	_, _ = fmt.Fprintf(w, "Due:       %s\n", formatDue(task.Due, now))
	_, _ = fmt.Fprintf(w, "Estimate:  %s\n", task.EstimateLabel())
	_, _ = fmt.Fprintf(w, "Tracked:   %s (%d %s)\n", formatTimer(task, now),
		len(task.TimeTracking.Sessions), plural(len(task.TimeTracking.Sessions), "session", "sessions"))
	_, _ = fmt.Fprintf(w, "Recurring: %s\n", formatRecurring(task.Recurring))
	_, _ = fmt.Fprintf(w, "Created:   %s\n", task.CreatedAt.In(now.Location()).Format("2006-01-02 15:04"))
	_, _ = fmt.Fprintf(w, "Updated:   %s\n", task.UpdatedAt.In(now.Location()).Format("2006-01-02 15:04"))

	if task.Desc != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", task.Desc)
	}
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Status      string
		Priority    string
		Due         string
		AddTags     []string
		RemoveTags  []string
		Estimate    int
		ClearDue    bool
	}

	cmd := &cobra.Command{
		Use:   "edit <task>",
		Short: "Edit a task",
		Long: `Edit fields of a task. Only the flags given are changed.

Examples:
  tasks edit 3f2a --status doing
  tasks edit "Fix login" --priority critical --add-tag urgent
  tasks edit 3f2a --clear-due`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			input := usecase.EditTaskInput{
				Ref:        args[0],
				AddTags:    opts.AddTags,
				RemoveTags: opts.RemoveTags,
				ClearDue:   opts.ClearDue,
			}
			if flags.Changed("title") {
				input.Title = &opts.Title
			}
			if flags.Changed("desc") {
				input.Description = &opts.Description
			}
			if flags.Changed("status") {
				input.Status = &opts.Status
			}
			if flags.Changed("priority") {
				input.Priority = &opts.Priority
			}
			if flags.Changed("estimate") {
				input.EstimateMin = &opts.Estimate
			}
			if flags.Changed("due") {
				due, err := parseDate(opts.Due, c.Clock.Now())
				if err != nil {
					return err
				}
				input.Due = &due
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", shared.ShortID(out.Task.ID), out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status (backlog, doing, review, done)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority (low, medium, high, critical)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().BoolVar(&opts.ClearDue, "clear-due", false, "Remove the due date")
	cmd.Flags().IntVarP(&opts.Estimate, "estimate", "e", 0, "New estimate in minutes")
	cmd.Flags().StringSliceVar(&opts.AddTags, "add-tag", nil, "Tags to add")
	cmd.Flags().StringSliceVar(&opts.RemoveTags, "rm-tag", nil, "Tags to remove")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")

	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{Ref: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s: %s\n", shared.ShortID(out.Task.ID), out.Task.Title)
			return nil
		},
	}
}
