package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/usecase"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// newProjectCommand creates the project command with its subcommands.
func newProjectCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Manage projects",
		Long: `Manage projects.

Projects are referenced by full ID, exact title, or an ID prefix of at
least four characters.`,
	}

	cmd.AddCommand(
		newProjectNewCommand(c),
		newProjectListCommand(c),
		newProjectSelectCommand(c),
		newProjectArchiveCommand(c),
		newProjectDeleteCommand(c),
	)

	return cmd
}

func newProjectNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Tags        []string
		Select      bool
	}

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new project",
		Long: `Create a new project.

The first project is selected automatically. Use --select to make any
new project the current one.

Examples:
  tasks project new "Home"
  tasks project new "Website" --desc "Relaunch" --tag web --select`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.NewProjectUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewProjectInput{
				Title:       args[0],
				Description: opts.Description,
				Tags:        opts.Tags,
				Select:      opts.Select,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created project %s: %s\n", shared.ShortID(out.Project.ID), out.Project.Title)
			if out.Selected {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Selected as current project")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "Project description")
	cmd.Flags().StringSliceVarP(&opts.Tags, "tag", "t", nil, "Project tags (repeat or comma-separate)")
	cmd.Flags().BoolVarP(&opts.Select, "select", "s", false, "Make it the current project")

	return cmd
}

func newProjectListCommand(c *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		Long: `List projects with their task counts.

The current project is marked with '*'. Archived projects are hidden
unless --all is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListProjectsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListProjectsInput{IncludeArchived: all})
			if err != nil {
				return err
			}
			if len(out.Projects) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No projects. Create one with: tasks project new <title>")
				return nil
			}
			printProjectList(cmd.OutOrStdout(), out.Projects)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include archived projects")

	return cmd
}

// printProjectList prints projects as an aligned table.
func printProjectList(w io.Writer, projects []usecase.ProjectSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "\tID\tTASKS\tTAGS\tTITLE")
	for _, s := range projects {
		marker := ""
		if s.Current {
			marker = "*"
		}
		title := s.Project.Title
		if s.Project.Archived {
			title += " (archived)"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%s\t%s\n",
			marker,
			shared.ShortID(s.Project.ID),
			s.Done, s.Total,
			formatTags(s.Project.Tags),
			title,
		)
	}
}

func newProjectSelectCommand(c *app.Container) *cobra.Command {
	var clearSelection bool

	cmd := &cobra.Command{
		Use:   "select [project]",
		Short: "Select the current project",
		Long: `Select the project that task commands and the assistant work on.

Use --clear to remove the selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearSelection && len(args) == 0 {
				return errors.New("project reference required (or use --clear)")
			}
			input := usecase.SelectProjectInput{Clear: clearSelection}
			if len(args) > 0 {
				input.Ref = args[0]
			}

			uc := c.SelectProjectUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if out.Project == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Selection cleared")
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Selected project %s: %s\n", shared.ShortID(out.Project.ID), out.Project.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearSelection, "clear", false, "Clear the current selection")

	return cmd
}

func newProjectArchiveCommand(c *app.Container) *cobra.Command {
	var restore bool

	cmd := &cobra.Command{
		Use:   "archive <project>",
		Short: "Archive or restore a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ArchiveProjectUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ArchiveProjectInput{
				Ref:     args[0],
				Restore: restore,
			})
			if err != nil {
				return err
			}

			verb := "Archived"
			if restore {
				verb = "Restored"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s project %s: %s\n", verb, shared.ShortID(out.Project.ID), out.Project.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&restore, "restore", false, "Unarchive the project")

	return cmd
}

func newProjectDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <project>",
		Aliases: []string{"rm"},
		Short:   "Delete a project and all of its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.DeleteProjectUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteProjectInput{Ref: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s: %s (%d %s)\n",
				shared.ShortID(out.Project.ID), out.Project.Title,
				out.DeletedTasks, plural(out.DeletedTasks, "task", "tasks"))
			return nil
		},
	}
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return "[" + strings.Join(tags, ",") + "]"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
