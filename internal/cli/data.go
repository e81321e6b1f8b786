package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all projects and tasks",
		Long: `Export every project and task as a backup document.

Without a file the backup is written to standard output.

Examples:
  tasks export backup.json
  tasks export --format yaml > backup.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ExportDataUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportDataInput{Format: format})
			if err != nil {
				return err
			}

			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(out.Data)
				return err
			}
			if err := os.WriteFile(args[0], out.Data, 0o644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d projects and %d tasks to %s\n", out.Projects, out.Tasks, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml)")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Yes    bool
	}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a backup",
		Long: `Replace every project and task with the contents of a backup.

The format is detected from the content unless --format is given.
Use '-' to read from standard input. Tasks whose project is missing
from the backup are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Yes {
				return errors.New("import replaces all existing data; re-run with --yes to confirm")
			}

			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			uc := c.ImportDataUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportDataInput{
				Format: opts.Format,
				Data:   data,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d projects and %d tasks\n", out.Projects, out.Tasks)
			if out.DroppedOrphans > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Dropped %d %s without a project\n",
					out.DroppedOrphans, plural(out.DroppedOrphans, "task", "tasks"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Input format (json, yaml; default: detect)")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Confirm replacing existing data")

	return cmd
}

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all projects and tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("clear deletes all data; re-run with --yes to confirm")
			}

			out, err := c.ClearDataUseCase().Execute(cmd.Context(), usecase.ClearDataInput{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d projects and %d tasks\n", out.Projects, out.Tasks)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting all data")

	return cmd
}
