package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sevencode7/tasks/internal/domain"
)

// ImportDataInput contains the backup to import.
type ImportDataInput struct {
	Format string // json, yaml, or empty to detect
	Data   []byte
}

// ImportDataOutput reports what was imported.
type ImportDataOutput struct {
	Projects       int
	Tasks          int
	DroppedOrphans int // Tasks whose project is not in the backup
}

// ImportData is the use case for replacing the store with a backup.
type ImportData struct {
	projects  domain.ProjectRepository
	tasks     domain.TaskRepository
	selector  domain.ProjectSelector
	selection domain.SelectionWriter
	logger    domain.Logger
}

// NewImportData creates a new ImportData use case.
func NewImportData(projects domain.ProjectRepository, tasks domain.TaskRepository, selector domain.ProjectSelector, selection domain.SelectionWriter, logger domain.Logger) *ImportData {
	return &ImportData{
		projects:  projects,
		tasks:     tasks,
		selector:  selector,
		selection: selection,
		logger:    logger,
	}
}

// Execute decodes the backup and replaces all projects and tasks.
func (uc *ImportData) Execute(_ context.Context, in ImportDataInput) (*ImportDataOutput, error) {
	format := detectFormat(in.Data)
	if in.Format != "" {
		f, err := domain.ParseFormat(in.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	var backup domain.Backup
	var err error
	switch format {
	case domain.FormatYAML:
		err = yaml.Unmarshal(in.Data, &backup)
	default:
		err = json.Unmarshal(in.Data, &backup)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	backup.Normalize()

	known := make(map[string]bool, len(backup.Projects))
	for _, p := range backup.Projects {
		known[p.ID] = true
	}
	tasks := make([]*domain.Task, 0, len(backup.Tasks))
	for _, t := range backup.Tasks {
		if known[t.ProjectID] {
			tasks = append(tasks, t)
		}
	}

	if err := uc.projects.PersistProjects(backup.Projects); err != nil {
		return nil, fmt.Errorf("persist projects: %w", err)
	}
	if err := uc.tasks.PersistTasks(tasks); err != nil {
		return nil, fmt.Errorf("persist tasks: %w", err)
	}

	current, err := uc.selector.CurrentProject()
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	if current == nil {
		if err := uc.selection.SelectProject(""); err != nil {
			return nil, fmt.Errorf("clear selection: %w", err)
		}
	}

	out := &ImportDataOutput{
		Projects:       len(backup.Projects),
		Tasks:          len(tasks),
		DroppedOrphans: len(backup.Tasks) - len(tasks),
	}
	if uc.logger != nil {
		uc.logger.Info("import", fmt.Sprintf("imported %d projects, %d tasks (%d orphans dropped)",
			out.Projects, out.Tasks, out.DroppedOrphans))
	}
	return out, nil
}

// detectFormat treats documents starting with '{' as JSON and anything else as YAML.
func detectFormat(data []byte) string {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return domain.FormatJSON
	}
	return domain.FormatYAML
}
