package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sevencode7/tasks/internal/domain"
)

// ExportDataInput contains the parameters for exporting the store.
type ExportDataInput struct {
	Format string // json (default) or yaml
}

// ExportDataOutput contains the encoded backup.
type ExportDataOutput struct {
	Data     []byte
	Format   string
	Projects int
	Tasks    int
}

// ExportData is the use case for writing a backup document.
type ExportData struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	clock    domain.Clock
}

// NewExportData creates a new ExportData use case.
func NewExportData(projects domain.ProjectRepository, tasks domain.TaskRepository, clock domain.Clock) *ExportData {
	return &ExportData{projects: projects, tasks: tasks, clock: clock}
}

// Execute encodes every project and task with the export time.
func (uc *ExportData) Execute(_ context.Context, in ExportDataInput) (*ExportDataOutput, error) {
	format := domain.FormatJSON
	if in.Format != "" {
		f, err := domain.ParseFormat(in.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	projects, err := uc.projects.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	backup := domain.Backup{
		Projects:  projects,
		Tasks:     tasks,
		Timestamp: uc.clock.Now().UTC(),
	}
	backup.Normalize()

	var data []byte
	switch format {
	case domain.FormatYAML:
		data, err = yaml.Marshal(&backup)
	default:
		data, err = json.MarshalIndent(&backup, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	return &ExportDataOutput{
		Data:     data,
		Format:   format,
		Projects: len(backup.Projects),
		Tasks:    len(backup.Tasks),
	}, nil
}
