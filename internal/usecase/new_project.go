package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevencode7/tasks/internal/domain"
)

// NewProjectInput contains the parameters for creating a project.
type NewProjectInput struct {
	Title       string   // Project title (required)
	Description string   // Description (optional)
	Tags        []string // Tags (optional)
	Select      bool     // Make it the current project
}

// NewProjectOutput contains the result of creating a project.
type NewProjectOutput struct {
	Project  *domain.Project
	Selected bool
}

// NewProject is the use case for creating a project.
type NewProject struct {
	projects  domain.ProjectRepository
	selection domain.SelectionWriter
	selector  domain.ProjectSelector
	clock     domain.Clock
	logger    domain.Logger
}

// NewNewProject creates a new NewProject use case.
func NewNewProject(projects domain.ProjectRepository, selector domain.ProjectSelector, selection domain.SelectionWriter, clock domain.Clock, logger domain.Logger) *NewProject {
	return &NewProject{
		projects:  projects,
		selector:  selector,
		selection: selection,
		clock:     clock,
		logger:    logger,
	}
}

// Execute creates the project. The colour rotates through the palette by the
// number of existing projects. The first project is selected automatically.
func (uc *NewProject) Execute(_ context.Context, in NewProjectInput) (*NewProjectOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	existing, err := uc.projects.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	project := domain.NewProject("", title, strings.TrimSpace(in.Description), cleanTags(in.Tags),
		domain.PaletteColor(len(existing)), uc.clock.Now())
	if err := uc.projects.SaveProject(project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	selectIt := in.Select
	if !selectIt {
		current, err := uc.selector.CurrentProject()
		if err != nil {
			return nil, fmt.Errorf("read selection: %w", err)
		}
		selectIt = current == nil
	}
	if selectIt {
		if err := uc.selection.SelectProject(project.ID); err != nil {
			return nil, fmt.Errorf("select project: %w", err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("project", fmt.Sprintf("created: %q", title))
	}

	return &NewProjectOutput{Project: project, Selected: selectIt}, nil
}

// cleanTags trims tags and drops empty and duplicate entries, keeping order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
