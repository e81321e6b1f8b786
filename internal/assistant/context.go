package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/sevencode7/tasks/internal/domain"
)

const noDescription = "no description"

// Snapshot renders the application state the model sees before each message.
// The output depends only on its arguments. The task enumeration is not truncated.
func Snapshot(projects []*domain.Project, tasks []*domain.Task, current *domain.Project, now time.Time) string {
	var b strings.Builder

	b.WriteString("[Current application context]\n")
	b.WriteString("📊 Overall statistics:\n")
	fmt.Fprintf(&b, "• total projects: %d\n", len(projects))
	fmt.Fprintf(&b, "• total tasks: %d\n", len(tasks))
	fmt.Fprintf(&b, "• completed tasks: %d\n", domain.CountStatus(tasks, domain.StatusDone))
	fmt.Fprintf(&b, "• tasks in progress: %d\n", domain.CountStatus(tasks, domain.StatusDoing))
	fmt.Fprintf(&b, "• overdue tasks: %d\n", domain.CountOverdue(tasks, now))

	if current == nil {
		b.WriteString("\n[No project selected]\n")
		return b.String()
	}

	projectTasks := domain.TasksForProject(tasks, current.ID)

	b.WriteString("\n[Current project]\n")
	fmt.Fprintf(&b, "📌 Title: %s\n", current.Title)
	fmt.Fprintf(&b, "📝 Description: %s\n", current.DescriptionOr(noDescription))
	fmt.Fprintf(&b, "📊 Task count: %d\n", len(projectTasks))
	fmt.Fprintf(&b, "✅ Completed: %d\n", domain.CountStatus(projectTasks, domain.StatusDone))
	fmt.Fprintf(&b, "⚙️ In progress: %d\n", domain.CountStatus(projectTasks, domain.StatusDoing))

	if len(projectTasks) == 0 {
		return b.String()
	}

	b.WriteString("\n[Current tasks]\n")
	for i, t := range projectTasks {
		desc := t.Desc
		if desc == "" {
			desc = noDescription
		}
		fmt.Fprintf(&b, "%d. %q\n", i+1, t.Title)
		fmt.Fprintf(&b, "   - Status: %s\n", t.Status.Display())
		fmt.Fprintf(&b, "   - Priority: %s\n", t.Priority.Display())
		fmt.Fprintf(&b, "   - Estimated time: %s\n", t.EstimateLabel())
		fmt.Fprintf(&b, "   - Description: %s\n", desc)
	}
	return b.String()
}

// ContextBuilder reads the repository and renders a Snapshot.
type ContextBuilder struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	selector domain.ProjectSelector
	clock    domain.Clock
}

// NewContextBuilder creates a new ContextBuilder.
func NewContextBuilder(
	projects domain.ProjectRepository,
	tasks domain.TaskRepository,
	selector domain.ProjectSelector,
	clock domain.Clock,
) *ContextBuilder {
	return &ContextBuilder{
		projects: projects,
		tasks:    tasks,
		selector: selector,
		clock:    clock,
	}
}

// Build returns the snapshot together with the selected project, which may be nil.
func (b *ContextBuilder) Build() (string, *domain.Project, error) {
	projects, err := b.projects.ListProjects()
	if err != nil {
		return "", nil, fmt.Errorf("list projects: %w", err)
	}
	tasks, err := b.tasks.ListTasks()
	if err != nil {
		return "", nil, fmt.Errorf("list tasks: %w", err)
	}
	current, err := b.selector.CurrentProject()
	if err != nil {
		return "", nil, fmt.Errorf("read selection: %w", err)
	}
	return Snapshot(projects, tasks, current, b.clock.Now()), current, nil
}
