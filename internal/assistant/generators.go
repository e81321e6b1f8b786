package assistant

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sevencode7/tasks/internal/domain"
)

// DueSoonDays is the inclusive horizon of the "due soon" count.
const DueSoonDays = 3

type titleRule struct {
	keyword     string
	suggestions []string
}

// Entries are checked in order and every match contributes its suggestions.
var titleRules = []titleRule{
	{"develop", []string{"Develop the core feature", "Build the first prototype", "Ship the initial version"}},
	{"design", []string{"Design the user interface", "Sketch the main screens", "Review the visual identity"}},
	{"write", []string{"Write the first draft", "Outline the document", "Edit and proofread the text"}},
	{"test", []string{"Write the test plan", "Run the regression suite", "Fix the failing cases"}},
	{"analyze", []string{"Analyze the collected data", "Summarize the findings", "Prepare the analysis report"}},
}

var genericTitles = []string{"New task", "Improve the workflow", "Plan the next step"}

// SuggestTitles returns three title suggestions for a description.
// Keyword matching is a case-sensitive substring test.
func SuggestTitles(description string) []string {
	var out []string
	for _, rule := range titleRules {
		if strings.Contains(description, rule.keyword) {
			out = append(out, rule.suggestions...)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), genericTitles...)
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// FormatTitleSuggestions renders the SUGGEST_TITLE replacement.
func FormatTitleSuggestions(titles []string) string {
	var b strings.Builder
	b.WriteString("💡 Title suggestions:")
	for _, t := range titles {
		b.WriteString("\n• ")
		b.WriteString(t)
	}
	return b.String()
}

var breakdownSteps = []string{
	"Research and gather requirements",
	"Plan the approach and milestones",
	"Implement the main work",
	"Review and test the result",
	"Deliver and collect feedback",
}

// BreakdownSteps returns the generic five-step breakdown.
// The description does not influence the result.
func BreakdownSteps(string) []string {
	return append([]string(nil), breakdownSteps...)
}

// FormatBreakdown renders the BREAKDOWN_TASK replacement.
func FormatBreakdown(steps []string) string {
	var b strings.Builder
	b.WriteString("📋 Task breakdown:")
	for i, s := range steps {
		fmt.Fprintf(&b, "\n%d. %s", i+1, s)
	}
	return b.String()
}

// Band is the qualitative label of a completion percentage.
type Band string

const (
	BandExcellent        Band = "excellent"
	BandGood             Band = "good"
	BandAverage          Band = "average"
	BandNeedsImprovement Band = "needs improvement"
)

// BandFor maps a percentage to its band.
func BandFor(percentage int) Band {
	switch {
	case percentage >= 80:
		return BandExcellent
	case percentage >= 60:
		return BandGood
	case percentage >= 40:
		return BandAverage
	default:
		return BandNeedsImprovement
	}
}

// Progress holds the statistics of a set of tasks.
type Progress struct {
	Band       Band
	Total      int
	Completed  int
	Percentage int
	InProgress int
	Overdue    int
	DueSoon    int
}

// ComputeProgress summarizes tasks at now. An empty list yields 0%.
func ComputeProgress(tasks []*domain.Task, now time.Time) Progress {
	p := Progress{
		Total:      len(tasks),
		Completed:  domain.CountStatus(tasks, domain.StatusDone),
		InProgress: domain.CountStatus(tasks, domain.StatusDoing),
		Overdue:    domain.CountOverdue(tasks, now),
	}
	for _, t := range tasks {
		if t.IsDueSoon(now, DueSoonDays) {
			p.DueSoon++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	p.Band = BandFor(p.Percentage)
	return p
}

// FormatProgress renders the PROGRESS_SUMMARY replacement.
func FormatProgress(p Progress) string {
	var b strings.Builder
	b.WriteString("📊 Progress summary:\n")
	fmt.Fprintf(&b, "• Total tasks: %d\n", p.Total)
	fmt.Fprintf(&b, "• Completed: %d (%d%%)\n", p.Completed, p.Percentage)
	fmt.Fprintf(&b, "• In progress: %d\n", p.InProgress)
	fmt.Fprintf(&b, "• Overdue: %d\n", p.Overdue)
	fmt.Fprintf(&b, "• Due soon: %d\n", p.DueSoon)
	fmt.Fprintf(&b, "• Overall: %s", p.Band)
	return b.String()
}

// DailySummary reports what is done, in progress and pending for the day.
func DailySummary(project *domain.Project, tasks []*domain.Task, now time.Time) string {
	if project == nil {
		return "📊 Daily summary\n\nNo project selected. Pick a project to get a summary of its tasks."
	}
	done := domain.CountStatus(tasks, domain.StatusDone)
	doing := domain.CountStatus(tasks, domain.StatusDoing)
	pending := len(tasks) - done - doing

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Daily summary for %q (%s)\n\n", project.Title, now.Format("2006-01-02"))
	fmt.Fprintf(&b, "✅ Completed: %d\n", done)
	fmt.Fprintf(&b, "⚙️ In progress: %d\n", doing)
	fmt.Fprintf(&b, "📋 Pending: %d\n", pending)
	if overdue := domain.CountOverdue(tasks, now); overdue > 0 {
		fmt.Fprintf(&b, "⚠️ Overdue: %d\n", overdue)
	}
	b.WriteString("\n💡 Tip: finish what is in progress before starting something new.")
	return b.String()
}

// Priorities lists the open high and critical tasks, critical first.
func Priorities(project *domain.Project, tasks []*domain.Task) string {
	if project == nil {
		return "🎯 Priorities\n\nNo project selected. Pick a project to see its most important tasks."
	}
	var critical, high []*domain.Task
	for _, t := range tasks {
		if t.Status.IsDone() {
			continue
		}
		switch t.Priority {
		case domain.PriorityCritical:
			critical = append(critical, t)
		case domain.PriorityHigh:
			high = append(high, t)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Priorities for %q\n", project.Title)
	if len(critical)+len(high) == 0 {
		b.WriteString("\nNo urgent tasks right now. Pick anything from the backlog.")
		return b.String()
	}
	for _, t := range append(critical, high...) {
		fmt.Fprintf(&b, "\n• %s (%s)", t.Title, t.Priority.Display())
	}
	return b.String()
}
