package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sevencode7/tasks/internal/domain"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestSuggestTitles(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name:        "single keyword",
			description: "design the landing page",
			want:        []string{"Design the user interface", "Sketch the main screens", "Review the visual identity"},
		},
		{
			name:        "multiple keywords keep table order",
			description: "test and develop the parser",
			want:        []string{"Develop the core feature", "Build the first prototype", "Ship the initial version"},
		},
		{
			name:        "case sensitive",
			description: "Design the landing page",
			want:        genericTitles,
		},
		{
			name:        "no keyword",
			description: "buy groceries",
			want:        genericTitles,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestTitles(tt.description))
		})
	}
}

func TestSuggestTitles_ResultIsACopy(t *testing.T) {
	got := SuggestTitles("nothing")
	got[0] = "changed"

	assert.Equal(t, "New task", SuggestTitles("nothing")[0])
}

func TestFormatTitleSuggestions(t *testing.T) {
	got := FormatTitleSuggestions([]string{"a", "b", "c"})

	assert.Equal(t, "💡 Title suggestions:\n• a\n• b\n• c", got)
}

func TestBreakdownSteps_IgnoresDescription(t *testing.T) {
	assert.Equal(t, BreakdownSteps("build a rocket"), BreakdownSteps("bake a cake"))
	assert.Len(t, BreakdownSteps(""), 5)
}

func TestFormatBreakdown(t *testing.T) {
	got := FormatBreakdown(BreakdownSteps("x"))

	assert.True(t, strings.HasPrefix(got, "📋 Task breakdown:\n1. "))
	assert.Contains(t, got, "\n5. Deliver and collect feedback")
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		want       Band
		percentage int
	}{
		{BandExcellent, 100},
		{BandExcellent, 80},
		{BandGood, 79},
		{BandGood, 60},
		{BandAverage, 59},
		{BandAverage, 40},
		{BandNeedsImprovement, 39},
		{BandNeedsImprovement, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.percentage), "percentage %d", tt.percentage)
	}
}

func TestComputeProgress_Empty(t *testing.T) {
	p := ComputeProgress(nil, testNow)

	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.Percentage)
	assert.Equal(t, BandNeedsImprovement, p.Band)
}

func TestComputeProgress_OneOfThreeDoneOneOverdue(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	overdue := domain.NewTask("t1", "p", "Overdue", "", domain.StatusBacklog, testNow)
	overdue.Due = &yesterday
	done := domain.NewTask("t2", "p", "Done", "", domain.StatusDone, testNow)
	open := domain.NewTask("t3", "p", "Open", "", domain.StatusDoing, testNow)

	p := ComputeProgress([]*domain.Task{overdue, done, open}, testNow)

	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 1, p.Completed)
	assert.Equal(t, 1, p.Overdue)
	assert.Equal(t, 1, p.InProgress)
	assert.Equal(t, 33, p.Percentage)
	assert.Equal(t, BandNeedsImprovement, p.Band)
}

func TestComputeProgress_DueSoonWindow(t *testing.T) {
	mk := func(id string, due time.Time) *domain.Task {
		task := domain.NewTask(id, "p", id, "", domain.StatusBacklog, testNow)
		task.Due = &due
		return task
	}
	tasks := []*domain.Task{
		mk("today", testNow.Add(time.Hour)),     // 1 day (ceil)
		mk("three", testNow.Add(72*time.Hour)),  // 3 days
		mk("four", testNow.Add(73*time.Hour)),   // 4 days
		mk("past", testNow.Add(-48*time.Hour)),  // -2 days
		mk("now", testNow.Add(-30*time.Minute)), // 0 days, overdue
		mk("two", testNow.Add(36*time.Hour)),    // 2 days
		mk("far", testNow.Add(30*24*time.Hour)), // 30 days
	}

	p := ComputeProgress(tasks, testNow)

	assert.Equal(t, 4, p.DueSoon)
	assert.Equal(t, 2, p.Overdue)
}

func TestComputeProgress_Rounding(t *testing.T) {
	tasks := []*domain.Task{
		domain.NewTask("1", "p", "a", "", domain.StatusDone, testNow),
		domain.NewTask("2", "p", "b", "", domain.StatusDone, testNow),
		domain.NewTask("3", "p", "c", "", domain.StatusBacklog, testNow),
	}

	p := ComputeProgress(tasks, testNow)

	assert.Equal(t, 67, p.Percentage)
	assert.Equal(t, BandGood, p.Band)
}

func TestFormatProgress(t *testing.T) {
	got := FormatProgress(Progress{Total: 3, Completed: 1, Percentage: 33, Overdue: 1, Band: BandNeedsImprovement})

	assert.True(t, strings.HasPrefix(got, "📊 Progress summary:\n"))
	assert.Contains(t, got, "• Total tasks: 3")
	assert.Contains(t, got, "• Completed: 1 (33%)")
	assert.Contains(t, got, "• Overdue: 1")
	assert.Contains(t, got, "• Overall: needs improvement")
}

func TestDailySummary(t *testing.T) {
	project := domain.NewProject("p", "Website", "", nil, "#7C3AED", testNow)
	tasks := []*domain.Task{
		domain.NewTask("1", "p", "a", "", domain.StatusDone, testNow),
		domain.NewTask("2", "p", "b", "", domain.StatusDoing, testNow),
		domain.NewTask("3", "p", "c", "", domain.StatusBacklog, testNow),
		domain.NewTask("4", "p", "d", "", domain.StatusReview, testNow),
	}

	got := DailySummary(project, tasks, testNow)

	assert.Contains(t, got, `"Website" (2025-03-10)`)
	assert.Contains(t, got, "✅ Completed: 1")
	assert.Contains(t, got, "⚙️ In progress: 1")
	assert.Contains(t, got, "📋 Pending: 2")
	assert.NotContains(t, got, "Overdue")

	assert.Contains(t, DailySummary(nil, nil, testNow), "No project selected")
}

func TestPriorities(t *testing.T) {
	project := domain.NewProject("p", "Website", "", nil, "#7C3AED", testNow)
	high := domain.NewTask("1", "p", "High one", "", domain.StatusBacklog, testNow)
	high.Priority = domain.PriorityHigh
	critical := domain.NewTask("2", "p", "Critical one", "", domain.StatusDoing, testNow)
	critical.Priority = domain.PriorityCritical
	closed := domain.NewTask("3", "p", "Closed critical", "", domain.StatusDone, testNow)
	closed.Priority = domain.PriorityCritical
	low := domain.NewTask("4", "p", "Low one", "", domain.StatusBacklog, testNow)
	low.Priority = domain.PriorityLow

	got := Priorities(project, []*domain.Task{high, critical, closed, low})

	assert.Less(t, strings.Index(got, "Critical one"), strings.Index(got, "High one"))
	assert.NotContains(t, got, "Closed critical")
	assert.NotContains(t, got, "Low one")

	assert.Contains(t, Priorities(project, []*domain.Task{low}), "No urgent tasks")
	assert.Contains(t, Priorities(nil, nil), "No project selected")
}
