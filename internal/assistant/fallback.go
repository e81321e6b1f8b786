package assistant

import (
	"strings"
	"time"

	"github.com/sevencode7/tasks/internal/domain"
)

// fallbackView is the state the dynamic canned responses render from.
type fallbackView struct {
	now     time.Time
	project *domain.Project
	tasks   []*domain.Task // tasks of project
}

// Canned responses are keyed by the exact trimmed message. None of them
// contains command tags.
var staticFallbacks = map[string]string{
	"plan": `📋 **Project plan**

Here is a plan you can adapt to your project:

**Phase 1: Preparation (1-2 days)**
✓ Gather requirements
✓ Identify resources
✓ Set up the environment

**Phase 2: Development (3-5 days)**
✓ Build the foundation
✓ Develop the features
✓ Run first tests

**Phase 3: Testing (1-2 days)**
✓ Full test pass
✓ Fix defects
✓ Final sign-off

**Phase 4: Launch (half a day)**
✓ Deploy
✓ Monitor
✓ Support users

Want more detail on any phase?`,

	"split": `✂️ **Splitting a large task**

Break big tasks into smaller ones:

1️⃣ Requirements analysis (2 hours)
   - Collect information
   - Document requirements

2️⃣ Design and planning (3 hours)
   - Design the system
   - Draw the diagrams

3️⃣ Implementation (5 hours)
   - Write the code
   - Basic testing

4️⃣ Review and polish (2 hours)
   - Code review
   - Improvements

**Total: ~12 hours**`,

	"schedule": `📅 **Weekly schedule**

**Monday:** preparation and planning, then start phase one
**Tuesday:** continue phase one, progress check
**Wednesday:** phase two, first tests
**Thursday:** fixes and documentation
**Friday:** full test pass and sign-off

💡 Tip: take regular breaks!`,

	"titles": `💡 **Title suggestions**

Describe the task and I will suggest titles for it.

Example: "develop a website for the company"
Suggestions:
• Develop the company website
• Design and build the website
• Launch an interactive site`,

	"breakdown": `📋 **Task breakdown**

Describe a large task and I will break it into small steps.

Example: "build a mobile app"
Breakdown:
1. Analyze requirements
2. Design the user interface
3. Build the core features
4. Test thoroughly
5. Publish the app`,

	"ideas": `💡 **Improvement ideas**

**Management:**
• One-week sprints
• Short daily check-ins (15 minutes)
• Weekly progress review

**Quality:**
• Unit tests
• Peer review before merging
• Thorough documentation

**Performance:**
• Find the bottlenecks
• Improve step by step
• Measure the output

**Team:**
• Share the work fairly
• Keep learning
• Celebrate the wins`,
}

var dynamicFallbacks = map[string]func(fallbackView) string{
	"summary": func(v fallbackView) string {
		return DailySummary(v.project, v.tasks, v.now)
	},
	"priorities": func(v fallbackView) string {
		return Priorities(v.project, v.tasks)
	},
	"progress": func(v fallbackView) string {
		if v.project == nil {
			return "📊 Progress summary\n\nNo project selected. Pick a project to see its progress."
		}
		return FormatProgress(ComputeProgress(v.tasks, v.now))
	},
}

const onboardingReply = `Hi! 👋 I'm your task assistant.

I can help you:
✅ manage your projects
✅ organize and prioritize tasks
✅ plan and split work
✅ review your progress

Try one of: plan, split, schedule, summary, priorities, titles, breakdown, progress, ideas.`

// FallbackKeys returns the messages that have a dedicated canned response.
func FallbackKeys() []string {
	return []string{"plan", "split", "schedule", "summary", "priorities", "titles", "breakdown", "progress", "ideas"}
}

// fallbackReply picks the canned response for message.
func fallbackReply(message string, v fallbackView) string {
	key := strings.TrimSpace(message)
	if s, ok := staticFallbacks[key]; ok {
		return s
	}
	if fn, ok := dynamicFallbacks[key]; ok {
		return fn(v)
	}
	return onboardingReply
}
