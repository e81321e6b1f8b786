package assistant

import (
	"strings"

	"github.com/sevencode7/tasks/internal/domain"
)

// DefaultSystemPrompt introduces the assistant and the command tags it may emit.
const DefaultSystemPrompt = `You are the assistant of "tasks", a personal project and task tracker.

[Role]
• Help the user manage projects and tasks efficiently
• Analyze progress and productivity
• Suggest improvements and prioritize work
• Create and update tasks directly when asked

[Style]
• Be brief, friendly and practical
• Use emojis to make ideas clear
• Ask a clarifying question when needed

[Commands]
Write a command on its own line to act on the current project. Arguments are
separated by commas and may not contain commas or parentheses.
[CREATE_TASK](title, description, low|medium|high|critical, estimated minutes)
[UPDATE_TASK](exact task title, backlog|doing|review|done, low|medium|high|critical|none)
[ADD_TAG](exact task title, tag)
[SUGGEST_TITLE](description)
[BREAKDOWN_TASK](description)
[PROGRESS_SUMMARY]`

const (
	contextHeader = "[Current context]"
	historyHeader = "[Previous conversation]"
	messagePrefix = "The user now says: "
)

// BuildPrompt assembles the full prompt in fixed order: system block,
// snapshot, history lines (oldest first), then the new message.
func BuildPrompt(system, snapshot string, history []domain.Turn, message string) string {
	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\n")
	b.WriteString(contextHeader)
	b.WriteString("\n")
	b.WriteString(snapshot)
	b.WriteString("\n")
	b.WriteString(historyHeader)
	b.WriteString("\n")
	for _, turn := range history {
		b.WriteString(turn.Role.Display())
		b.WriteString(": ")
		b.WriteString(turn.Text)
		b.WriteString("\n")
	}
	b.WriteString(messagePrefix)
	b.WriteString(message)
	return b.String()
}
