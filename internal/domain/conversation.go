package domain

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Display returns the speaker label used in prompts and transcripts.
func (r Role) Display() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// Turn is one message in a conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// DefaultHistoryWindow is the number of turns replayed into a prompt.
const DefaultHistoryWindow = 10

// Conversation is an append-only transcript.
// The full sequence is kept for display; Window gives the replay suffix.
type Conversation struct {
	turns []Turn
}

// Append adds a turn at the end.
func (c *Conversation) Append(role Role, text string) {
	c.turns = append(c.turns, Turn{Role: role, Text: text})
}

// Len returns the number of turns.
func (c *Conversation) Len() int {
	return len(c.turns)
}

// Turns returns a copy of the whole transcript.
func (c *Conversation) Turns() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Window returns the most recent n turns, oldest first.
func (c *Conversation) Window(n int) []Turn {
	if n <= 0 {
		return nil
	}
	start := len(c.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]Turn, len(c.turns)-start)
	copy(out, c.turns[start:])
	return out
}
