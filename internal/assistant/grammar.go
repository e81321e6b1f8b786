// Package assistant turns model replies into task-store mutations and builds
// the context the model sees.
//
// Command syntax inside a reply:
//
//	[CREATE_TASK](title, description, priority, minutes)
//	[UPDATE_TASK](title, status, priority|none)
//	[ADD_TAG](title, tag)
//	[SUGGEST_TITLE](description)
//	[BREAKDOWN_TASK](description)
//	[PROGRESS_SUMMARY]
//
// The argument list must follow the tag immediately and close on the same
// line. Arguments are split on commas and the last argument absorbs any extra
// commas. There is no escaping: a ")" inside an argument ends the list early
// and a "," inside an argument shifts the following fields. Nested or
// overlapping tags are not supported.
package assistant

import "strings"

// Kind identifies a command tag.
type Kind int

// Command kinds in processing order.
const (
	KindCreateTask Kind = iota
	KindUpdateTask
	KindAddTag
	KindSuggestTitle
	KindBreakdownTask
	KindProgressSummary
)

type tagSpec struct {
	literal string
	name    string
	arity   int
}

var tagSpecs = [...]tagSpec{
	KindCreateTask:      {"[CREATE_TASK]", "create_task", 4},
	KindUpdateTask:      {"[UPDATE_TASK]", "update_task", 3},
	KindAddTag:          {"[ADD_TAG]", "add_tag", 2},
	KindSuggestTitle:    {"[SUGGEST_TITLE]", "suggest_title", 1},
	KindBreakdownTask:   {"[BREAKDOWN_TASK]", "breakdown_task", 1},
	KindProgressSummary: {"[PROGRESS_SUMMARY]", "progress_summary", 0},
}

// Kinds returns every kind in the fixed processing order.
func Kinds() []Kind {
	return []Kind{
		KindCreateTask,
		KindUpdateTask,
		KindAddTag,
		KindSuggestTitle,
		KindBreakdownTask,
		KindProgressSummary,
	}
}

// Tag returns the bracketed literal that opens the command.
func (k Kind) Tag() string { return tagSpecs[k].literal }

// Arity returns the number of positional arguments.
func (k Kind) Arity() int { return tagSpecs[k].arity }

func (k Kind) String() string { return tagSpecs[k].name }

// Command is one parsed tag occurrence.
// Start and End delimit the span [Start, End) in the scanned text.
type Command struct {
	Args  []string // raw, untrimmed
	Kind  Kind
	Start int
	End   int
}

// Arg returns the i-th argument with surrounding whitespace removed.
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return strings.TrimSpace(c.Args[i])
}

// Span returns the matched text.
func (c Command) Span(text string) string {
	return text[c.Start:c.End]
}

// Scan returns the leftmost well-formed occurrence of kind starting at or
// after offset. Malformed occurrences are skipped and stay in the text.
func Scan(text string, kind Kind, offset int) (Command, bool) {
	lit := kind.Tag()
	for offset >= 0 && offset <= len(text) {
		i := strings.Index(text[offset:], lit)
		if i < 0 {
			return Command{}, false
		}
		start := offset + i
		if cmd, ok := parseAt(text, start, kind); ok {
			return cmd, true
		}
		offset = start + len(lit)
	}
	return Command{}, false
}

// ScanAll returns every non-overlapping occurrence of kind, left to right.
func ScanAll(text string, kind Kind) []Command {
	var out []Command
	offset := 0
	for {
		cmd, ok := Scan(text, kind, offset)
		if !ok {
			return out
		}
		out = append(out, cmd)
		offset = cmd.End
	}
}

// ContainsCommand reports whether the text holds any well-formed command.
func ContainsCommand(text string) bool {
	for _, k := range Kinds() {
		if _, ok := Scan(text, k, 0); ok {
			return true
		}
	}
	return false
}

// parseAt parses a command whose tag literal starts at start.
func parseAt(text string, start int, kind Kind) (Command, bool) {
	pos := start + len(kind.Tag())
	arity := kind.Arity()
	if arity == 0 {
		return Command{Kind: kind, Start: start, End: pos}, true
	}

	if pos >= len(text) || text[pos] != '(' {
		return Command{}, false
	}
	body := text[pos+1:]
	closeIdx := strings.IndexAny(body, ")\r\n")
	if closeIdx < 0 || body[closeIdx] != ')' {
		return Command{}, false
	}

	args := strings.SplitN(body[:closeIdx], ",", arity)
	if len(args) < arity {
		return Command{}, false
	}

	return Command{
		Kind:  kind,
		Args:  args,
		Start: start,
		End:   pos + 1 + closeIdx + 1,
	}, true
}
