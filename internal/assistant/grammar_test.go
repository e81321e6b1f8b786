package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_TagAndArity(t *testing.T) {
	tests := []struct {
		tag   string
		kind  Kind
		arity int
	}{
		{"[CREATE_TASK]", KindCreateTask, 4},
		{"[UPDATE_TASK]", KindUpdateTask, 3},
		{"[ADD_TAG]", KindAddTag, 2},
		{"[SUGGEST_TITLE]", KindSuggestTitle, 1},
		{"[BREAKDOWN_TASK]", KindBreakdownTask, 1},
		{"[PROGRESS_SUMMARY]", KindProgressSummary, 0},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.kind.Tag())
			assert.Equal(t, tt.arity, tt.kind.Arity())
		})
	}
}

func TestKinds_ProcessingOrder(t *testing.T) {
	assert.Equal(t, []Kind{
		KindCreateTask,
		KindUpdateTask,
		KindAddTag,
		KindSuggestTitle,
		KindBreakdownTask,
		KindProgressSummary,
	}, Kinds())
}

func TestScan_WellFormed(t *testing.T) {
	text := "ok [CREATE_TASK](Buy milk, from store, high, 15)"

	cmd, ok := Scan(text, KindCreateTask, 0)

	require.True(t, ok)
	assert.Equal(t, 3, cmd.Start)
	assert.Equal(t, len(text), cmd.End)
	assert.Equal(t, []string{"Buy milk", " from store", " high", " 15"}, cmd.Args)
	assert.Equal(t, "Buy milk", cmd.Arg(0))
	assert.Equal(t, "from store", cmd.Arg(1))
	assert.Equal(t, "high", cmd.Arg(2))
	assert.Equal(t, "15", cmd.Arg(3))
	assert.Equal(t, "", cmd.Arg(4))
	assert.Equal(t, "[CREATE_TASK](Buy milk, from store, high, 15)", cmd.Span(text))
}

func TestScan_LastArgumentAbsorbsCommas(t *testing.T) {
	cmd, ok := Scan("[ADD_TAG](Report, urgent, later)", KindAddTag, 0)

	require.True(t, ok)
	assert.Equal(t, "Report", cmd.Arg(0))
	assert.Equal(t, "urgent, later", cmd.Arg(1))
}

func TestScan_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind Kind
	}{
		{"too few arguments", "[CREATE_TASK](a, b)", KindCreateTask},
		{"space before paren", "[ADD_TAG] (a, b)", KindAddTag},
		{"no argument list", "[SUGGEST_TITLE] something", KindSuggestTitle},
		{"unclosed list", "[ADD_TAG](a, b", KindAddTag},
		{"list spans lines", "[ADD_TAG](a,\n b)", KindAddTag},
		{"tag at end of text", "see [BREAKDOWN_TASK]", KindBreakdownTask},
		{"lower case tag", "[create_task](a, b, c, d)", KindCreateTask},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Scan(tt.text, tt.kind, 0)
			assert.False(t, ok)
			assert.False(t, ContainsCommand(tt.text))
		})
	}
}

func TestScan_ParenInsideArgumentEndsList(t *testing.T) {
	// Known limitation: no escaping.
	cmd, ok := Scan("[SUGGEST_TITLE](fix (login) bug)", KindSuggestTitle, 0)

	require.True(t, ok)
	assert.Equal(t, "fix (login", cmd.Arg(0))
	assert.Equal(t, len("[SUGGEST_TITLE](fix (login)"), cmd.End)
}

func TestScan_CommaInsideArgumentShiftsFields(t *testing.T) {
	// Known limitation: "milk, eggs" splits into two fields.
	cmd, ok := Scan("[CREATE_TASK](Buy milk, eggs, from store, high, 15)", KindCreateTask, 0)

	require.True(t, ok)
	assert.Equal(t, "Buy milk", cmd.Arg(0))
	assert.Equal(t, "eggs", cmd.Arg(1))
	assert.Equal(t, "from store", cmd.Arg(2))
	assert.Equal(t, "high, 15", cmd.Arg(3))
}

func TestScan_SkipsMalformedAndFindsNext(t *testing.T) {
	text := "[ADD_TAG](x) [ADD_TAG](a, b)"

	cmd, ok := Scan(text, KindAddTag, 0)

	require.True(t, ok)
	assert.Equal(t, 13, cmd.Start)
	assert.Equal(t, "a", cmd.Arg(0))
	assert.Equal(t, "b", cmd.Arg(1))
}

func TestScan_RespectsOffset(t *testing.T) {
	text := "[PROGRESS_SUMMARY] [PROGRESS_SUMMARY]"

	first, ok := Scan(text, KindProgressSummary, 0)
	require.True(t, ok)
	second, ok := Scan(text, KindProgressSummary, first.End)
	require.True(t, ok)

	assert.Equal(t, 0, first.Start)
	assert.Equal(t, 19, second.Start)
	assert.Empty(t, second.Args)

	_, ok = Scan(text, KindProgressSummary, len(text))
	assert.False(t, ok)
}

func TestScanAll(t *testing.T) {
	text := "[ADD_TAG](a, one) text [ADD_TAG](bad) [ADD_TAG](b, two)"

	cmds := ScanAll(text, KindAddTag)

	require.Len(t, cmds, 2)
	assert.Equal(t, "one", cmds[0].Arg(1))
	assert.Equal(t, "two", cmds[1].Arg(1))
	assert.Less(t, cmds[0].End, cmds[1].Start)
}

func TestContainsCommand(t *testing.T) {
	assert.False(t, ContainsCommand("just a normal reply"))
	assert.False(t, ContainsCommand(""))
	assert.True(t, ContainsCommand("here [PROGRESS_SUMMARY]"))
	assert.True(t, ContainsCommand("[UPDATE_TASK](a, done, none)"))
}
