package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_EnterSends(t *testing.T) {
	k := DefaultKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k.Send))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k.Newline))
}

func TestDefaultKeyMap_NoConflicts(t *testing.T) {
	k := DefaultKeyMap()
	seen := map[string]string{}

	for _, group := range k.FullHelp() {
		for _, b := range group {
			for _, keyName := range b.Keys() {
				prev, dup := seen[keyName]
				assert.False(t, dup, "key %q bound to %q and %q", keyName, prev, b.Help().Desc)
				seen[keyName] = b.Help().Desc
			}
		}
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	k := DefaultKeyMap()

	assert.Len(t, k.ShortHelp(), 4)
	assert.Len(t, k.FullHelp(), 3)
}
