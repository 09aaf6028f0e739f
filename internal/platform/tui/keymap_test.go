package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTrigger},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionTrigger},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionTrigger},
		{"w", runeKey('w'), core.ActionTrigger},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, km.MapKey(tc.msg))
		})
	}
}

func TestKeyMapMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(runeKey('w'), &frame))
	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame))
	assert.False(t, km.MapKeyToFrame(runeKey('x'), &frame))
	assert.Equal(t, 2, frame.Count(core.ActionTrigger))

	assert.True(t, km.MapKeyToFrame(runeKey('q'), &frame))
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.Equal(t, "start/flap", km.Trigger.Help().Desc)
}
