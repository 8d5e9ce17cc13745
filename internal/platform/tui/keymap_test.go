package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/astroflap/internal/core"
	"github.com/vovakirdan/astroflap/internal/input"
)

func TestKeyMapperDefaults(t *testing.T) {
	km := NewKeyMapper(nil)

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.expected || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.expected, tc.quit)
		}
	}
}

func TestKeyMapHelpLabels(t *testing.T) {
	keys := NewKeyMap(input.DefaultBindings())

	if got := keys.Jump.Help().Key; got != "space/up/w" {
		t.Errorf("jump help key = %q, expected space/up/w", got)
	}
	if !keys.Quit.Enabled() {
		t.Error("quit binding should be enabled")
	}

	partial := NewKeyMap(input.Bindings{"k": core.ActionJump})
	if partial.Pause.Enabled() {
		t.Error("unbound action should be disabled in help")
	}
	if len(partial.ShortHelp()) != 4 || len(partial.FullHelp()) != 2 {
		t.Error("help layout should not depend on bindings")
	}
}
