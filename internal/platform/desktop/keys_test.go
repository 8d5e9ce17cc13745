package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/astroflap/internal/core"
	"github.com/vovakirdan/astroflap/internal/input"
	"github.com/vovakirdan/astroflap/internal/logging"
)

func TestLookupKey(t *testing.T) {
	tests := []struct {
		name     string
		expected ebiten.Key
		ok       bool
	}{
		{" ", ebiten.KeySpace, true},
		{"space", ebiten.KeySpace, true},
		{"up", ebiten.KeyArrowUp, true},
		{"UP", ebiten.KeyArrowUp, true},
		{"down", ebiten.KeyArrowDown, true},
		{"esc", ebiten.KeyEscape, true},
		{"enter", ebiten.KeyEnter, true},
		{"w", ebiten.KeyW, true},
		{"W", ebiten.KeyW, true},
		{"r", ebiten.KeyR, true},
		{"p", ebiten.KeyP, true},
		{"q", ebiten.KeyQ, true},
		{"ctrl+c", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		key, ok := lookupKey(tc.name)
		if ok != tc.ok {
			t.Errorf("lookupKey(%q) ok = %v, expected %v", tc.name, ok, tc.ok)
			continue
		}
		if ok && key != tc.expected {
			t.Errorf("lookupKey(%q) = %v, expected %v", tc.name, key, tc.expected)
		}
	}
}

func TestNewKeyboardSkipsUnknownKeys(t *testing.T) {
	kb := newKeyboard(input.Bindings{
		" ":      core.ActionJump,
		"p":      core.ActionPause,
		"ctrl+c": core.ActionQuit,
	}, logging.Discard())

	if len(kb.keys) != 2 {
		t.Errorf("expected 2 resolved keys, got %d: %v", len(kb.keys), kb.keys)
	}
	if _, ok := kb.keys["ctrl+c"]; ok {
		t.Error("ctrl+c has no desktop key and should be skipped")
	}
	if kb.keys[" "] != ebiten.KeySpace {
		t.Errorf("space resolved to %v, expected %v", kb.keys[" "], ebiten.KeySpace)
	}
}
