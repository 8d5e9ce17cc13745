package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/astroflap/internal/core"
	"github.com/vovakirdan/astroflap/internal/input"
)

// KeyMap describes the game's key bindings for the help footer.
// The bindings are derived from the same table the EventMapper uses,
// so the footer always shows what the keys actually do.
type KeyMap struct {
	Jump    key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns bindings for the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Quit, k.Help}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Restart},
		{k.Pause, k.Quit, k.Help},
	}
}

// NewKeyMap builds help bindings from a key table.
func NewKeyMap(b input.Bindings) KeyMap {
	if b == nil {
		b = input.DefaultBindings()
	}
	return KeyMap{
		Jump:    binding(b, core.ActionJump, "flap / restart"),
		Restart: binding(b, core.ActionRestart, "restart"),
		Pause:   binding(b, core.ActionPause, "pause"),
		Quit:    binding(b, core.ActionQuit, "quit"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

func binding(b input.Bindings, a core.Action, desc string) key.Binding {
	keys := b.Keys(a)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}

	labels := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		l := keyLabel(k)
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyLabel returns the display name for a key.
func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	events *input.EventMapper
}

// NewKeyMapper creates a key mapper; nil bindings fall back to the defaults.
func NewKeyMapper(b input.Bindings) *KeyMapper {
	return &KeyMapper{events: input.NewEventMapper(b)}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.events.Map(msg.String())
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	return km.events.MapToFrame(msg.String(), frame)
}
