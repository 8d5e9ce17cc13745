// Package input translates raw device input into core actions.
//
// Three adapters cover the supported input surfaces: EventMapper for
// discrete key-press events (terminal), KeyPoller for continuously polled
// key state (desktop keyboard) and Joystick for gamepad axes and buttons.
// Each one only produces core.Action values; routing them into the
// simulation is the platform's job.
package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/astroflap/internal/core"
)

// Bindings maps key names to the action they trigger.
type Bindings map[string]core.Action

// DefaultBindings returns the stock key layout: Space/Up/W flap, R
// restarts, P/Esc pause, Q/Ctrl+C quit.
func DefaultBindings() Bindings {
	return Bindings{
		" ":      core.ActionJump,
		"space":  core.ActionJump,
		"up":     core.ActionJump,
		"w":      core.ActionJump,
		"r":      core.ActionRestart,
		"p":      core.ActionPause,
		"esc":    core.ActionPause,
		"q":      core.ActionQuit,
		"ctrl+c": core.ActionQuit,
	}
}

// ParseBindings builds bindings from an action-name to key-list table, the
// shape used in configuration files.
func ParseBindings(table map[string][]string) (Bindings, error) {
	b := make(Bindings)
	for name, keys := range table {
		action, err := core.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		for _, k := range keys {
			k = normalizeKey(k)
			if prev, ok := b[k]; ok && prev != action {
				return nil, fmt.Errorf("input: key %q bound to both %s and %s", k, prev, action)
			}
			b[k] = action
		}
	}
	return b, nil
}

// Keys returns the keys bound to an action, sorted for stable display.
func (b Bindings) Keys(a core.Action) []string {
	var keys []string
	for k, action := range b {
		if action == a {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// normalizeKey lower-cases key names but keeps a literal space intact.
func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}

// EventMapper is the event-hook adapter: every key-press event is looked up
// once and yields at most one action.
type EventMapper struct {
	bindings Bindings
}

// NewEventMapper creates a mapper; nil bindings fall back to the defaults.
func NewEventMapper(b Bindings) *EventMapper {
	if b == nil {
		b = DefaultBindings()
	}
	return &EventMapper{bindings: b}
}

// Map translates a key name to an action, ActionNone when unbound.
func (m *EventMapper) Map(key string) core.Action {
	if a, ok := m.bindings[normalizeKey(key)]; ok {
		return a
	}
	return core.ActionNone
}

// MapToFrame records the key's action into frame.
// Returns true if the key was a quit request.
func (m *EventMapper) MapToFrame(key string, frame *core.InputFrame) bool {
	a := m.Map(key)
	frame.Set(a)
	return a == core.ActionQuit
}
