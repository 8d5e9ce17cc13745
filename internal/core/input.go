package core

import (
	"fmt"
	"strings"
)

// Action represents a semantic game action, abstracted from physical input.
// Adapters translate key events, polled key state and joystick motion into
// actions so the simulation never sees raw devices.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, stick up - flap; restarts the round once it is over
	ActionRestart        // R - restart after game over
	ActionPause          // P, Escape - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction converts a case-insensitive action name into an Action.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jump":
		return ActionJump, nil
	case "restart":
		return ActionRestart, nil
	case "pause":
		return ActionPause, nil
	case "quit":
		return ActionQuit, nil
	default:
		return ActionNone, fmt.Errorf("core: unknown action %q", name)
	}
}

// InputFrame collects the actions triggered between two ticks.
// Setting the same action twice before the frame is consumed still counts
// once, which makes every action an edge-triggered signal of depth one.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
