package input

import "github.com/vovakirdan/astroflap/internal/core"

// KeyState reports whether a named key is currently held down.
// Desktop platforms back it with their keyboard polling API.
type KeyState func(key string) bool

// KeyPoller is the polled-state adapter. It samples every bound key once
// per frame and emits an action only on the frame its key goes from
// released to held, so holding a key never repeats a jump.
type KeyPoller struct {
	bindings Bindings
	held     map[string]bool
}

// NewKeyPoller creates a poller; nil bindings fall back to the defaults.
func NewKeyPoller(b Bindings) *KeyPoller {
	if b == nil {
		b = DefaultBindings()
	}
	return &KeyPoller{
		bindings: b,
		held:     make(map[string]bool, len(b)),
	}
}

// Poll samples the key state and records rising edges into frame.
func (p *KeyPoller) Poll(state KeyState, frame *core.InputFrame) {
	for key, action := range p.bindings {
		down := state(key)
		if down && !p.held[key] {
			frame.Set(action)
		}
		p.held[key] = down
	}
}
