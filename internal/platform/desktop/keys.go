package desktop

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/astroflap/internal/input"
)

// keyAliases covers the terminal-style names used in the shared binding
// tables. Anything else goes through ebiten's own key names.
var keyAliases = map[string]ebiten.Key{
	" ":     ebiten.KeySpace,
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"esc":   ebiten.KeyEscape,
	"enter": ebiten.KeyEnter,
}

// lookupKey resolves a binding name to an ebiten key. Names match
// regardless of case.
func lookupKey(name string) (ebiten.Key, bool) {
	name = strings.ToLower(name)
	if k, ok := keyAliases[name]; ok {
		return k, true
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return k, true
}

// keyboard polls ebiten key state through an input.KeyPoller.
type keyboard struct {
	poller *input.KeyPoller
	keys   map[string]ebiten.Key
}

// newKeyboard resolves every bound key once. Names ebiten does not know
// (such as "ctrl+c") are skipped.
func newKeyboard(b input.Bindings, logger *log.Logger) *keyboard {
	kb := &keyboard{
		poller: input.NewKeyPoller(b),
		keys:   make(map[string]ebiten.Key, len(b)),
	}
	for name := range b {
		k, ok := lookupKey(name)
		if !ok {
			logger.Debug("key has no desktop equivalent, ignoring", "key", name)
			continue
		}
		kb.keys[name] = k
	}
	return kb
}

func (kb *keyboard) pressed(name string) bool {
	k, ok := kb.keys[name]
	return ok && ebiten.IsKeyPressed(k)
}
