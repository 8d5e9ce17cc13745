package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/astroflap/internal/input"
)

// gamepad reads the first connected gamepad into an input.Joystick.
type gamepad struct {
	joystick *input.Joystick
	ids      []ebiten.GamepadID
}

func newGamepad(deadZone float64) *gamepad {
	return &gamepad{joystick: input.NewJoystick(deadZone)}
}

// state samples the first gamepad. ok is false when none is connected.
func (g *gamepad) state() (s input.JoystickState, ok bool) {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	if len(g.ids) == 0 {
		return input.JoystickState{}, false
	}
	id := g.ids[0]

	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		// Raw layout: axis 1 is the left stick's vertical on most pads.
		s.Vertical = ebiten.GamepadAxisValue(id, 1)
		s.Primary = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton0)
		return s, true
	}

	s.Vertical = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
		s.Vertical = -1
	}
	s.Primary = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	s.Start = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterRight)
	return s, true
}
