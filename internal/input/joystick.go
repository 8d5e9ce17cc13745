package input

import (
	"math"

	"github.com/vovakirdan/astroflap/internal/core"
)

// DefaultDeadZone is the axis magnitude below which stick motion is ignored.
const DefaultDeadZone = 0.5

// Direction is a coarse stick direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// JoystickState is one frame's sample of a gamepad.
type JoystickState struct {
	// Vertical is the stick's vertical axis in [-1, 1], negative is up.
	Vertical float64
	// Primary is true while the primary (south/A) button is held.
	Primary bool
	// Start is true while the start/menu button is held.
	Start bool
}

// Joystick is the external-device adapter. Pushing the stick up past the
// dead zone or pressing the primary button flaps; the start button pauses.
// Like KeyPoller, only rising edges produce actions.
type Joystick struct {
	deadZone    float64
	prevDir     Direction
	prevPrimary bool
	prevStart   bool
}

// NewJoystick creates an adapter. A dead zone outside (0, 1) uses DefaultDeadZone.
func NewJoystick(deadZone float64) *Joystick {
	if deadZone <= 0 || deadZone >= 1 {
		deadZone = DefaultDeadZone
	}
	return &Joystick{deadZone: deadZone}
}

// DirectionOf classifies a vertical axis value.
func (j *Joystick) DirectionOf(vertical float64) Direction {
	if math.Abs(vertical) < j.deadZone {
		return DirNone
	}
	if vertical < 0 {
		return DirUp
	}
	return DirDown
}

// Update records the actions triggered by this frame's sample into frame.
func (j *Joystick) Update(s JoystickState, frame *core.InputFrame) {
	dir := j.DirectionOf(s.Vertical)

	if dir == DirUp && j.prevDir != DirUp {
		frame.Set(core.ActionJump)
	}
	if s.Primary && !j.prevPrimary {
		frame.Set(core.ActionJump)
	}
	if s.Start && !j.prevStart {
		frame.Set(core.ActionPause)
	}

	j.prevDir = dir
	j.prevPrimary = s.Primary
	j.prevStart = s.Start
}

// Disconnect clears edge state when the device goes away.
func (j *Joystick) Disconnect() {
	j.prevDir = DirNone
	j.prevPrimary = false
	j.prevStart = false
}
