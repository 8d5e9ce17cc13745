// Package sim implements the fixed-timestep simulation behind AstroFlap:
// gravity integration, obstacle scrolling and recycling, collision detection,
// scoring and the Running/GameOver state machine.
//
// A Sim is driven by one external caller that invokes Tick (or Step) once per
// rendered frame. Input reaches it only as two edge-triggered signals, jump and
// restart, each buffered with depth one until the next applicable tick.
package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/astroflap/internal/core"
)

// Phase is the state of the round.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause describes why a round ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseObstacle
	CauseOutOfBounds
)

// String returns the cause name.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseObstacle:
		return "obstacle"
	case CauseOutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Rand is the source of obstacle heights. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Character is the player-controlled body. X never changes.
type Character struct {
	X        int
	Y        float64
	Velocity float64
}

// Rect returns the character's bounding box centered on its position.
// The field is integer-valued, so y is floored before centering.
func (c Character) Rect() core.Rect {
	return core.CenteredRect(c.X, int(math.Floor(c.Y)), CharacterWidth, CharacterHeight)
}

// Outcome reports what happened during one tick.
type Outcome struct {
	Scored    bool  // A pair was recycled and the score incremented
	Ended     bool  // The round moved to game over on this tick
	Cause     Cause // Why the round ended, when Ended is true
	Restarted bool  // A pending restart was honored on this tick
}

// Sim owns all mutable state of a round.
type Sim struct {
	rng Rand

	character Character
	pairs     []ObstaclePair
	score     int
	phase     Phase
	ticks     int

	jumpQueued    bool
	restartQueued bool
}

// New creates a simulation whose obstacle heights come from the given seed.
func New(seed int64) *Sim {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a simulation drawing obstacle heights from r.
func NewWithRand(r Rand) *Sim {
	s := &Sim{
		rng:   r,
		pairs: make([]ObstaclePair, 0, ObstacleCount),
	}
	s.Reset()
	return s
}

// Reseed replaces the height source with a fresh one for seed.
// The current round is left untouched until the next Reset.
func (s *Sim) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Reset reinitializes the round: character at its start position at rest,
// score and tick counter zeroed, ObstacleCount fresh pairs starting just off
// the right edge, and any pending signals dropped.
func (s *Sim) Reset() {
	s.character = Character{
		X:        StartX,
		Y:        FieldHeight / 2,
		Velocity: 0,
	}
	s.score = 0
	s.phase = PhaseRunning
	s.ticks = 0
	s.jumpQueued = false
	s.restartQueued = false

	s.pairs = s.pairs[:0]
	for i := 0; i < ObstacleCount; i++ {
		s.pairs = append(s.pairs, s.generate(FieldWidth+i*SpawnSpacing))
	}
}

// QueueJump requests a jump on the next tick. Ignored while the round is over.
func (s *Sim) QueueJump() {
	if s.phase == PhaseGameOver {
		return
	}
	s.jumpQueued = true
}

// QueueRestart requests a new round. Only honored while the round is over.
func (s *Sim) QueueRestart() {
	if s.phase != PhaseGameOver {
		return
	}
	s.restartQueued = true
}

// Apply turns the actions of an input frame into signals. The primary action
// flaps while running and restarts once the round is over.
func (s *Sim) Apply(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		if s.phase == PhaseGameOver {
			s.QueueRestart()
		} else {
			s.QueueJump()
		}
	}
	if in.Has(core.ActionRestart) {
		s.QueueRestart()
	}
}

// Step applies one input frame, advances one tick and returns the new state.
func (s *Sim) Step(in core.InputFrame) Snapshot {
	s.Apply(in)
	s.Tick()
	return s.Snapshot()
}

// Tick advances the simulation by one fixed step.
//
// While the round is over only a pending restart is processed; the tick that
// restarts performs no physics. While running, the order is: consume jump,
// apply gravity and move, scroll, recycle and score, obstacle collision,
// field bounds.
func (s *Sim) Tick() Outcome {
	if s.phase == PhaseGameOver {
		if !s.restartQueued {
			return Outcome{}
		}
		s.Reset()
		return Outcome{Restarted: true}
	}

	var out Outcome
	s.ticks++

	if s.jumpQueued {
		s.character.Velocity = JumpStrength
		s.jumpQueued = false
	}

	s.character.Velocity += Gravity
	s.character.Y += s.character.Velocity

	s.scrollObstacles()

	if s.recycle() {
		s.score++
		out.Scored = true
	}

	if s.firstCollision(s.character.Rect()) >= 0 {
		s.endRound(&out, CauseObstacle)
		return out
	}

	if s.character.Y < 0 || s.character.Y >= FieldHeight {
		s.endRound(&out, CauseOutOfBounds)
	}

	return out
}

func (s *Sim) endRound(out *Outcome, cause Cause) {
	s.phase = PhaseGameOver
	s.jumpQueued = false
	out.Ended = true
	out.Cause = cause
}

// Phase returns the current round phase.
func (s *Sim) Phase() Phase {
	return s.phase
}

// GameOver reports whether the round has ended.
func (s *Sim) GameOver() bool {
	return s.phase == PhaseGameOver
}

// Score returns the number of pairs passed this round.
func (s *Sim) Score() int {
	return s.score
}

// Ticks returns the number of steps simulated this round.
func (s *Sim) Ticks() int {
	return s.ticks
}
