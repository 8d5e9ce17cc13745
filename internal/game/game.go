// Package game adapts the simulation to the frame-driven shape the platforms
// run: Reset with a runtime config, Step with an input frame, Render into a
// cell screen. It adds the pause toggle, which the simulation itself has no
// notion of.
package game

import (
	"github.com/vovakirdan/astroflap/internal/core"
	"github.com/vovakirdan/astroflap/internal/sim"
)

// Game wraps a sim.Sim for the terminal and desktop frontends.
type Game struct {
	sim    *sim.Sim
	config core.RuntimeConfig
	paused bool
	cause  sim.Cause // Why the last round ended
}

// New creates a game. Call Reset before the first Step.
func New() *Game {
	return &Game{
		sim:    sim.New(0),
		config: core.DefaultConfig(),
	}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "AstroFlap"
}

// Reset starts a fresh round with obstacle heights drawn from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.paused = false
	g.cause = sim.CauseNone
	g.sim.Reseed(cfg.Seed)
	g.sim.Reset()
}

// Resize records new screen dimensions without touching the round.
// The field is scaled at render time, so nothing else depends on them.
func (g *Game) Resize(w, h int) {
	g.config.ScreenW = w
	g.config.ScreenH = h
}

// Step advances the game by one tick.
// Pause toggles only while running; a paused game ignores every other action.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.sim.Phase() == sim.PhaseRunning {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.Apply(in)
	out := g.sim.Tick()

	if out.Restarted {
		g.cause = sim.CauseNone
	}
	if out.Ended {
		g.cause = out.Cause
	}

	return core.StepResult{
		State:      g.State(),
		RoundEnded: out.Ended,
		Restarted:  out.Restarted,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
		Ticks:    g.sim.Ticks(),
	}
}

// Snapshot returns the simulation state for frontends that draw it themselves.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// Paused reports whether ticking is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// EndCause reports why the last round ended, or CauseNone while running.
func (g *Game) EndCause() sim.Cause {
	return g.cause
}
