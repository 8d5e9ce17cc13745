package sim

import "github.com/vovakirdan/astroflap/internal/core"

// Snapshot is a read-only view of the simulation for renderers.
// Obstacles is a copy, so holding a Snapshot never aliases live state.
type Snapshot struct {
	Character     Character
	CharacterRect core.Rect
	Obstacles     []ObstaclePair
	Score         int
	Phase         Phase
	Ticks         int
}

// GameOver reports whether the snapshot was taken after the round ended.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Snapshot returns the current state without mutating it.
func (s *Sim) Snapshot() Snapshot {
	obstacles := make([]ObstaclePair, len(s.pairs))
	copy(obstacles, s.pairs)

	return Snapshot{
		Character:     s.character,
		CharacterRect: s.character.Rect(),
		Obstacles:     obstacles,
		Score:         s.score,
		Phase:         s.phase,
		Ticks:         s.ticks,
	}
}
