package sim

import "github.com/vovakirdan/astroflap/internal/core"

// ObstaclePair is a top and bottom rectangle sharing an x-coordinate and
// width, separated vertically by GapHeight.
type ObstaclePair struct {
	Top    core.Rect
	Bottom core.Rect
}

// NewObstaclePair builds the pair whose top rectangle is topHeight tall.
// The bottom rectangle fills the rest of the field below the gap; when
// topHeight+GapHeight exceeds FieldHeight its height is zero or negative and
// is kept as-is, so it can never be hit.
func NewObstaclePair(x, topHeight int) ObstaclePair {
	bottomY := topHeight + GapHeight
	return ObstaclePair{
		Top:    core.NewRect(x, 0, ObstacleWidth, topHeight),
		Bottom: core.NewRect(x, bottomY, ObstacleWidth, FieldHeight-bottomY),
	}
}

// X returns the pair's left edge.
func (p ObstaclePair) X() int {
	return p.Top.X
}

// Collides reports whether r overlaps either rectangle of the pair.
func (p ObstaclePair) Collides(r core.Rect) bool {
	return r.Intersects(p.Top) || r.Intersects(p.Bottom)
}

// offscreen reports whether the pair has scrolled fully past the left edge.
func (p ObstaclePair) offscreen() bool {
	return p.X() < -ObstacleWidth
}

// generate draws a fresh pair at xStart with a random top height in
// [MinTopHeight, MaxTopHeight].
func (s *Sim) generate(xStart int) ObstaclePair {
	topHeight := MinTopHeight + s.rng.Intn(MaxTopHeight-MinTopHeight+1)
	return NewObstaclePair(xStart, topHeight)
}

// scrollObstacles moves every pair left by ScrollSpeed.
func (s *Sim) scrollObstacles() {
	for i := range s.pairs {
		s.pairs[i].Top = s.pairs[i].Top.Translate(-ScrollSpeed, 0)
		s.pairs[i].Bottom = s.pairs[i].Bottom.Translate(-ScrollSpeed, 0)
	}
}

// recycle replaces the leftmost pair once it is off-screen.
// Returns true when a pair was recycled (and therefore scored).
func (s *Sim) recycle() bool {
	if len(s.pairs) == 0 || !s.pairs[0].offscreen() {
		return false
	}
	copy(s.pairs, s.pairs[1:])
	s.pairs[len(s.pairs)-1] = s.generate(FieldWidth)
	return true
}

// firstCollision returns the index of the first pair hit by r, or -1.
func (s *Sim) firstCollision(r core.Rect) int {
	for i, p := range s.pairs {
		if p.Collides(r) {
			return i
		}
	}
	return -1
}
