package game

import (
	"fmt"

	"github.com/vovakirdan/astroflap/internal/core"
	"github.com/vovakirdan/astroflap/internal/sim"
)

// Visual characters for rendering
const (
	ObstacleChar  = '█'
	CapTopChar    = '▄'
	CapBottomChar = '▀'
	AstronautChar = '▲'
	BorderChar    = '│'
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2

// Messages shown over the field.
const (
	GameOverTitle  = "GAME OVER"
	RestartHint    = "Press SPACE or UP to restart"
	PausedTitle    = "PAUSED"
	PausedSubtitle = "Press P to resume"
)

// viewport is the block of cells the play field is scaled into.
type viewport struct {
	core.Rect
}

// fitViewport scales the field into a w×h cell screen keeping its aspect
// ratio, then centers it horizontally.
func fitViewport(w, h int) viewport {
	if w <= 0 || h <= 0 {
		return viewport{}
	}

	// Fill the width first; fall back to filling the height.
	vw, vh := w, w*sim.FieldHeight/(sim.FieldWidth*cellAspect)
	if vh > h {
		vh = h
		vw = h * cellAspect * sim.FieldWidth / sim.FieldHeight
	}
	vw = core.Clamp(vw, 1, w)
	vh = core.Clamp(vh, 1, h)

	return viewport{core.NewRect((w-vw)/2, 0, vw, vh)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (v viewport) cellX(fx int) int {
	return v.X + floorDiv(fx*v.W, sim.FieldWidth)
}

func (v viewport) cellY(fy int) int {
	return v.Y + floorDiv(fy*v.H, sim.FieldHeight)
}

// project maps a field rectangle to cells, clipped to the viewport.
// Non-empty rectangles that shrink below one cell still occupy one.
func (v viewport) project(r core.Rect) core.Rect {
	if r.Empty() || v.Empty() {
		return core.Rect{}
	}

	x0, x1 := v.cellX(r.X), v.cellX(r.Right())
	y0, y1 := v.cellY(r.Y), v.cellY(r.Bottom())
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}

	x0 = core.Clamp(x0, v.X, v.Right())
	x1 = core.Clamp(x1, v.X, v.Right())
	y0 = core.Clamp(y0, v.Y, v.Bottom())
	y1 = core.Clamp(y1, v.Y, v.Bottom())

	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := fitViewport(dst.Width(), dst.Height())
	if vp.Empty() {
		return
	}
	snap := g.sim.Snapshot()

	// Field edges, when there is room beside the viewport
	for y := vp.Y; y < vp.Bottom(); y++ {
		dst.SetColored(vp.X-1, y, BorderChar, core.ColorGray)
		dst.SetColored(vp.Right(), y, BorderChar, core.ColorGray)
	}

	for _, p := range snap.Obstacles {
		drawObstacle(dst, vp, p)
	}

	astro := vp.project(snap.CharacterRect)
	color := core.ColorBrightWhite
	if snap.GameOver() {
		color = core.ColorBrightRed
	}
	dst.FillRect(astro, AstronautChar, color)

	dst.DrawTextColored(vp.X+1, vp.Y, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorYellow)

	switch {
	case snap.GameOver():
		drawMessage(dst, GameOverTitle, fmt.Sprintf("Score: %d", snap.Score), RestartHint)
	case g.paused:
		drawMessage(dst, PausedTitle, PausedSubtitle)
	}
}

// drawObstacle fills both halves of a pair with caps facing the gap.
func drawObstacle(dst *core.Screen, vp viewport, p sim.ObstaclePair) {
	top := vp.project(p.Top)
	dst.FillRect(top, ObstacleChar, core.ColorGreen)
	if !top.Empty() {
		dst.FillRect(core.NewRect(top.X, top.Bottom()-1, top.W, 1), CapTopChar, core.ColorBrightGreen)
	}

	bottom := vp.project(p.Bottom)
	dst.FillRect(bottom, ObstacleChar, core.ColorGreen)
	if !bottom.Empty() {
		dst.FillRect(core.NewRect(bottom.X, bottom.Y, bottom.W, 1), CapBottomChar, core.ColorBrightGreen)
	}
}

// drawMessage draws a boxed message in the center of the screen.
// The first line is the title; the rest follow after a blank line.
func drawMessage(dst *core.Screen, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightRed)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
