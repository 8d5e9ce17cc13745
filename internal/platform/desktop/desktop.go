// Package desktop runs AstroFlap in a native window through ebiten.
// Keyboard state is polled each frame; the first gamepad, when present,
// drives the same jump and pause actions through its stick and buttons.
package desktop

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/astroflap/internal/core"
	"github.com/vovakirdan/astroflap/internal/game"
	"github.com/vovakirdan/astroflap/internal/input"
	"github.com/vovakirdan/astroflap/internal/logging"
	"github.com/vovakirdan/astroflap/internal/sim"
)

// Colors
var (
	skyColor      = color.RGBA{R: 8, G: 10, B: 28, A: 255}
	obstacleColor = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	capColor      = color.RGBA{R: 90, G: 240, B: 90, A: 255}
	astroColor    = color.RGBA{R: 235, G: 235, B: 245, A: 255}
	visorColor    = color.RGBA{R: 255, G: 170, B: 40, A: 255}
	crashColor    = color.RGBA{R: 255, G: 70, B: 70, A: 255}
	overlayColor  = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	textColor     = color.White
)

const (
	textScale = 2
	capHeight = 8
)

// Options configure the desktop window.
type Options struct {
	Scale    int            // Window size multiplier
	Gamepad  bool           // Read the first gamepad
	DeadZone float64        // Stick dead zone
	Bindings input.Bindings // nil = default layout
	Logger   *log.Logger    // nil = discard
}

// Game implements ebiten.Game around a game.Game.
type Game struct {
	game     *game.Game
	keyboard *keyboard
	gamepad  *gamepad // nil when disabled
	face     *text.GoXFace
	logger   *log.Logger
	frame    core.InputFrame
}

// New creates a desktop game and starts its first round.
func New(cfg core.RuntimeConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	g := &Game{
		game:     game.New(),
		keyboard: newKeyboard(bindingsOrDefault(opts.Bindings), logger),
		face:     text.NewGoXFace(basicfont.Face7x13),
		logger:   logger,
		frame:    core.NewInputFrame(),
	}
	if opts.Gamepad {
		g.gamepad = newGamepad(opts.DeadZone)
	}

	g.game.Reset(cfg)
	logger.Debug("round started", "seed", cfg.Seed)
	return g
}

func bindingsOrDefault(b input.Bindings) input.Bindings {
	if b == nil {
		return input.DefaultBindings()
	}
	return b
}

// Update polls input and advances one tick.
func (g *Game) Update() error {
	g.frame.Clear()
	g.keyboard.poller.Poll(g.keyboard.pressed, &g.frame)

	if g.gamepad != nil {
		if s, ok := g.gamepad.state(); ok {
			g.gamepad.joystick.Update(s, &g.frame)
		} else {
			g.gamepad.joystick.Disconnect()
		}
	}

	if g.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := g.game.Step(g.frame)
	if result.RoundEnded {
		g.logger.Info("round ended",
			"score", result.State.Score,
			"ticks", result.State.Ticks,
			"cause", g.game.EndCause(),
		)
	}
	if result.Restarted {
		g.logger.Debug("round started")
	}
	return nil
}

// Draw renders the field at its native resolution; ebiten scales the window.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	snap := g.game.Snapshot()

	for _, p := range snap.Obstacles {
		fillRect(screen, p.Top, obstacleColor)
		fillRect(screen, p.Bottom, obstacleColor)
		if !p.Top.Empty() {
			fillRect(screen, core.NewRect(p.Top.X-2, p.Top.Bottom()-capHeight, p.Top.W+4, capHeight), capColor)
		}
		if !p.Bottom.Empty() {
			fillRect(screen, core.NewRect(p.Bottom.X-2, p.Bottom.Y, p.Bottom.W+4, capHeight), capColor)
		}
	}

	g.drawAstronaut(screen, snap)
	g.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10, false)

	switch {
	case snap.GameOver():
		g.drawOverlay(screen, game.GameOverTitle, fmt.Sprintf("Score: %d", snap.Score), game.RestartHint)
	case g.game.Paused():
		g.drawOverlay(screen, game.PausedTitle, game.PausedSubtitle)
	}
}

// drawAstronaut draws the body with a visor toward the direction of travel.
func (g *Game) drawAstronaut(screen *ebiten.Image, snap sim.Snapshot) {
	r := snap.CharacterRect
	body := astroColor
	if snap.GameOver() {
		body = crashColor
	}
	fillRect(screen, r, body)
	fillRect(screen, core.NewRect(r.Right()-r.W/3, r.Y+r.H/4, r.W/4, r.H/3), visorColor)
}

// drawOverlay dims the field and centers a title with extra lines below it.
func (g *Game) drawOverlay(screen *ebiten.Image, title string, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, sim.FieldWidth, sim.FieldHeight, overlayColor, false)

	y := float64(sim.FieldHeight)/2 - 60
	g.drawText(screen, title, sim.FieldWidth/2, y, true)
	for _, l := range lines {
		y += 40
		g.drawText(screen, l, sim.FieldWidth/2, y, true)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, centered bool) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	if centered {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(screen, s, g.face, op)
}

func fillRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Title returns the window title.
func (g *Game) Title() string {
	return g.game.Title()
}

// Layout fixes the logical screen to the play field.
func (g *Game) Layout(_, _ int) (int, int) {
	return sim.FieldWidth, sim.FieldHeight
}

// Run opens the window and blocks until it is closed or quit is pressed.
func Run(cfg core.RuntimeConfig, opts Options) error {
	scale := max(opts.Scale, 1)

	g := New(cfg, opts)

	ebiten.SetWindowSize(sim.FieldWidth*scale, sim.FieldHeight*scale)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
