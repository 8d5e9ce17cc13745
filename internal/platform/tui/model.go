package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astroflap/internal/core"
	"github.com/vovakirdan/astroflap/internal/game"
	"github.com/vovakirdan/astroflap/internal/input"
	"github.com/vovakirdan/astroflap/internal/logging"
)

// Options configure a Model beyond the runtime config.
type Options struct {
	Bindings input.Bindings // nil = default layout
	ShowHelp bool           // Show the key help footer
	Logger   *log.Logger    // nil = discard

	// Renderer carries the output's color profile; nil = local terminal.
	Renderer *lipgloss.Renderer

	// ScreenshotDir receives ctrl+s dumps of the field; empty disables them.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one AstroFlap game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	keys       KeyMap
	help       help.Model
	showHelp   bool
	logger     *log.Logger
	shotDir    string
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		game:       game.New(),
		renderer:   NewScreenRenderer(opts.Renderer),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(opts.Bindings),
		keys:       NewKeyMap(opts.Bindings),
		help:       help.New(),
		showHelp:   opts.ShowHelp,
		logger:     logger,
		shotDir:    opts.ScreenshotDir,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.fieldHeight())

	// Reset here rather than in Init so the first View has a round to draw.
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("round started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" && m.shotDir != "" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHelp && msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.fieldHeight())
	}

	return m, nil
}

// handleResize adapts the screen; the round keeps going since the field
// is rescaled on every render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, msg.Height)
	m.screen.Resize(msg.Width, m.fieldHeight())
	return m, nil
}

// handleTick advances the game with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.RoundEnded {
		m.logger.Debug("round ended",
			"score", result.State.Score,
			"ticks", result.State.Ticks,
			"cause", m.game.EndCause(),
		)
	}
	if result.Restarted {
		m.logger.Debug("round started", "seed", m.config.Seed)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current field as plain text into the screenshot dir.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("astroflap_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// fieldHeight is the number of rows left for the game after the footer.
func (m Model) fieldHeight() int {
	if !m.showHelp {
		return m.height
	}
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := m.renderer.Render(m.screen)

	if m.showHelp {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
