package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Help footer heights in rows.
const (
	shortHelpHeight = 1
	fullHelpHeight  = 4
)

// Options configures the terminal runner.
type Options struct {
	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger

	// RepeatDelay is the minimum time between accepted movement keys.
	RepeatDelay time.Duration
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	keys   KeyMap
	mapper *KeyMapper
	help   help.Model
	gate   *intentGate
	logger *log.Logger

	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       h,
		gate:       newIntentGate(opts.RepeatDelay),
		logger:     logger,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.config.ScreenH = m.playHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.logger.Info("quit", "game", m.game.ID(), "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
		return m, nil
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case isMovement(action) && !m.gate.allow():
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize fits the play area above the help footer.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.config.ScreenW = width
	m.config.ScreenH = m.playHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// Games that can relayout keep their state; others start over
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m Model) playHeight() int {
	footer := shortHelpHeight
	if m.help.ShowAll {
		footer = fullHelpHeight
	}
	return max(m.height-footer, 0)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.gate.reset()
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransitions(prev, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransitions records pause toggles, row clears and game over.
func (m Model) logTransitions(prev core.GameState, result core.StepResult) {
	s := result.State
	if s.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", s.Paused)
	}
	if result.Cleared > 0 {
		m.logger.Debug("rows cleared", "rows", result.Cleared, "lines", s.Lines, "level", s.Level)
	}
	if s.Level > prev.Level && prev.Level > 0 {
		m.logger.Info("level up", "level", s.Level)
	}
	if s.GameOver && !prev.GameOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", s.Score, "lines", s.Lines, "level", s.Level)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".blocks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
