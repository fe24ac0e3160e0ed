package tetris

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Package-level config, set by the CLI before the game is created.
var gameConfig = config.DefaultTetrisConfig()

// SetConfig sets the configuration used by subsequent Reset calls.
// The CLI loads, applies the difficulty preset and validates it first.
func SetConfig(cfg config.TetrisConfig) {
	gameConfig = cfg
}

// CurrentConfig returns the configuration games are reset with.
func CurrentConfig() config.TetrisConfig {
	return gameConfig
}

// OptionsFromConfig converts the YAML config into engine options.
func OptionsFromConfig(cfg config.TetrisConfig) Options {
	return Options{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Progression: Progression{
			PointsPerLine: cfg.Scoring.PointsPerLine,
			LinesPerLevel: cfg.Scoring.LinesPerLevel,
			BaseInterval:  cfg.Speed.BaseInterval(),
			IntervalStep:  cfg.Speed.IntervalStep(),
			MinInterval:   cfg.Speed.MinInterval(),
		},
	}
}

// Game adapts the engine to the arcade registry: one Step per platform
// frame, with the frame duration fed to Engine.Tick.
type Game struct {
	cfg    config.TetrisConfig
	engine *Engine
	seed   int64
	frame  time.Duration
	tick   uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	paused bool
}

// New creates a tetris game using the package config.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset starts a new game on an empty board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = gameConfig
	g.seed = cfg.Seed
	g.engine = NewEngine(OptionsFromConfig(g.cfg), cfg.Seed)
	g.tick = 0
	g.paused = false

	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(rate)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to new screen dimensions without touching the
// game in progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.requiredSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one frame: intents first, then gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && !g.engine.Over() && !g.tooSmall {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.engine.Over() {
		return core.StepResult{State: g.State()}
	}

	cleared := 0
	for _, a := range []core.Action{
		core.ActionRotate,
		core.ActionLeft,
		core.ActionRight,
		core.ActionSoftDrop,
		core.ActionHardDrop,
	} {
		if in.Has(a) {
			cleared += g.run(func() { g.engine.Apply(intentFor(a)) })
		}
	}
	cleared += g.run(func() { g.engine.Tick(g.frame) })

	return core.StepResult{State: g.State(), Cleared: cleared}
}

// run calls fn and returns the rows cleared by any lock it caused.
func (g *Game) run(fn func()) int {
	before := g.engine.Locks()
	fn()
	if g.engine.Locks() == before {
		return 0
	}
	return g.engine.State().LastCleared
}

// intentFor maps a platform action to an engine intent.
func intentFor(a core.Action) Intent {
	switch a {
	case core.ActionLeft:
		return IntentMoveLeft
	case core.ActionRight:
		return IntentMoveRight
	case core.ActionRotate:
		return IntentRotate
	case core.ActionSoftDrop:
		return IntentSoftDrop
	case core.ActionHardDrop:
		return IntentHardDrop
	default:
		return IntentNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.State()
	return core.GameState{
		Score:    s.Score,
		Lines:    s.Lines,
		Level:    s.Level,
		GameOver: s.Over,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying engine for tests and tools.
func (g *Game) Engine() *Engine { return g.engine }
