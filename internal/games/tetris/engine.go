package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Intent is a discrete command from the presentation layer.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentRotate
	IntentSoftDrop
	IntentHardDrop
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentRotate:
		return "Rotate"
	case IntentSoftDrop:
		return "SoftDrop"
	case IntentHardDrop:
		return "HardDrop"
	default:
		return "Unknown"
	}
}

// Options configures a new engine.
type Options struct {
	Width       int
	Height      int
	Progression Progression
}

// DefaultOptions returns a 10x20 board with the default progression.
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Progression: DefaultProgression(),
	}
}

// State is a read-only view of the engine after an intent or tick.
type State struct {
	Score        int
	Lines        int
	Level        int
	FallInterval time.Duration
	Over         bool
	Active       Piece
	Next         Piece
	LastCleared  int // Rows cleared by the most recent lock
}

// Engine owns the board, the active and next pieces, the RNG and progression.
// It is not safe for concurrent use; the caller serializes intents and ticks.
type Engine struct {
	opts   Options
	board  *Board
	rng    *rand.Rand
	active Piece
	next   Piece

	score        int
	lines        int
	level        int
	fallInterval time.Duration
	sinceDrop    time.Duration
	lastCleared  int
	locks        int
	over         bool
}

// NewEngine creates a game on an empty board with two random pieces drawn.
// The RNG is seeded once here and never reseeded.
func NewEngine(opts Options, seed int64) *Engine {
	e := &Engine{
		opts:  opts,
		board: NewBoard(opts.Width, opts.Height),
		rng:   rand.New(rand.NewSource(seed)),
		level: 1,
	}
	e.fallInterval = opts.Progression.FallInterval(e.level)
	e.active = e.randomPiece()
	e.next = e.randomPiece()
	if !e.fits(e.active) {
		e.over = true
	}
	return e
}

// Apply performs one intent. Invalid moves and rotations are discarded
// without error. Once the game is over every intent is a no-op.
func (e *Engine) Apply(in Intent) State {
	if e.over {
		return e.State()
	}

	switch in {
	case IntentMoveLeft:
		e.try(e.active.WithPosition(-1, 0))
	case IntentMoveRight:
		e.try(e.active.WithPosition(1, 0))
	case IntentRotate:
		e.try(e.active.Rotated())
	case IntentSoftDrop:
		e.drop()
	case IntentHardDrop:
		for !e.drop() {
		}
	}
	return e.State()
}

// Tick advances the fall timer. When the time accumulated since the last
// automatic drop exceeds the fall interval the piece drops one row and the
// accumulator restarts from zero.
func (e *Engine) Tick(elapsed time.Duration) State {
	if e.over {
		return e.State()
	}
	e.sinceDrop += elapsed
	if e.sinceDrop > e.fallInterval {
		e.drop()
		e.sinceDrop = 0
	}
	return e.State()
}

// State returns the current progression and piece state.
func (e *Engine) State() State {
	return State{
		Score:        e.score,
		Lines:        e.lines,
		Level:        e.level,
		FallInterval: e.fallInterval,
		Over:         e.over,
		Active:       e.active,
		Next:         e.next,
		LastCleared:  e.lastCleared,
	}
}

// Board returns the playfield. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Active returns the falling piece.
func (e *Engine) Active() Piece { return e.active }

// Next returns the piece that spawns after the active one locks.
func (e *Engine) Next() Piece { return e.next }

// ActiveCells returns the absolute cells of the falling piece.
func (e *Engine) ActiveCells() [4]core.Point { return e.active.Cells() }

// Over reports whether the game has ended.
func (e *Engine) Over() bool { return e.over }

// Locks returns how many pieces have been locked so far.
func (e *Engine) Locks() int { return e.locks }

// SpawnPoint is the anchor new pieces appear at: top row, left of center.
func (e *Engine) SpawnPoint() core.Point {
	return core.Point{X: e.board.Width()/2 - 1, Y: 0}
}

func (e *Engine) fits(pc Piece) bool {
	cells := pc.Cells()
	return e.board.IsValid(cells[:])
}

// try commits the candidate if it fits.
func (e *Engine) try(candidate Piece) bool {
	if !e.fits(candidate) {
		return false
	}
	e.active = candidate
	return true
}

// drop moves the active piece down one row, or locks it if it cannot move.
// Returns true when a lock happened.
func (e *Engine) drop() (locked bool) {
	if e.try(e.active.WithPosition(0, 1)) {
		return false
	}
	e.lock()
	return true
}

func (e *Engine) lock() {
	cells := e.active.Cells()
	e.locks++
	e.lastCleared = 0

	if e.board.Lock(cells[:], e.active.Color()) {
		e.over = true
		return
	}

	cleared := e.board.ClearFullRows()
	e.lastCleared = cleared
	if cleared > 0 {
		out := e.opts.Progression.Advance(cleared, e.level, e.lines)
		e.score += out.ScoreDelta
		e.lines = out.TotalLines
		e.level = out.Level
		e.fallInterval = out.FallInterval
	}

	e.spawn()
}

// spawn promotes the next piece and draws a new one. A spawned piece that
// collides with the stack ends the game.
func (e *Engine) spawn() {
	e.active = NewPiece(e.next.Kind, e.SpawnPoint())
	e.next = e.randomPiece()
	if !e.fits(e.active) {
		e.over = true
	}
}

func (e *Engine) randomPiece() Piece {
	kind := AllKinds[e.rng.Intn(len(AllKinds))]
	return NewPiece(kind, e.SpawnPoint())
}
