package tetris

import (
	"strings"
	"time"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Seed         int64
	Score        int
	Lines        int
	Level        int
	FallInterval time.Duration
	Active       Piece
	Next         Piece
	Locks        int
	Filled       int
	Rows         []string // '#' occupied, '.' empty; top row first
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.Over():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := g.engine.State()
	return Snapshot{
		Tick:         g.tick,
		Seed:         g.seed,
		Score:        s.Score,
		Lines:        s.Lines,
		Level:        s.Level,
		FallInterval: s.FallInterval,
		Active:       s.Active,
		Next:         s.Next,
		Locks:        g.engine.Locks(),
		Filled:       g.engine.Board().Filled(),
		Rows:         BoardRows(g.engine.Board()),
		State:        state,
	}
}

// BoardRows renders the grid as strings, one per row.
func BoardRows(b *Board) []string {
	rows := make([]string, b.Height())
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		sb.Reset()
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y).Empty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
