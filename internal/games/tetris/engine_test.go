package tetris

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(DefaultOptions(), 1)
	require.False(t, e.Over())
	return e
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t)
	s := e.State()

	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Lines)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, time.Second, s.FallInterval)
	assert.Equal(t, core.Point{X: 4, Y: 0}, s.Active.Pos)
	assert.Equal(t, 0, s.Active.Rotation)
	assert.True(t, s.Next.Kind.Valid())
	assert.Zero(t, e.Board().Filled())
}

func TestMoveLeftToWall(t *testing.T) {
	e := newTestEngine(t)
	e.active = NewPiece(ShapeI, core.Point{X: 4, Y: 0})

	for i := 0; i < 4; i++ {
		e.Apply(IntentMoveLeft)
	}
	assert.Equal(t, 0, e.Active().Pos.X)

	s := e.Apply(IntentMoveLeft)
	assert.Equal(t, 0, s.Active.Pos.X, "fifth move must be rejected")
	assert.Equal(t, 0, e.Locks())
}

func TestMoveRightToWall(t *testing.T) {
	e := newTestEngine(t)
	e.active = NewPiece(ShapeO, core.Point{X: 4, Y: 3})

	for i := 0; i < 10; i++ {
		e.Apply(IntentMoveRight)
	}
	assert.Equal(t, 8, e.Active().Pos.X)
}

func TestRotationRejectedAtWall(t *testing.T) {
	e := newTestEngine(t)
	start := Piece{Kind: ShapeI, Rotation: 1, Pos: core.Point{X: -2, Y: 5}}
	e.active = start

	e.Apply(IntentRotate)

	assert.Equal(t, start, e.Active(), "rotation into the wall leaves the piece untouched")
}

func TestRotationRejectedByStack(t *testing.T) {
	e := newTestEngine(t)
	start := Piece{Kind: ShapeI, Rotation: 0, Pos: core.Point{X: 3, Y: 10}}
	e.active = start
	e.board.Lock([]core.Point{{X: 5, Y: 10}}, core.ColorGray)

	e.Apply(IntentRotate)

	assert.Equal(t, start, e.Active())
}

func TestRotateCycles(t *testing.T) {
	e := newTestEngine(t)
	e.active = NewPiece(ShapeT, core.Point{X: 4, Y: 5})

	for i := 0; i < 4; i++ {
		e.Apply(IntentRotate)
	}
	assert.Equal(t, 0, e.Active().Rotation)
	assert.Equal(t, core.Point{X: 4, Y: 5}, e.Active().Pos)
}

func TestSoftDropMovesOneRow(t *testing.T) {
	e := newTestEngine(t)
	y := e.Active().Pos.Y

	e.Apply(IntentSoftDrop)

	assert.Equal(t, y+1, e.Active().Pos.Y)
	assert.Equal(t, 0, e.Locks())
}

func TestHardDropLocksOnce(t *testing.T) {
	e := newTestEngine(t)
	next := e.Next()

	e.Apply(IntentHardDrop)

	assert.Equal(t, 1, e.Locks())
	assert.Equal(t, 4, e.Board().Filled())
	assert.Equal(t, next.Kind, e.Active().Kind, "next piece is promoted")
	assert.Equal(t, e.SpawnPoint(), e.Active().Pos)
	assert.False(t, e.Over())

	floor := BoardRows(e.Board())[e.Board().Height()-1]
	assert.NotEqual(t, "..........", floor, "piece must land on the floor")
}

func TestHardDropClearsRow(t *testing.T) {
	e := newTestEngine(t)
	fillRow(e.board, 19, 0, 1, 2, 3)
	e.active = NewPiece(ShapeI, core.Point{X: 0, Y: 0})

	s := e.Apply(IntentHardDrop)

	assert.Equal(t, 1, s.LastCleared)
	assert.Equal(t, 1, s.Lines)
	assert.Equal(t, 100, s.Score)
	assert.Zero(t, e.Board().Filled())
}

func TestTetrisScoresFourHundred(t *testing.T) {
	e := newTestEngine(t)
	for y := 16; y < 20; y++ {
		fillRow(e.board, y, 9)
	}
	e.active = Piece{Kind: ShapeI, Rotation: 1, Pos: core.Point{X: 7, Y: 0}}

	s := e.Apply(IntentHardDrop)

	assert.Equal(t, 4, s.LastCleared)
	assert.Equal(t, 400, s.Score)
	assert.Equal(t, 1, s.Level)
}

func TestLockAboveTopEndsGame(t *testing.T) {
	e := newTestEngine(t)
	e.board.Lock([]core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}, core.ColorGray)
	e.active = NewPiece(ShapeO, core.Point{X: 0, Y: -1})

	s := e.Apply(IntentSoftDrop)
	require.True(t, s.Over)

	rows := BoardRows(e.Board())
	score := s.Score
	for _, in := range []Intent{IntentMoveLeft, IntentMoveRight, IntentRotate, IntentSoftDrop, IntentHardDrop} {
		e.Apply(in)
	}
	e.Tick(10 * time.Second)

	assert.Equal(t, rows, BoardRows(e.Board()), "board must not change after game over")
	assert.Equal(t, score, e.State().Score)
	assert.Equal(t, 1, e.Locks())
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	e := newTestEngine(t)
	for y := 0; y < 2; y++ {
		for x := 3; x < 9; x++ {
			e.board.Lock([]core.Point{{X: x, Y: y}}, core.ColorGray)
		}
	}
	e.active = NewPiece(ShapeO, core.Point{X: 0, Y: 18})

	s := e.Apply(IntentHardDrop)

	assert.True(t, s.Over)
	assert.Equal(t, 1, e.Locks())
	assert.Zero(t, s.LastCleared)
}

func TestTickAccumulator(t *testing.T) {
	e := newTestEngine(t)
	y := e.Active().Pos.Y

	e.Tick(time.Second)
	assert.Equal(t, y, e.Active().Pos.Y, "exactly one interval does not drop")

	e.Tick(time.Nanosecond)
	assert.Equal(t, y+1, e.Active().Pos.Y)

	// Accumulator restarted from zero
	e.Tick(999 * time.Millisecond)
	assert.Equal(t, y+1, e.Active().Pos.Y)
	e.Tick(2 * time.Millisecond)
	assert.Equal(t, y+2, e.Active().Pos.Y)

	// A long stall still drops a single row
	e.Tick(time.Hour)
	assert.Equal(t, y+3, e.Active().Pos.Y)
}

func TestTickLocksAtFloor(t *testing.T) {
	e := newTestEngine(t)
	e.active = NewPiece(ShapeO, core.Point{X: 0, Y: 18})

	e.Tick(2 * time.Second)

	assert.Equal(t, 1, e.Locks())
	assert.False(t, e.Board().At(0, 19).Empty())
}

func TestActiveStaysInBounds(t *testing.T) {
	intents := []Intent{IntentMoveLeft, IntentMoveRight, IntentRotate, IntentSoftDrop, IntentHardDrop}

	for seed := int64(1); seed <= 8; seed++ {
		e := NewEngine(DefaultOptions(), seed)
		rng := rand.New(rand.NewSource(seed * 7919))

		for step := 0; step < 3000 && !e.Over(); step++ {
			if rng.Intn(4) == 0 {
				e.Tick(time.Duration(rng.Intn(400)) * time.Millisecond)
			} else {
				e.Apply(intents[rng.Intn(len(intents))])
			}
			if e.Over() {
				break
			}

			b := e.Board()
			for _, c := range e.ActiveCells() {
				require.True(t, c.X >= 0 && c.X < b.Width(), "seed %d step %d: x out of range %v", seed, step, c)
				require.Less(t, c.Y, b.Height(), "seed %d step %d", seed, step)
				require.True(t, b.At(c.X, c.Y).Empty(), "seed %d step %d: overlap at %v", seed, step, c)
			}
			for _, row := range BoardRows(b) {
				require.NotEqual(t, "##########", row, "seed %d: full row left on board", seed)
			}
		}
	}
}

func TestEngineDeterminism(t *testing.T) {
	a := NewEngine(DefaultOptions(), 2024)
	b := NewEngine(DefaultOptions(), 2024)
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 500; i++ {
		in := Intent(rng.Intn(6))
		a.Apply(in)
		b.Apply(in)
		a.Tick(50 * time.Millisecond)
		b.Tick(50 * time.Millisecond)
	}

	assert.Equal(t, a.State(), b.State())
	assert.Equal(t, BoardRows(a.Board()), BoardRows(b.Board()))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "HardDrop", IntentHardDrop.String())
	assert.Equal(t, "None", IntentNone.String())
	assert.Equal(t, "Unknown", Intent(99).String())
}
