package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// fillRow occupies every cell of row y except the listed columns.
func fillRow(b *Board, y int, skip ...int) {
	var cells []core.Point
	for x := 0; x < b.Width(); x++ {
		keep := true
		for _, s := range skip {
			if s == x {
				keep = false
			}
		}
		if keep {
			cells = append(cells, core.Point{X: x, Y: y})
		}
	}
	b.Lock(cells, core.ColorWhite)
}

func TestNewBoardRejectsBadSize(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0, 20) })
	assert.Panics(t, func() { NewBoard(10, -1) })

	b := NewBoard(DefaultWidth, DefaultHeight)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.Zero(t, b.Filled())
}

func TestBoardIsValid(t *testing.T) {
	b := NewBoard(10, 20)
	b.Lock([]core.Point{{X: 3, Y: 10}}, core.ColorRed)

	tests := []struct {
		name  string
		cells []core.Point
		want  bool
	}{
		{"inside", []core.Point{{X: 0, Y: 0}, {X: 9, Y: 19}}, true},
		{"left wall", []core.Point{{X: -1, Y: 5}}, false},
		{"right wall", []core.Point{{X: 10, Y: 5}}, false},
		{"floor", []core.Point{{X: 4, Y: 20}}, false},
		{"above top", []core.Point{{X: 4, Y: -2}}, true},
		{"above top but off side", []core.Point{{X: -1, Y: -2}}, false},
		{"occupied", []core.Point{{X: 3, Y: 10}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.IsValid(tc.cells))
		})
	}
}

func TestBoardLock(t *testing.T) {
	b := NewBoard(10, 20)

	above := b.Lock([]core.Point{{X: 1, Y: 2}, {X: 2, Y: 2}}, core.ColorGreen)
	assert.False(t, above)
	assert.Equal(t, core.ColorGreen, b.At(1, 2).Color())
	assert.False(t, b.At(1, 2).Empty())

	above = b.Lock([]core.Point{{X: 5, Y: -1}, {X: 5, Y: 0}}, core.ColorBlue)
	assert.True(t, above, "a cell above row 0 must be reported")
	assert.False(t, b.At(5, 0).Empty(), "cells on the board are still written")
	assert.Equal(t, 3, b.Filled())
}

func TestBoardAtOutside(t *testing.T) {
	b := NewBoard(6, 4)
	assert.True(t, b.At(-1, 0).Empty())
	assert.True(t, b.At(0, 4).Empty())
	assert.Equal(t, core.ColorDefault, b.At(99, 99).Color())
}

func TestClearFullRowsNonAdjacent(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 5)
	fillRow(b, 7)
	// Markers that must keep their relative order
	b.Lock([]core.Point{{X: 1, Y: 4}}, core.ColorRed)
	b.Lock([]core.Point{{X: 0, Y: 6}}, core.ColorBlue)
	b.Lock([]core.Point{{X: 2, Y: 8}}, core.ColorCyan)

	cleared := b.ClearFullRows()

	require.Equal(t, 2, cleared)
	assert.Equal(t, 3, b.Filled())
	for y := 0; y < 2; y++ {
		for x := 0; x < b.Width(); x++ {
			assert.True(t, b.At(x, y).Empty(), "row %d should be empty", y)
		}
	}
	assert.Equal(t, core.ColorRed, b.At(1, 6).Color(), "row 4 shifts down by two")
	assert.Equal(t, core.ColorBlue, b.At(0, 7).Color(), "row 6 shifts down by one")
	assert.Equal(t, core.ColorCyan, b.At(2, 8).Color(), "row 8 stays put")
}

func TestClearFullRowsAdjacent(t *testing.T) {
	b := NewBoard(6, 8)
	fillRow(b, 5, 0)
	fillRow(b, 6)
	fillRow(b, 7)

	cleared := b.ClearFullRows()

	assert.Equal(t, 2, cleared)
	assert.Equal(t, []string{
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		".#####",
	}, BoardRows(b))
}

func TestClearFullRowsNone(t *testing.T) {
	b := NewBoard(6, 4)
	fillRow(b, 3, 5)

	assert.Zero(t, b.ClearFullRows())
	assert.Equal(t, 5, b.Filled())
}

func TestBoardRowsIsCopy(t *testing.T) {
	b := NewBoard(6, 4)
	rows := b.Rows()
	rows[0][0] = Occupied(core.ColorRed)
	assert.True(t, b.At(0, 0).Empty())
}
