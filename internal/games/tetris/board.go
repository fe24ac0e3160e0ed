package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell is one grid position: empty, or occupied with a color token.
// The zero value is an empty cell.
type Cell struct {
	color  core.Color
	filled bool
}

// Occupied returns a filled cell carrying color.
func Occupied(color core.Color) Cell {
	return Cell{color: color, filled: true}
}

// Empty reports whether the cell is free.
func (c Cell) Empty() bool {
	return !c.filled
}

// Color returns the token the cell was locked with, or ColorDefault if empty.
func (c Cell) Color() core.Color {
	return c.color
}

// Board is the fixed-size playfield. Row 0 is the top, column 0 the left.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty width x height board.
// Non-positive dimensions are a programming error and panic.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	b := &Board{width: width, height: height, rows: make([][]Cell, height)}
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// At returns the cell at (x, y). Positions outside the grid read as empty.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.rows[y][x]
}

// IsValid reports whether a piece may occupy cells: every cell must be within
// [0, width) horizontally and above the floor, and every cell on the board
// must be empty. Cells above row 0 count as empty so pieces can spawn
// partially off the top.
func (b *Board) IsValid(cells []core.Point) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return false
		}
		if c.Y >= 0 && b.rows[c.Y][c.X].filled {
			return false
		}
	}
	return true
}

// Lock writes cells into the grid with the given color. Cells above the
// board are not written; the return value reports whether there were any,
// which means the stack has reached the top.
func (b *Board) Lock(cells []core.Point, color core.Color) (above bool) {
	for _, c := range cells {
		if c.Y < 0 {
			above = true
			continue
		}
		b.rows[c.Y][c.X] = Occupied(color)
	}
	return above
}

// ClearFullRows removes every completely filled row, shifting the rows above
// it down and inserting empty rows at the top. Returns the number removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.height - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		// The row shifted into y is new and must be tested again.
		full := b.rows[y]
		copy(b.rows[1:y+1], b.rows[:y])
		for x := range full {
			full[x] = Cell{}
		}
		b.rows[0] = full
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.rows[y] {
		if !c.filled {
			return false
		}
	}
	return true
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c.filled {
				n++
			}
		}
	}
	return n
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for y, row := range b.rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}
