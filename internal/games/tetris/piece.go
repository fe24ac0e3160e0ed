package tetris

import "github.com/vovakirdan/tui-blocks/internal/core"

// Piece is a shape kind placed on the grid: rotation state plus anchor.
// Pieces are values; movement and rotation produce candidates that the
// engine validates against the board before committing.
type Piece struct {
	Kind     ShapeKind
	Rotation int        // 0..3
	Pos      core.Point // Anchor; Y may be negative while spawning
}

// NewPiece returns a piece of the given kind in rotation 0 at pos.
func NewPiece(kind ShapeKind, pos core.Point) Piece {
	return Piece{Kind: kind, Pos: pos}
}

// Cells returns the absolute grid cells occupied by the piece.
func (pc Piece) Cells() [4]core.Point {
	cells := Offsets(pc.Kind, pc.Rotation)
	for i := range cells {
		cells[i] = cells[i].Add(pc.Pos.X, pc.Pos.Y)
	}
	return cells
}

// WithRotation returns a copy of the piece in rotation r (mod 4).
func (pc Piece) WithRotation(r int) Piece {
	pc.Rotation = normalizeRotation(r)
	return pc
}

// WithPosition returns a copy of the piece translated by (dx, dy).
func (pc Piece) WithPosition(dx, dy int) Piece {
	pc.Pos = pc.Pos.Add(dx, dy)
	return pc
}

// Rotated returns a copy rotated one step clockwise.
func (pc Piece) Rotated() Piece {
	return pc.WithRotation(pc.Rotation + 1)
}

// Color returns the piece's color token.
func (pc Piece) Color() core.Color {
	return pc.Kind.Color()
}
