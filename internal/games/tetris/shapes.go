// Package tetris implements the falling-block puzzle game: a fixed grid,
// seven four-cell pieces that fall, rotate and lock, and row clears that
// drive score, level and fall speed.
//
// The engine (Engine) is pure state: it knows nothing about terminals or
// timers and is advanced with discrete intents plus Tick(elapsed). Game wraps
// it for the arcade registry.
package tetris

import "github.com/vovakirdan/tui-blocks/internal/core"

// ShapeKind identifies one of the seven pieces.
type ShapeKind uint8

const (
	ShapeI ShapeKind = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// AllKinds lists every piece kind in catalog order.
var AllKinds = [...]ShapeKind{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// RotationStates is the number of rotation states of every piece.
const RotationStates = 4

type shape struct {
	name      string
	color     core.Color
	rotations [RotationStates][4]core.Point
}

// p is shorthand for table literals below.
func p(x, y int) core.Point { return core.Point{X: x, Y: y} }

// catalog holds the offsets of each rotation state relative to the piece anchor.
// The tables are minimal bounding boxes, not SRS-normalized, so rotating does
// not keep a fixed center.
var catalog = [...]shape{
	ShapeI: {
		name:  "I",
		color: core.ColorCyan,
		rotations: [RotationStates][4]core.Point{
			{p(0, 1), p(1, 1), p(2, 1), p(3, 1)},
			{p(2, 0), p(2, 1), p(2, 2), p(2, 3)},
			{p(0, 2), p(1, 2), p(2, 2), p(3, 2)},
			{p(1, 0), p(1, 1), p(1, 2), p(1, 3)},
		},
	},
	ShapeO: {
		name:  "O",
		color: core.ColorYellow,
		rotations: [RotationStates][4]core.Point{
			{p(0, 0), p(1, 0), p(0, 1), p(1, 1)},
			{p(0, 0), p(1, 0), p(0, 1), p(1, 1)},
			{p(0, 0), p(1, 0), p(0, 1), p(1, 1)},
			{p(0, 0), p(1, 0), p(0, 1), p(1, 1)},
		},
	},
	ShapeT: {
		name:  "T",
		color: core.ColorMagenta,
		rotations: [RotationStates][4]core.Point{
			{p(1, 0), p(0, 1), p(1, 1), p(2, 1)},
			{p(1, 0), p(1, 1), p(2, 1), p(1, 2)},
			{p(0, 1), p(1, 1), p(2, 1), p(1, 2)},
			{p(1, 0), p(0, 1), p(1, 1), p(1, 2)},
		},
	},
	ShapeS: {
		name:  "S",
		color: core.ColorGreen,
		rotations: [RotationStates][4]core.Point{
			{p(1, 0), p(2, 0), p(0, 1), p(1, 1)},
			{p(1, 0), p(1, 1), p(2, 1), p(2, 2)},
			{p(1, 1), p(2, 1), p(0, 2), p(1, 2)},
			{p(0, 0), p(0, 1), p(1, 1), p(1, 2)},
		},
	},
	ShapeZ: {
		name:  "Z",
		color: core.ColorRed,
		rotations: [RotationStates][4]core.Point{
			{p(0, 0), p(1, 0), p(1, 1), p(2, 1)},
			{p(2, 0), p(1, 1), p(2, 1), p(1, 2)},
			{p(0, 1), p(1, 1), p(1, 2), p(2, 2)},
			{p(1, 0), p(0, 1), p(1, 1), p(0, 2)},
		},
	},
	ShapeJ: {
		name:  "J",
		color: core.ColorBlue,
		rotations: [RotationStates][4]core.Point{
			{p(0, 0), p(0, 1), p(1, 1), p(2, 1)},
			{p(1, 0), p(2, 0), p(1, 1), p(1, 2)},
			{p(0, 1), p(1, 1), p(2, 1), p(2, 2)},
			{p(1, 0), p(1, 1), p(0, 2), p(1, 2)},
		},
	},
	ShapeL: {
		name:  "L",
		color: core.ColorOrange,
		rotations: [RotationStates][4]core.Point{
			{p(2, 0), p(0, 1), p(1, 1), p(2, 1)},
			{p(1, 0), p(1, 1), p(1, 2), p(2, 2)},
			{p(0, 1), p(1, 1), p(2, 1), p(0, 2)},
			{p(0, 0), p(1, 0), p(1, 1), p(1, 2)},
		},
	},
}

// Offsets returns the four cell offsets of kind in the given rotation.
// Rotation is taken mod 4, negative values included.
func Offsets(kind ShapeKind, rotation int) [4]core.Point {
	return catalog[kind].rotations[normalizeRotation(rotation)]
}

// Color returns the color token cells of this kind are drawn and locked with.
func (k ShapeKind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return catalog[k].color
}

// String returns the single-letter name of the piece.
func (k ShapeKind) String() string {
	if !k.Valid() {
		return "?"
	}
	return catalog[k].name
}

// Valid reports whether k is one of the seven kinds.
func (k ShapeKind) Valid() bool {
	return int(k) < len(catalog)
}

func normalizeRotation(r int) int {
	return ((r % RotationStates) + RotationStates) % RotationStates
}
