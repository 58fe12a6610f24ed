package tetris

import (
	"github.com/adambillekvist/tetris-game/internal/core"
)

// Kind identifies one of the seven canonical tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	kindCount
)

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color for this kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// Cell is a (row, col) grid coordinate, absolute or anchor-relative.
type Cell struct {
	Row, Col int
}

// shapes holds the occupied cell offsets for every kind and rotation state.
// Offsets are relative to the piece anchor (its top-left corner). Kinds that
// are symmetric under some rotations carry fewer states: I, S and Z have two,
// O has one, T, J and L have four.
var shapes = [kindCount][][]Cell{
	KindI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	KindO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	KindT: {
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	KindS: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	KindZ: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	KindJ: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 0}, {2, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	KindL: {
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
}

// RotationCount returns the number of distinct rotation states for this kind.
func (k Kind) RotationCount() int {
	return len(shapes[k])
}

// ShapeCells returns the anchor-relative cell offsets for a kind at the given
// rotation. The rotation index wraps modulo the kind's state count. The
// returned slice is shared reference data and must not be mutated.
func ShapeCells(k Kind, rotation int) []Cell {
	states := shapes[k]
	r := rotation % len(states)
	if r < 0 {
		r += len(states)
	}
	return states[r]
}

// Piece is a tetromino with a rotation state and an anchor position in board
// coordinates. Pieces are values: movement and rotation produce candidates
// that callers validate against the board before adopting.
type Piece struct {
	Kind     Kind
	Rotation int
	Row, Col int
}

// Cells returns the absolute board cells the piece occupies.
func (p Piece) Cells() []Cell {
	offsets := ShapeCells(p.Kind, p.Rotation)
	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = Cell{Row: p.Row + o.Row, Col: p.Col + o.Col}
	}
	return cells
}

// Moved returns a copy of the piece shifted by the given deltas.
func (p Piece) Moved(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}

// Rotated returns a copy of the piece advanced to its next rotation state.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % p.Kind.RotationCount()
	return p
}
