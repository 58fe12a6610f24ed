package tetris

// Board is the fixed-size playfield. Each cell holds 0 when empty or
// 1+Kind when filled, so a locked cell remembers which kind it came from
// (and therefore its color).
type Board struct {
	width  int
	height int
	cells  [][]int8
}

// cellValue returns the board cell value for a locked piece of this kind.
func cellValue(k Kind) int8 {
	return int8(k) + 1
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]int8, height)
	for row := range cells {
		cells[row] = make([]int8, width)
	}
	return &Board{width: width, height: height, cells: cells}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the raw value at (row, col), or 0 for out-of-bounds.
func (b *Board) Cell(row, col int) int8 {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0
	}
	return b.cells[row][col]
}

// IsOccupied reports whether a piece cell may not occupy (row, col).
// The floor and both walls count as occupied so collision checks need no
// separate bounds test. Rows above the top are open: pieces enter the well
// from there.
func (b *Board) IsOccupied(row, col int) bool {
	if col < 0 || col >= b.width || row >= b.height {
		return true
	}
	if row < 0 {
		return false
	}
	return b.cells[row][col] != 0
}

// Fits reports whether every given cell is free.
func (b *Board) Fits(cells []Cell) bool {
	for _, c := range cells {
		if b.IsOccupied(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// Lock fills the given cells with the given value. Callers must have
// verified the cells with Fits; locking is how a piece becomes part of
// the board.
func (b *Board) Lock(cells []Cell, value int8) {
	for _, c := range cells {
		if c.Row < 0 || c.Row >= b.height || c.Col < 0 || c.Col >= b.width {
			continue
		}
		b.cells[c.Row][c.Col] = value
	}
}

// ClearFullRows removes every completely filled row, shifts the rows above
// down, and refills the top with empty rows. Returns the number of rows
// cleared (at most 4 per locked piece).
func (b *Board) ClearFullRows() int {
	kept := make([][]int8, 0, b.height)
	for _, row := range b.cells {
		if rowFull(row) {
			continue
		}
		kept = append(kept, row)
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]int8, cleared, b.height)
	for i := range fresh {
		fresh[i] = make([]int8, b.width)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

func rowFull(row []int8) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}

// FilledCount returns the number of filled cells on the board.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.cells {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
