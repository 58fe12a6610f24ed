package tetris

import "testing"

// fillRow fills an entire row, optionally leaving gaps at the given columns.
func fillRow(b *Board, row int, gaps ...int) {
	for col := 0; col < b.Width(); col++ {
		skip := false
		for _, g := range gaps {
			if col == g {
				skip = true
				break
			}
		}
		if !skip {
			b.cells[row][col] = cellValue(KindO)
		}
	}
}

func TestIsOccupiedBounds(t *testing.T) {
	b := NewBoard(10, 20)

	// Walls and floor block
	if !b.IsOccupied(5, -1) {
		t.Error("left wall should count as occupied")
	}
	if !b.IsOccupied(5, 10) {
		t.Error("right wall should count as occupied")
	}
	if !b.IsOccupied(20, 5) {
		t.Error("floor should count as occupied")
	}

	// Rows above the top are open
	if b.IsOccupied(-1, 5) {
		t.Error("cells above the top should be open")
	}

	// Empty in-bounds cell
	if b.IsOccupied(5, 5) {
		t.Error("empty cell should not be occupied")
	}

	// Filled cell
	b.Lock([]Cell{{5, 5}}, cellValue(KindT))
	if !b.IsOccupied(5, 5) {
		t.Error("locked cell should be occupied")
	}
}

func TestLockAndCell(t *testing.T) {
	b := NewBoard(10, 20)

	cells := []Cell{{3, 4}, {3, 5}, {4, 4}, {4, 5}}
	b.Lock(cells, cellValue(KindO))

	for _, c := range cells {
		if b.Cell(c.Row, c.Col) != cellValue(KindO) {
			t.Errorf("Cell(%d, %d) = %d, expected %d", c.Row, c.Col, b.Cell(c.Row, c.Col), cellValue(KindO))
		}
	}
	if b.FilledCount() != 4 {
		t.Errorf("FilledCount() = %d, expected 4", b.FilledCount())
	}

	// Fits rejects occupied cells and accepts free ones
	if b.Fits([]Cell{{3, 4}}) {
		t.Error("Fits should reject a locked cell")
	}
	if !b.Fits([]Cell{{0, 0}, {10, 7}}) {
		t.Error("Fits should accept free cells")
	}
}

func TestClearFullRowsEmpty(t *testing.T) {
	b := NewBoard(10, 20)

	if n := b.ClearFullRows(); n != 0 {
		t.Errorf("ClearFullRows() on empty board = %d, expected 0", n)
	}
}

func TestClearFullRowsSingle(t *testing.T) {
	b := NewBoard(10, 20)

	// Bottom row full, one marker cell above it
	fillRow(b, 19)
	b.Lock([]Cell{{18, 3}}, cellValue(KindT))

	if n := b.ClearFullRows(); n != 1 {
		t.Errorf("ClearFullRows() = %d, expected 1", n)
	}

	// Marker shifted down by one, bottom row otherwise empty
	if b.Cell(19, 3) != cellValue(KindT) {
		t.Error("cell above the cleared row should shift down")
	}
	if b.FilledCount() != 1 {
		t.Errorf("FilledCount() = %d, expected 1 after clearing", b.FilledCount())
	}
}

func TestClearFullRowsGapBlocksClear(t *testing.T) {
	b := NewBoard(10, 20)

	// Row 19 full except column 5: no clear
	fillRow(b, 19, 5)
	if n := b.ClearFullRows(); n != 0 {
		t.Errorf("ClearFullRows() with a gap = %d, expected 0", n)
	}

	// Plug the gap: now it clears
	b.Lock([]Cell{{19, 5}}, cellValue(KindI))
	if n := b.ClearFullRows(); n != 1 {
		t.Errorf("ClearFullRows() after plugging the gap = %d, expected 1", n)
	}
	if b.FilledCount() != 0 {
		t.Error("board should be empty after the only row cleared")
	}
}

func TestClearFullRowsMultiple(t *testing.T) {
	b := NewBoard(10, 20)

	// Four full rows with a partial row between them
	fillRow(b, 16)
	fillRow(b, 17)
	fillRow(b, 18, 0)
	fillRow(b, 19)

	if n := b.ClearFullRows(); n != 3 {
		t.Errorf("ClearFullRows() = %d, expected 3", n)
	}

	// The partial row compacts to the bottom
	if b.Cell(19, 0) != 0 {
		t.Error("gap column should remain empty after compaction")
	}
	if b.Cell(19, 1) == 0 {
		t.Error("partial row should have compacted to the bottom")
	}
}

func TestClearFullRowsLeavesNoFullRows(t *testing.T) {
	b := NewBoard(10, 20)

	// Stack several full and near-full rows
	for row := 12; row < 20; row++ {
		if row%3 == 0 {
			fillRow(b, row, row%10)
		} else {
			fillRow(b, row)
		}
	}

	b.ClearFullRows()

	for row := 0; row < b.Height(); row++ {
		if rowFull(b.cells[row]) {
			t.Errorf("row %d is still full after ClearFullRows", row)
		}
	}
}

func TestColumnStackDoesNotClear(t *testing.T) {
	b := NewBoard(10, 20)

	// Five O pieces stacked in the same two columns: 10 cells per column,
	// but no row is ever complete
	for i := 0; i < 5; i++ {
		top := 18 - i*2
		cells := []Cell{{top, 4}, {top, 5}, {top + 1, 4}, {top + 1, 5}}
		if !b.Fits(cells) {
			t.Fatalf("O piece %d should fit at row %d", i, top)
		}
		b.Lock(cells, cellValue(KindO))
	}

	if n := b.ClearFullRows(); n != 0 {
		t.Errorf("ClearFullRows() = %d, expected 0 for a column-only stack", n)
	}
	if b.FilledCount() != 20 {
		t.Errorf("FilledCount() = %d, expected 20", b.FilledCount())
	}
}
