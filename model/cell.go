package model

// Cell identifies a single grid position by row and column.
type Cell struct {
	Row    int
	Column int
}

// CellState is the binary state of a cell. Dead is the zero value.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// String returns a human-readable name for the state
func (s CellState) String() string {
	if s == Alive {
		return "Alive"
	}
	return "Dead"
}

/*
Neighbors returns the 8 toroidal neighbors of a cell on a rows x columns grid.

The enumeration order is fixed: the row offset is the outer loop over
{-1, 0, 1}, the column offset the inner, skipping the (0, 0) offset. Callers
(and tests) rely on this exact sequence. All wrap-around indexing lives here;
direct grid access stays strict-bounds.
*/
func Neighbors(cell Cell, rows, columns int) [8]Cell {
	var neighbors [8]Cell

	i := 0
	for rowOffset := -1; rowOffset <= 1; rowOffset++ {
		for columnOffset := -1; columnOffset <= 1; columnOffset++ {
			if rowOffset == 0 && columnOffset == 0 {
				continue
			}
			neighbors[i] = Cell{
				Row:    offset(cell.Row, rowOffset, rows),
				Column: offset(cell.Column, columnOffset, columns),
			}
			i++
		}
	}

	return neighbors
}

// offset shifts a position by delta and wraps it into [0, size), never
// returning a negative coordinate even when position+delta is negative.
func offset(position, delta, size int) int {
	return ((position + delta) + size) % size
}
