package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/jimmiebfulton/game-of-life/rules"
)

// ErrInvalidDimensions is returned when a grid is requested with fewer than
// one row or one column.
var ErrInvalidDimensions = errors.New("grid dimensions must be at least 1x1")

// Grid is a dense 2D board of cell states with dimensions fixed at
// construction. It owns its storage exclusively; wrap-around indexing is
// handled by Neighbors, never by direct access.
type Grid struct {
	rows    int
	columns int
	cells   [][]CellState
}

// NewGrid creates an all-Dead grid with the specified dimensions
func NewGrid(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] requested %dx%d", rows, columns)
	}

	cells := make([][]CellState, rows)
	for i := range cells {
		cells[i] = make([]CellState, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns in the grid
func (g *Grid) Columns() int {
	return g.columns
}

// SetState sets a cell to the given state. The coordinates must already be
// in range; out-of-range access panics rather than wrapping.
func (g *Grid) SetState(cell Cell, state CellState) {
	g.cells[cell.Row][cell.Column] = state
}

// GetState returns the state of a cell. Same in-range precondition as SetState.
func (g *Grid) GetState(cell Cell) CellState {
	return g.cells[cell.Row][cell.Column]
}

// Clear sets every cell to Dead
func (g *Grid) Clear() {
	for row := range g.cells {
		for column := range g.cells[row] {
			g.cells[row][column] = Dead
		}
	}
}

// NextState computes what a cell's state will be after one generation, given
// the current content of this grid. It never mutates the grid: tick evaluates
// it against the frozen "previous" buffer and writes into "current".
func (g *Grid) NextState(cell Cell) CellState {
	aliveNeighbors := 0
	for _, neighbor := range Neighbors(cell, g.rows, g.columns) {
		if g.cells[neighbor.Row][neighbor.Column] == Alive {
			aliveNeighbors++
		}
	}

	if rules.ApplyConwayRules(aliveNeighbors, g.cells[cell.Row][cell.Column] == Alive) {
		return Alive
	}
	return Dead
}

// CountAlive returns the total number of living cells
func (g *Grid) CountAlive() (count int) {
	for row := range g.cells {
		for column := range g.cells[row] {
			if g.cells[row][column] == Alive {
				count++
			}
		}
	}
	return
}

// Fingerprint returns an MD5 hash of the grid content, used for cycle
// detection across generations.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for row := range g.cells {
		for column := range g.cells[row] {
			h.Write([]byte{byte(g.cells[row][column])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize sets each cell to Alive with the given probability
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for row := range g.cells {
		for column := range g.cells[row] {
			if rng.Float64() < density {
				g.cells[row][column] = Alive
			} else {
				g.cells[row][column] = Dead
			}
		}
	}
}

// AddGlider places a glider pattern with its top-left corner at the given
// cell, wrapping around the edges if necessary.
func (g *Grid) AddGlider(cell Cell) {
	pattern := [][]CellState{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}

	for rowOffset, patternRow := range pattern {
		for columnOffset, state := range patternRow {
			g.SetState(Cell{
				Row:    offset(cell.Row, rowOffset, g.rows),
				Column: offset(cell.Column, columnOffset, g.columns),
			}, state)
		}
	}
}

// AddBlinker places a horizontal blinker oscillator starting at the given
// cell, wrapping around the edges if necessary.
func (g *Grid) AddBlinker(cell Cell) {
	for columnOffset := 0; columnOffset < 3; columnOffset++ {
		g.SetState(Cell{
			Row:    cell.Row,
			Column: offset(cell.Column, columnOffset, g.columns),
		}, Alive)
	}
}
