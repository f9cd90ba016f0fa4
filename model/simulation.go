package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// historySize is how many recent generation fingerprints are kept for
// stagnation detection.
const historySize = 5

// Simulation owns two grids of identical shape: "previous" and "current".
// Tick exchanges their roles rather than copying cells, so the next
// generation is always computed from a frozen snapshot.
//
// A Simulation is not safe for concurrent use: Tick must run to completion
// before any other read or write of either buffer.
type Simulation struct {
	previous *Grid
	current  *Grid
	history  []string // recent fingerprints of "current", for cycle detection
}

// NewSimulation creates a simulation with two all-Dead grids of the
// specified dimensions.
func NewSimulation(rows, columns int) (*Simulation, error) {
	previous, err := NewGrid(rows, columns)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] previous buffer")
	}
	current, err := NewGrid(rows, columns)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] current buffer")
	}

	return &Simulation{
		previous: previous,
		current:  current,
	}, nil
}

// Current returns the grid holding the latest generation. Seeding mutates it
// before the first Tick; the renderer must only read it.
func (s *Simulation) Current() *Grid {
	return s.current
}

// Previous returns the grid holding the generation before the latest one
func (s *Simulation) Previous() *Grid {
	return s.previous
}

// Shape returns the fixed dimensions shared by both buffers
func (s *Simulation) Shape() (rows, columns int) {
	return s.current.rows, s.current.columns
}

// ClearAll clears both buffers and forgets the fingerprint history, resetting
// the simulation without reallocating.
func (s *Simulation) ClearAll() {
	s.previous.Clear()
	s.current.Clear()
	s.history = nil
}

// Tick advances the simulation by one generation. It swaps the two buffer
// roles, then writes the next state of every cell into "current", reading
// only from "previous" (the grid that was "current" before the swap).
func (s *Simulation) Tick() {
	s.previous, s.current = s.current, s.previous

	rows, columns := s.Shape()
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			cell := Cell{Row: row, Column: column}
			s.current.SetState(cell, s.previous.NextState(cell))
		}
	}
}

// TickParallel advances the simulation by one generation using one worker
// per CPU, each handling a band of rows. Every worker reads only "previous"
// and writes disjoint rows of "current", so the result is cell-for-cell
// identical to Tick.
func (s *Simulation) TickParallel() {
	s.previous, s.current = s.current, s.previous

	rows, columns := s.Shape()
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for column := 0; column < columns; column++ {
					cell := Cell{Row: row, Column: column}
					s.current.SetState(cell, s.previous.NextState(cell))
				}
			}
			return nil
		})
	}

	// Workers never return an error
	_ = eg.Wait()
}

// UpdateHistory records the current generation's fingerprint, keeping only
// the most recent entries.
func (s *Simulation) UpdateHistory() {
	s.history = append(s.history, s.current.Fingerprint())
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// Stagnant reports whether the latest recorded generation repeats one of the
// three generations before it, catching static boards and short oscillators.
func (s *Simulation) Stagnant() bool {
	if len(s.history) < 2 {
		return false
	}

	latest := s.history[len(s.history)-1]
	for lookback := 2; lookback <= 4; lookback++ {
		if len(s.history) < lookback+1 {
			break
		}
		if s.history[len(s.history)-lookback] == latest {
			return true
		}
	}

	return false
}
