package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const cellRune = '█'

// InitScreen creates and initializes a real terminal screen
func InitScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[InitScreen] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[InitScreen] failed to initialize screen")
	}
	return screen, nil
}

// ScreenRenderer paints a simulation onto a tcell screen. After the first
// full paint it only repaints cells whose state changed between the
// "previous" and "current" buffers.
type ScreenRenderer struct {
	screen     tcell.Screen
	aliveStyle tcell.Style
	deadStyle  tcell.Style
}

// NewScreenRenderer wraps an initialized screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen:     screen,
		aliveStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		deadStyle:  tcell.StyleDefault.Foreground(tcell.ColorBlack),
	}
}

// Size returns the screen dimensions as grid rows and columns
func (r *ScreenRenderer) Size() (rows, columns int) {
	columns, rows = r.screen.Size()
	return rows, columns
}

// DrawFull paints every cell of the grid, used for the first frame and after
// a resize or reseed.
func (r *ScreenRenderer) DrawFull(g *Grid) {
	r.screen.Clear()
	for row := 0; row < g.Rows(); row++ {
		for column := 0; column < g.Columns(); column++ {
			r.drawCell(Cell{Row: row, Column: column}, g.GetState(Cell{Row: row, Column: column}))
		}
	}
}

// DrawDiff repaints only the cells whose state changed in the last tick
func (r *ScreenRenderer) DrawDiff(sim *Simulation) {
	rows, columns := sim.Shape()
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			cell := Cell{Row: row, Column: column}
			state := sim.Current().GetState(cell)
			if sim.Previous().GetState(cell) != state {
				r.drawCell(cell, state)
			}
		}
	}
}

func (r *ScreenRenderer) drawCell(cell Cell, state CellState) {
	style := r.deadStyle
	if state == Alive {
		style = r.aliveStyle
	}
	r.screen.SetContent(cell.Column, cell.Row, cellRune, nil, style)
}

// DrawStatus writes a status line at the given screen row, padded to the
// full screen width.
func (r *ScreenRenderer) DrawStatus(row int, text string) {
	width, _ := r.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	line := []rune(text)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(line) {
			ch = line[x]
		}
		r.screen.SetContent(x, row, ch, nil, style)
	}
}

// Show flushes queued updates to the terminal
func (r *ScreenRenderer) Show() {
	r.screen.Show()
}

// Sync forces a full terminal repaint, used after a resize event
func (r *ScreenRenderer) Sync() {
	r.screen.Sync()
}
