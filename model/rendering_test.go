package model

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, columns, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(columns, rows)
	return screen
}

func cellForeground(t *testing.T, screen tcell.Screen, cell Cell) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(cell.Column, cell.Row)
	fg, _, _ := style.Decompose()
	return fg
}

func TestDrawFullPaintsEveryCell(t *testing.T) {
	screen := newTestScreen(t, 5, 5)
	defer screen.Fini()
	renderer := NewScreenRenderer(screen)

	sim := mustSimulation(t, 5, 5)
	sim.Current().SetState(Cell{Row: 1, Column: 3}, Alive)

	renderer.DrawFull(sim.Current())
	renderer.Show()

	for row := 0; row < 5; row++ {
		for column := 0; column < 5; column++ {
			cell := Cell{Row: row, Column: column}
			ch, _, _, _ := screen.GetContent(column, row)
			if ch != cellRune {
				t.Fatalf("cell %v drawn as %q, expected the block rune", cell, ch)
			}
			want := tcell.ColorBlack
			if sim.Current().GetState(cell) == Alive {
				want = tcell.ColorWhite
			}
			if got := cellForeground(t, screen, cell); got != want {
				t.Errorf("cell %v painted %v, expected %v", cell, got, want)
			}
		}
	}
}

func TestDrawDiffRepaintsOnlyChangedCells(t *testing.T) {
	screen := newTestScreen(t, 5, 5)
	defer screen.Fini()
	renderer := NewScreenRenderer(screen)

	sim := mustSimulation(t, 5, 5)
	sim.Current().AddBlinker(Cell{Row: 2, Column: 1})

	renderer.DrawFull(sim.Current())
	sim.Tick()
	renderer.DrawDiff(sim)
	renderer.Show()

	// Vertical phase: (1,2) and (3,2) were born, (2,1) and (2,3) died,
	// (2,2) survived and keeps its earlier paint
	for _, cell := range []Cell{{1, 2}, {2, 2}, {3, 2}} {
		if got := cellForeground(t, screen, cell); got != tcell.ColorWhite {
			t.Errorf("alive cell %v painted %v, expected white", cell, got)
		}
	}
	for _, cell := range []Cell{{2, 1}, {2, 3}} {
		if got := cellForeground(t, screen, cell); got != tcell.ColorBlack {
			t.Errorf("dead cell %v painted %v, expected black", cell, got)
		}
	}
}

func TestSizeReportsRowsThenColumns(t *testing.T) {
	screen := newTestScreen(t, 30, 12)
	defer screen.Fini()
	renderer := NewScreenRenderer(screen)

	rows, columns := renderer.Size()
	if rows != 12 || columns != 30 {
		t.Fatalf("Size() = (%d, %d), expected (12, 30)", rows, columns)
	}
}

func TestDrawStatusFillsTheRow(t *testing.T) {
	screen := newTestScreen(t, 20, 5)
	defer screen.Fini()
	renderer := NewScreenRenderer(screen)

	renderer.DrawStatus(4, "gen 1")
	renderer.Show()

	wantPrefix := []rune("gen 1")
	for x, want := range wantPrefix {
		ch, _, _, _ := screen.GetContent(x, 4)
		if ch != want {
			t.Fatalf("status column %d = %q, expected %q", x, ch, want)
		}
	}
	ch, _, _, _ := screen.GetContent(19, 4)
	if ch != ' ' {
		t.Errorf("status padding = %q, expected a space", ch)
	}
}
