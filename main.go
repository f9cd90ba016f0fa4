package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jimmiebfulton/game-of-life/model"
	"github.com/jimmiebfulton/game-of-life/utils"
)

// command is a keyboard action delivered by the input goroutine
type command int

const (
	commandQuit command = iota
	commandPause
	commandRedraw
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		config = utils.DefaultConfig()
	}

	screen, err := model.InitScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if err = run(config, screen); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(config utils.Config, screen tcell.Screen) error {
	renderer := model.NewScreenRenderer(screen)

	rows, columns, statusRow := gridDimensions(config, renderer)
	sim, err := model.NewSimulation(rows, columns)
	if err != nil {
		return err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	seedSimulation(sim, config, rng)

	stats := utils.NewStats()

	// Handle SIGINT/SIGTERM gracefully; Ctrl+C also arrives as a key event
	// while the terminal is in raw mode
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	commands := make(chan command, 1)
	go pollInput(screen, commands)

	// First frame paints everything; afterwards only changed cells
	renderer.DrawFull(sim.Current())
	renderer.Show()

	var (
		generation    = 0
		stagnantCount = 0
		paused        = false
		lastFrameTime = time.Now()
	)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			return nil

		case cmd := <-commands:
			switch cmd {
			case commandQuit:
				return nil
			case commandPause:
				paused = !paused
			case commandRedraw:
				renderer.DrawFull(sim.Current())
				renderer.Sync()
			}
			if config.ShowStatus {
				renderer.DrawStatus(statusRow, statusLine(generation, sim, stats, paused))
				renderer.Show()
			}

		case <-ticker.C:
			if paused {
				continue
			}

			frameStart := time.Now()
			if config.UseParallel {
				sim.TickParallel()
			} else {
				sim.Tick()
			}
			generation++

			renderer.DrawDiff(sim)

			population := sim.Current().CountAlive()
			stats.Update(generation, population, time.Since(lastFrameTime))
			lastFrameTime = frameStart

			sim.UpdateHistory()
			if sim.Stagnant() {
				stagnantCount++
			} else {
				stagnantCount = 0
			}

			if config.ShowStatus {
				renderer.DrawStatus(statusRow, statusLine(generation, sim, stats, paused))
			}
			renderer.Show()

			if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
				return nil
			}

			if config.AutoRestart && shouldReseed(population, stagnantCount, config) {
				reseedSimulation(sim, config, rng)
				renderer.DrawFull(sim.Current())
				renderer.Show()
				stagnantCount = 0
			}
		}
	}
}

// gridDimensions resolves the configured grid shape, falling back to the
// terminal size. A row is reserved for the status line when it is shown and
// the grid is sized from the terminal.
func gridDimensions(config utils.Config, renderer *model.ScreenRenderer) (rows, columns, statusRow int) {
	rows, columns = config.Rows, config.Columns
	screenRows, screenColumns := renderer.Size()

	if columns <= 0 {
		columns = screenColumns
	}
	if rows <= 0 {
		rows = screenRows
		if config.ShowStatus && rows > 1 {
			rows--
		}
	}

	return rows, columns, rows
}

// pollInput forwards keyboard and resize events as commands until the screen
// is shut down or the game quits.
func pollInput(screen tcell.Screen, commands chan<- command) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				commands <- commandQuit
				return
			case ev.Rune() == ' ':
				commands <- commandPause
			}
		case *tcell.EventResize:
			commands <- commandRedraw
		}
	}
}
