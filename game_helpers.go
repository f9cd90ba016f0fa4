package main

import (
	"fmt"
	"math/rand"

	"github.com/jimmiebfulton/game-of-life/model"
	"github.com/jimmiebfulton/game-of-life/utils"
)

// seedSimulation fills the current buffer with a random soup plus a couple of
// recognizable patterns when the board is big enough.
func seedSimulation(sim *model.Simulation, config utils.Config, rng *rand.Rand) {
	grid := sim.Current()
	grid.Randomize(rng, config.RandomDensity)

	rows, columns := sim.Shape()
	if rows >= 10 && columns >= 10 {
		grid.AddGlider(model.Cell{Row: 2, Column: 2})
		grid.AddBlinker(model.Cell{Row: rows / 2, Column: columns / 2})
	}
}

// reseedSimulation resets both buffers and seeds a fresh board
func reseedSimulation(sim *model.Simulation, config utils.Config, rng *rand.Rand) {
	sim.ClearAll()
	seedSimulation(sim, config, rng)
}

// shouldReseed reports whether the board died out or settled into a short
// cycle for long enough to warrant a restart.
func shouldReseed(population, stagnantCount int, config utils.Config) bool {
	if population == 0 {
		return true
	}
	return stagnantCount >= config.StagnationThreshold
}

// statusLine formats the bottom status row
func statusLine(generation int, sim *model.Simulation, stats *utils.Stats, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf(" gen %d | alive %d | %.1f gen/sec | avg pop %.1f | %s | space pauses, q quits",
		generation, sim.Current().CountAlive(), stats.GenerationsPerSecond, stats.AveragePopulation, state)
}
