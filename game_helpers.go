package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifegrid/model"
	"github.com/sheikhrachel/lifegrid/utils"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// history remembers recent generations to spot still lifes and short cycles
type history struct {
	hashes []string
}

// observe reports whether hash repeats one of the last three generations,
// then records it.
func (h *history) observe(hash string) bool {
	stagnant := false
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// loadConfig reads the config file. An unreadable file yields the defaults
// and the read error in readErr; a malformed or invalid file is an error.
func loadConfig(filename string) (config utils.Config, readErr, err error) {
	data, readErr := os.ReadFile(filename)
	if readErr != nil {
		return utils.DefaultConfig(), readErr, nil
	}

	config, err = utils.ParseConfig(data)
	if err != nil {
		return config, nil, errors.Wrapf(err, "[loadConfig] file: %s", filename)
	}
	return config, nil, nil
}

// seedGrid builds the first generation from the configured seed
func seedGrid(config utils.Config) (*model.Grid, error) {
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[seedGrid]")
	}

	for _, c := range config.Seed {
		if err = grid.SetAlive(c.Row, c.Col); err != nil {
			return nil, errors.Wrap(err, "[seedGrid] seed cell")
		}
	}

	if config.RandomDensity > 0 {
		seed := config.RandomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		for r := 0; r < config.Width; r++ {
			for c := 0; c < config.Height; c++ {
				if rng.Float64() < config.RandomDensity {
					if err = grid.SetAlive(r, c); err != nil {
						return nil, errors.Wrap(err, "[seedGrid] random cell")
					}
				}
			}
		}
	}

	return grid, nil
}

// nextGeneration steps the grid the way the configuration asks for
func nextGeneration(grid *model.Grid, config utils.Config, pool *model.GridPool) (*model.Grid, error) {
	if config.UseBoundedGrid {
		return model.StepBounded(grid, pool)
	}
	return model.StepPooled(grid, pool)
}

// checkStopConditions determines if the driver should stop stepping
func checkStopConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, "maximum generations reached"
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// traceAlive logs every living cell with its neighbor count
func traceAlive(logger log.Logger, label string, grid *model.Grid) error {
	for _, c := range grid.Alive() {
		n, err := model.CountNeighbors(grid, c.Row, c.Col)
		if err != nil {
			return errors.Wrap(err, "[traceAlive]")
		}
		level.Debug(logger).Log("grid", label, "row", c.Row, "col", c.Col, "live_neighbors", n)
	}
	return nil
}

// logStatus shows the current game status
func logStatus(logger log.Logger, grid *model.Grid, stats *utils.Stats, stagnantCount int) {
	density := float64(stats.ActiveCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100
	level.Info(logger).Log(
		"gen", stats.TotalGenerations,
		"living", stats.ActiveCells,
		"density", density,
		"bounding_box", stats.BoundingBoxSize,
		"gen_per_sec", stats.GenerationsPerSecond,
		"avg_pop", stats.AveragePopulation,
		"stagnant", stagnantCount,
	)
}

// waitFrame sleeps for one frame or until done is closed
func waitFrame(done <-chan struct{}, frameRate time.Duration) bool {
	if frameRate <= 0 {
		select {
		case <-done:
			return false
		default:
			return true
		}
	}

	timer := time.NewTimer(frameRate)
	defer timer.Stop()
	select {
	case <-done:
		return false
	case <-timer.C:
		return true
	}
}
