package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifegrid/model"
	"github.com/sheikhrachel/lifegrid/utils"
)

const configFile = "config.json"

// frame is one generation as handed to the renderer
type frame struct {
	width, height int
	alive         []model.Cell
}

func newLogger(w io.Writer, debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	if debug {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

func main() {
	// Load configuration - fallback to defaults if the file can't be read
	config, readErr, err := loadConfig(configFile)
	logger := newLogger(os.Stderr, config.Trace)
	if err != nil {
		level.Error(logger).Log("msg", "bad configuration", "err", err)
		os.Exit(1)
	}
	if readErr != nil {
		level.Info(logger).Log("msg", "using default configuration", "err", readErr)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = runGame(ctx, config, logger, model.NewTerminalRenderer()); err != nil {
		level.Error(logger).Log("msg", "simulation failed", "err", err)
		os.Exit(1)
	}
}

// runGame drives the simulation and the renderer until a stop condition,
// a cancelled context or an error.
func runGame(ctx context.Context, config utils.Config, logger log.Logger, renderer model.Renderer) error {
	eg, ctx := errgroup.WithContext(ctx)
	frames := make(chan frame)

	eg.Go(func() error {
		for f := range frames {
			if err := renderer.Clear(); err != nil {
				level.Warn(logger).Log("msg", "failed to clear screen", "err", err)
			}
			if err := renderer.Display(f.width, f.height, f.alive); err != nil {
				return errors.Wrap(err, "[runGame] render")
			}
		}
		return nil
	})

	eg.Go(func() error {
		defer close(frames)
		return simulate(ctx, config, logger, frames)
	})

	return eg.Wait()
}

// simulate is the driver loop: it owns exactly one current generation
func simulate(ctx context.Context, config utils.Config, logger log.Logger, frames chan<- frame) error {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid, err := seedGrid(config)
	if err != nil {
		return err
	}
	level.Info(logger).Log(
		"msg", "starting simulation",
		"width", grid.GetWidth(),
		"height", grid.GetHeight(),
		"initial_living", grid.CountLivingCells(),
		"memory_pool", config.UseMemoryPool,
		"bounded", config.UseBoundedGrid,
	)

	var (
		stats         = utils.NewStats()
		hist          history
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for generation := 0; ; generation++ {
		frameStart := time.Now()
		stats.Update(generation, grid.CountLivingCells(), grid.GetBoundingBoxSize(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if hist.observe(grid.Hash()) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if config.Render {
			select {
			case frames <- frame{width: grid.GetWidth(), height: grid.GetHeight(), alive: grid.Alive()}:
			case <-ctx.Done():
				return shutdown(ctx, logger, stats)
			}
		}
		logStatus(logger, grid, stats, stagnantCount)

		if stop, reason := checkStopConditions(stats.ActiveCells, stagnantCount, generation, config); stop {
			level.Info(logger).Log("msg", "stopping", "reason", reason, "gen", generation,
				"runtime", stats.Runtime(), "peak_pop", stats.PeakPopulation)
			return nil
		}

		if config.Trace {
			if err = traceAlive(logger, "old", grid); err != nil {
				return err
			}
		}

		next, err := nextGeneration(grid, config, pool)
		if err != nil {
			return errors.Wrapf(err, "[simulate] generation %d", generation)
		}

		if config.Trace {
			if err = traceAlive(logger, "new", next); err != nil {
				return err
			}
		}

		// Return old grid to pool if using memory pooling
		model.GridToPool(grid, pool)
		grid = next

		if !waitFrame(ctx.Done(), config.FrameRate) {
			return shutdown(ctx, logger, stats)
		}
	}
}

func shutdown(ctx context.Context, logger log.Logger, stats *utils.Stats) error {
	cause := context.Cause(ctx)
	logf, msg := level.Info, "shutting down gracefully"
	if !errors.Is(cause, context.Canceled) {
		logf, msg = level.Warn, "simulation interrupted"
	}
	logf(logger).Log(
		"msg", msg,
		"cause", cause,
		"generations", stats.TotalGenerations,
		"runtime", stats.Runtime(),
		"avg_pop", stats.AveragePopulation,
	)
	return nil
}
