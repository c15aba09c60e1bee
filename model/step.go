package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifegrid/rules"
)

// Step computes the next generation into a brand-new grid. g is only read.
func Step(g *Grid) (*Grid, error) {
	return StepPooled(g, nil)
}

// StepPooled is Step with the output grid drawn from pool when pool is not nil
func StepPooled(g *Grid, pool *GridPool) (*Grid, error) {
	next, err := newGeneration(g, pool)
	if err != nil {
		return nil, errors.Wrap(err, "[Step]")
	}

	for r := 0; r < g.width; r++ {
		for c := 0; c < g.height; c++ {
			if rules.NextState(g.countNeighbors(r, c), g.cells[g.index(r, c)]) {
				next.setAlive(r, c)
			}
		}
	}

	return next, nil
}

// StepBounded calculates the next generation only around the living cells.
// A cell further than one step from every living cell stays dead, so the
// result equals Step.
func StepBounded(g *Grid, pool *GridPool) (*Grid, error) {
	next, err := newGeneration(g, pool)
	if err != nil {
		return nil, errors.Wrap(err, "[StepBounded]")
	}

	minRow, maxRow, minCol, maxCol, ok := g.bounds()
	if !ok {
		return next, nil
	}

	// Process only the active region + 1 margin
	minRow = max(0, minRow-1)
	maxRow = min(g.width-1, maxRow+1)
	minCol = max(0, minCol-1)
	maxCol = min(g.height-1, maxCol+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if rules.NextState(g.countNeighbors(r, c), g.cells[g.index(r, c)]) {
				next.setAlive(r, c)
			}
		}
	}

	return next, nil
}

func newGeneration(g *Grid, pool *GridPool) (*Grid, error) {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}
