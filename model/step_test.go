package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepFunc func(*Grid) (*Grid, error)

func steppers() map[string]stepFunc {
	pool := NewGridPool()
	return map[string]stepFunc{
		"full":           Step,
		"pooled":         func(g *Grid) (*Grid, error) { return StepPooled(g, pool) },
		"bounded":        func(g *Grid) (*Grid, error) { return StepBounded(g, nil) },
		"bounded pooled": func(g *Grid) (*Grid, error) { return StepBounded(g, pool) },
	}
}

func aliveSet(g *Grid) map[Cell]bool {
	set := make(map[Cell]bool)
	for _, c := range g.Alive() {
		set[c] = true
	}
	return set
}

func cellSet(cells ...Cell) map[Cell]bool {
	set := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

func TestStepBlockWithTail(t *testing.T) {
	for name, step := range steppers() {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, 5, 5, Cell{1, 1}, Cell{1, 2}, Cell{1, 3}, Cell{2, 1}, Cell{2, 2})

			next, err := step(g)
			require.NoError(t, err)

			assert.Equal(t, []Cell{{0, 2}, {1, 1}, {1, 3}, {2, 1}, {2, 3}}, next.Alive())
			requireConsistent(t, next)
		})
	}
}

func TestStepBlockIsStill(t *testing.T) {
	block := []Cell{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	sizes := []struct{ width, height int }{{4, 4}, {6, 6}, {5, 9}}

	for name, step := range steppers() {
		for _, size := range sizes {
			g := mustGrid(t, size.width, size.height, block...)

			next, err := step(g)
			require.NoError(t, err, name)
			assert.Equal(t, cellSet(block...), aliveSet(next), "%s on %dx%d", name, size.width, size.height)
			requireConsistent(t, next)
		}
	}
}

func TestStepBlinker(t *testing.T) {
	horizontal := []Cell{{1, 2}, {2, 2}, {3, 2}}
	vertical := []Cell{{2, 1}, {2, 2}, {2, 3}}

	for name, step := range steppers() {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, 5, 5, horizontal...)

			first, err := step(g)
			require.NoError(t, err)
			assert.Equal(t, cellSet(vertical...), aliveSet(first))

			second, err := step(first)
			require.NoError(t, err)
			assert.Equal(t, cellSet(horizontal...), aliveSet(second))
			assert.True(t, g.Equal(second))
		})
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := mustGrid(t, 5, 5, Cell{1, 2}, Cell{2, 2}, Cell{3, 2})
	before, err := g.CloneIntoNewGeneration()
	require.NoError(t, err)

	next, err := Step(g)
	require.NoError(t, err)

	assert.NotSame(t, g, next)
	assert.True(t, g.Equal(before))
	assert.Equal(t, before.Alive(), g.Alive())
}

func TestStepEdgesDoNotWrap(t *testing.T) {
	// A blinker lying on the border loses the cells that would fall off.
	g := mustGrid(t, 5, 5, Cell{0, 1}, Cell{0, 2}, Cell{0, 3})

	next, err := Step(g)
	require.NoError(t, err)
	assert.Equal(t, cellSet(Cell{0, 2}, Cell{1, 2}), aliveSet(next))
}

func TestStepEmptyGrid(t *testing.T) {
	for name, step := range steppers() {
		next, err := step(mustGrid(t, 3, 7))
		require.NoError(t, err, name)
		assert.Empty(t, next.Alive(), name)
		assert.Equal(t, 3, next.GetWidth(), name)
		assert.Equal(t, 7, next.GetHeight(), name)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	// Glider plus scattered debris on a non-square board.
	seed := []Cell{
		{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
		{7, 3}, {7, 4}, {8, 4}, {9, 9}, {9, 10}, {10, 9}, {11, 0},
	}
	a := mustGrid(t, 12, 11, seed...)
	b := mustGrid(t, 12, 11, seed...)

	steps := steppers()
	want := a
	got := b
	for i := 0; i < 20; i++ {
		var err error
		want, err = Step(want)
		require.NoError(t, err)

		for name, step := range steps {
			other, err := step(got)
			require.NoError(t, err)
			require.True(t, want.Equal(other), name)
			requireConsistent(t, other)
		}
		got = want
	}
}
