package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridPoolGetReturnsDeadGrid(t *testing.T) {
	pool := NewGridPool()

	used := mustGrid(t, 6, 6, Cell{1, 1}, Cell{5, 5})
	GridToPool(used, pool)

	g, err := pool.Get(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.GetWidth())
	assert.Equal(t, 3, g.GetHeight())
	assert.Len(t, g.cells, 12)
	assert.Empty(t, g.Alive())
	requireConsistent(t, g)

	g, err = pool.Get(8, 8)
	require.NoError(t, err)
	assert.Len(t, g.cells, 64)
	requireConsistent(t, g)
}

func TestGridPoolGetRejectsBadDimensions(t *testing.T) {
	_, err := NewGridPool().Get(0, 3)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}

func TestGridToPoolNilPool(t *testing.T) {
	assert.NotPanics(t, func() {
		GridToPool(mustGrid(t, 2, 2), nil)
		GridToPool(nil, NewGridPool())
	})
}
