package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generations the caller no longer needs
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid from the pool, resized to the given dimensions
func (p *GridPool) Get(width, height int) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrapf(err, "[GridPool.Get] width: %d, height: %d", width, height)
	}
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g, nil
}

// Put hands a grid back. The caller must not use it afterwards.
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
