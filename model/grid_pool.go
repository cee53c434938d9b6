package model

import "sync"

// GridToPool returns a grid to the pool for reuse.
// The caller must be the grid's only owner.
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles the buffers of discarded generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the given dimensions
func (p *GridPool) Get(height, width int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(height, width)
	return g
}

// Put hands a grid back to the pool; it must not be read afterwards
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
