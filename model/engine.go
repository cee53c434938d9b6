package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Engine computes generations from a grid and a rule configuration
type Engine struct {
	workers int
	pool    *GridPool
}

// NewEngine creates an engine splitting each step across the given number of
// workers; workers <= 0 means one per CPU. A nil pool allocates every generation.
func NewEngine(workers int, pool *GridPool) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{workers: workers, pool: pool}
}

// Workers returns the number of row bands a step is split into
func (e *Engine) Workers() int {
	return e.workers
}

// Step returns the next generation of g under rc. The input grid is only read.
func (e *Engine) Step(g *Grid, rc rules.Configuration) *Grid {
	next := e.alloc(g.height, g.width)

	numWorkers := min(e.workers, g.height)
	if numWorkers <= 1 {
		stepRows(g, next, rc, 0, g.height)
		return next
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		// Each band writes disjoint rows of next and reads only g.
		eg.Go(func() error {
			stepRows(g, next, rc, startRow, endRow)
			return nil
		})
	}
	_ = eg.Wait() // bands never fail

	return next
}

// StepN applies Step n times. For n <= 0 it returns g itself.
// Intermediate generations are handed back to the engine's pool.
func (e *Engine) StepN(g *Grid, rc rules.Configuration, n int) *Grid {
	cur := g
	for range max(n, 0) {
		next := e.Step(cur, rc)
		if cur != g {
			GridToPool(cur, e.pool)
		}
		cur = next
	}
	return cur
}

// Release returns a grid the caller no longer references to the engine's pool
func (e *Engine) Release(g *Grid) {
	GridToPool(g, e.pool)
}

func (e *Engine) alloc(height, width int) *Grid {
	if e.pool != nil {
		return e.pool.Get(height, width)
	}
	return newGrid(height, width)
}

// stepRows fills rows [startRow, endRow) of next, which must start all dead
func stepRows(g, next *Grid, rc rules.Configuration, startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c := 0; c < g.width; c++ {
			if rc.Next(g.cells[r][c], g.NeighborCount(r, c)) {
				next.cells[r][c] = true
			}
		}
	}
}

var sequential = &Engine{workers: 1}

// Step computes one generation on the calling goroutine
func Step(g *Grid, rc rules.Configuration) *Grid {
	return sequential.Step(g, rc)
}

// StepN computes n generations on the calling goroutine
func StepN(g *Grid, rc rules.Configuration, n int) *Grid {
	return sequential.StepN(g, rc, n)
}
