package model

import (
	"crypto/md5"
	"fmt"
)

// Grid is a fixed-size toroidal board of dead/alive cells.
// A Grid never changes after construction; each generation is a new Grid.
type Grid struct {
	width  int
	height int
	cells  [][]bool
	buf    []bool // backing array shared by the rows of cells
}

// NewGrid creates a grid from rows of 0/1 values.
// It fails with a *DimensionError if the data is not exactly height rows of width
// cells or holds anything other than 0 and 1.
func NewGrid(height, width int, values [][]int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, &DimensionError{Height: height, Width: width, Row: -1, Col: -1, Reason: "dimensions must be at least 1x1"}
	}
	if len(values) != height {
		return nil, &DimensionError{
			Height: height, Width: width, Row: -1, Col: -1,
			Reason: fmt.Sprintf("got %d rows", len(values)),
		}
	}

	g := newGrid(height, width)
	for r, row := range values {
		if len(row) != width {
			return nil, &DimensionError{
				Height: height, Width: width, Row: r, Col: -1,
				Reason: fmt.Sprintf("row has %d cells", len(row)),
			}
		}
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				g.cells[r][c] = true
			default:
				return nil, &DimensionError{
					Height: height, Width: width, Row: r, Col: c,
					Reason: fmt.Sprintf("value %d is not 0 or 1", v),
				}
			}
		}
	}
	return g, nil
}

// Blank creates an all-dead grid
func Blank(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, &DimensionError{Height: height, Width: width, Row: -1, Col: -1, Reason: "dimensions must be at least 1x1"}
	}
	return newGrid(height, width), nil
}

// newGrid allocates the rows over a single backing slice
func newGrid(height, width int) *Grid {
	g := &Grid{}
	g.reset(height, width)
	return g
}

// reset resizes the grid to the given dimensions and kills every cell
func (g *Grid) reset(height, width int) {
	g.width = width
	g.height = height

	if cap(g.buf) < width*height {
		g.buf = make([]bool, width*height)
	} else {
		g.buf = g.buf[:width*height]
		clear(g.buf)
	}
	if cap(g.cells) < height {
		g.cells = make([][]bool, height)
	}
	g.cells = g.cells[:height]
	for i := range g.cells {
		start := width * i
		g.cells[i] = g.buf[start : start+width : start+width]
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// wrap maps any coordinate pair onto the torus
func (g *Grid) wrap(row, col int) (int, int) {
	return ((row % g.height) + g.height) % g.height, ((col % g.width) + g.width) % g.width
}

// Get returns whether the cell is alive. Coordinates wrap around both axes.
func (g *Grid) Get(row, col int) bool {
	row, col = g.wrap(row, col)
	return g.cells[row][col]
}

// NeighborCount sums the 8 Moore neighbors of a cell with wrap-around indexing.
// Every cell has exactly 8 neighbors; on grids narrower than 3 cells some of
// them are the same physical cell and are counted once per direction.
func (g *Grid) NeighborCount(row, col int) int {
	row, col = g.wrap(row, col)

	var (
		up    = (row - 1 + g.height) % g.height
		down  = (row + 1) % g.height
		left  = (col - 1 + g.width) % g.width
		right = (col + 1) % g.width
		count = 0
	)
	for _, r := range [3]int{up, row, down} {
		for _, c := range [3]int{left, col, right} {
			if g.cells[r][c] {
				count++
			}
		}
	}
	if g.cells[row][col] {
		count--
	}
	return count
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(row, col int, alive bool)) {
	for r := range g.height {
		for c := range g.width {
			fn(r, c, g.cells[r][c])
		}
	}
}

// Snapshot returns a copy of the cells as rows of 0/1 values
func (g *Grid) Snapshot() [][]int {
	out := make([][]int, g.height)
	for r := range g.height {
		out[r] = make([]int, g.width)
		for c := range g.width {
			if g.cells[r][c] {
				out[r][c] = 1
			}
		}
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.height {
		for c := range g.width {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for r := range g.height {
		for c := range g.width {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the dimensions and cell states
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.height, g.width)
	for r := range g.height {
		for c := range g.width {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
