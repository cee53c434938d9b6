package model

import "fmt"

// DimensionError reports initial cell data that does not form a valid grid.
// Row and Col are -1 when the problem is not tied to a single row or cell.
type DimensionError struct {
	Height int
	Width  int
	Row    int
	Col    int
	Reason string
}

func (e *DimensionError) Error() string {
	switch {
	case e.Col >= 0:
		return fmt.Sprintf("grid %dx%d: cell (%d,%d): %s", e.Height, e.Width, e.Row, e.Col, e.Reason)
	case e.Row >= 0:
		return fmt.Sprintf("grid %dx%d: row %d: %s", e.Height, e.Width, e.Row, e.Reason)
	default:
		return fmt.Sprintf("grid %dx%d: %s", e.Height, e.Width, e.Reason)
	}
}
