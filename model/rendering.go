package model

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosLive = "█"
	gridPosDead = "·"
)

// TerminalRenderer prints grids as text, one line per row
type TerminalRenderer struct {
	Out   io.Writer
	Live  string
	Dead  string
	Color bool
}

// NewTerminalRenderer creates a renderer with the default glyphs
func NewTerminalRenderer(out io.Writer, color bool) *TerminalRenderer {
	return &TerminalRenderer{Out: out, Live: gridPosLive, Dead: gridPosDead, Color: color}
}

// Display renders the grid followed by a blank line
func (r *TerminalRenderer) Display(g *Grid) error {
	var (
		au   = aurora.NewAurora(r.Color)
		live = au.Green(orDefault(r.Live, gridPosLive)).String()
		dead = au.Faint(orDefault(r.Dead, gridPosDead)).String()
		w    = bufio.NewWriter(r.Out)
	)

	g.Each(func(row, col int, alive bool) {
		if alive {
			w.WriteString(live)
		} else {
			w.WriteString(dead)
		}
		if col == g.width-1 {
			w.WriteByte('\n')
		}
	})
	w.WriteByte('\n')
	return w.Flush()
}

func orDefault(glyph, fallback string) string {
	if glyph == "" {
		return fallback
	}
	return glyph
}
