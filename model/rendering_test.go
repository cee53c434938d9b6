package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayPlain(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 0},
		{0, 1, 1},
	})
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf, false).Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	want := "█··\n·██\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("Display = %q, want %q", got, want)
	}
}

func TestDisplayCustomGlyphs(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1}})
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf, Live: "#", Dead: "."}
	if err := r.Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if got := buf.String(); got != ".#\n\n" {
		t.Fatalf("Display = %q", got)
	}
}

func TestDisplayColor(t *testing.T) {
	g := mustGrid(t, [][]int{{1}})
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf, true).Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") || !strings.Contains(out, gridPosLive) {
		t.Fatalf("expected ANSI-coloured live glyph, got %q", out)
	}
}
