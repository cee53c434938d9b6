package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(10, 10, 100, 2*time.Second)
	if s.TotalGenerations != 10 || s.GenerationsPerSecond != 5 || s.AveragePopulation != 100 {
		t.Fatalf("after first update: %+v", *s)
	}

	s.Update(11, 1, 200, 0)
	if s.GenerationsPerSecond != 5 {
		t.Fatal("zero duration must not change the rate")
	}
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.ActiveCells != 200 {
		t.Fatalf("ActiveCells = %d", s.ActiveCells)
	}
	if s.Runtime() < 0 {
		t.Fatal("negative runtime")
	}
}
