package systems

import (
	"slices"
	"testing"

	"github.com/pthm-cable/flock/components"
)

func TestSpatialIndexChains(t *testing.T) {
	grid := NewGrid(100, 100, 20)
	agents := []components.Agent{
		{X: 45, Y: 45},   // cell (2,2)
		{X: 50, Y: 50},   // cell (2,2)
		{X: 70, Y: 50},   // cell (3,2)
		{X: 5, Y: 5},     // cell (0,0), outside the 3x3 block of (2,2)
		{X: -5, Y: 50},   // outside the grid
		{X: 100, Y: 100}, // floor(100/20) = 5, outside the grid
	}
	idx := NewSpatialIndex(grid, len(agents))
	idx.Rebuild(agents)

	got := slices.Collect(idx.Query3x3(2, 2))
	// Cell (2,2) first (most recent insert first), then (3,2)
	want := []int{1, 0, 2}
	if !slices.Equal(got, want) {
		t.Errorf("Query3x3(2,2) = %v, want %v", got, want)
	}

	if c := grid.Cell(2, 2).AgentCount; c != 2 {
		t.Errorf("cell (2,2) AgentCount = %d, want 2", c)
	}
	if c := idx.Count(3, 2); c != 1 {
		t.Errorf("Count(3,2) = %d, want 1", c)
	}

	total := 0
	for i := range grid.Cells {
		total += int(grid.Cells[i].AgentCount)
	}
	if total != 4 {
		t.Errorf("indexed %d agents, want 4 (out-of-grid agents excluded)", total)
	}
}

func TestSpatialIndexCornerClipping(t *testing.T) {
	grid := NewGrid(100, 100, 20)
	agents := []components.Agent{{X: 1, Y: 1}, {X: 21, Y: 21}, {X: 41, Y: 41}}
	idx := NewSpatialIndex(grid, len(agents))
	idx.Rebuild(agents)

	got := slices.Collect(idx.Query3x3(0, 0))
	want := []int{0, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Query3x3(0,0) = %v, want %v", got, want)
	}
}

func TestSpatialIndexRebuildClears(t *testing.T) {
	grid := NewGrid(100, 100, 20)
	agents := []components.Agent{{X: 10, Y: 10}, {X: 12, Y: 12}}
	idx := NewSpatialIndex(grid, len(agents))
	idx.Rebuild(agents)

	agents[0].X, agents[0].Y = 90, 90
	agents[1].X, agents[1].Y = 90, 90
	idx.Rebuild(agents)

	if n := idx.Count(0, 0); n != 0 {
		t.Errorf("stale entries in cell (0,0): %d", n)
	}
	if c := grid.Cell(0, 0).AgentCount; c != 0 {
		t.Errorf("stale AgentCount in cell (0,0): %d", c)
	}
	if n := idx.Count(4, 4); n != 2 {
		t.Errorf("Count(4,4) = %d, want 2", n)
	}
}

func TestSpatialIndexEarlyStop(t *testing.T) {
	grid := NewGrid(100, 100, 20)
	agents := []components.Agent{{X: 50, Y: 50}, {X: 51, Y: 51}, {X: 52, Y: 52}}
	idx := NewSpatialIndex(grid, len(agents))
	idx.Rebuild(agents)

	n := 0
	for range idx.Query3x3(2, 2) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iteration continued after break: %d", n)
	}
}

func TestSpatialIndexEmpty(t *testing.T) {
	grid := NewGrid(0, 0, 20)
	idx := NewSpatialIndex(grid, 0)
	idx.Rebuild(nil)
	if got := slices.Collect(idx.Query3x3(0, 0)); len(got) != 0 {
		t.Errorf("empty index yielded %v", got)
	}
}
