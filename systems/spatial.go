// Package systems implements the per-frame simulation passes: spatial
// indexing, flow-field generation, steering and integration.
package systems

import (
	"iter"

	"github.com/pthm-cable/flock/components"
)

// noAgent terminates a cell chain.
const noAgent int32 = -1

// SpatialIndex buckets agents into grid cells for 3×3 neighbour queries.
// Each cell holds the most recently inserted agent; next links the rest of the
// chain through a stable agent-index space. It is rebuilt from scratch every frame.
type SpatialIndex struct {
	grid  *Grid
	heads []int32 // per cell
	next  []int32 // per agent
}

// NewSpatialIndex creates an index over grid with room for agentCount agents.
func NewSpatialIndex(grid *Grid, agentCount int) *SpatialIndex {
	heads := make([]int32, len(grid.Cells))
	for i := range heads {
		heads[i] = noAgent
	}
	next := make([]int32, agentCount)
	for i := range next {
		next[i] = noAgent
	}
	return &SpatialIndex{grid: grid, heads: heads, next: next}
}

// Rebuild clears the index and inserts every in-bounds agent in pool order.
// Per-cell occupancy counts on the grid are refreshed as a side effect.
func (s *SpatialIndex) Rebuild(agents []components.Agent) {
	for i := range s.heads {
		s.heads[i] = noAgent
	}
	if cap(s.next) < len(agents) {
		s.next = make([]int32, len(agents))
	}
	s.next = s.next[:len(agents)]
	for i := range s.next {
		s.next[i] = noAgent
	}

	cells := s.grid.Cells
	for i := range cells {
		cells[i].AgentCount = 0
	}

	for i := range agents {
		idx := s.grid.CellIndex(agents[i].X, agents[i].Y)
		if idx < 0 {
			continue
		}
		s.next[i] = s.heads[idx]
		s.heads[idx] = int32(i)
		cells[idx].AgentCount++
	}
}

// Query3x3 yields every indexed agent in the 3×3 block around (col, row),
// clipped to the grid. Cells are scanned row by row, then each chain from
// most to least recently inserted.
func (s *SpatialIndex) Query3x3(col, row int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				c, r := col+dx, row+dy
				if !s.grid.InBounds(c, r) {
					continue
				}
				for j := s.heads[s.grid.Index(c, r)]; j != noAgent; j = s.next[j] {
					if !yield(int(j)) {
						return
					}
				}
			}
		}
	}
}

// Count returns the number of agents indexed in cell (col, row).
func (s *SpatialIndex) Count(col, row int) int {
	if !s.grid.InBounds(col, row) {
		return 0
	}
	n := 0
	for j := s.heads[s.grid.Index(col, row)]; j != noAgent; j = s.next[j] {
		n++
	}
	return n
}
