package systems

// flowNeighbors is the fixed BFS expansion order: N, S, W, E, NW, SW, NE, SE.
var flowNeighbors = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// FlowField turns a sparse set of target points into per-cell centroids and a
// dense direction field pointing toward the nearest occupied region.
type FlowField struct {
	grid *Grid

	// Reusable buffers across rebuilds
	queue   []int32
	visited []bool

	occupied int
	points   int
}

// NewFlowField creates a flow field over grid.
func NewFlowField(grid *Grid) *FlowField {
	n := len(grid.Cells)
	return &FlowField{
		grid:    grid,
		queue:   make([]int32, 0, n),
		visited: make([]bool, n),
	}
}

// OccupiedCells returns the number of occupied cells from the last rebuild.
func (f *FlowField) OccupiedCells() int { return f.occupied }

// MappedPoints returns how many target points fell inside the grid on the last rebuild.
func (f *FlowField) MappedPoints() int { return f.points }

// Rebuild recomputes cell occupancy, centroids and flow vectors from points,
// a flat list of (x, y) pairs. A trailing unpaired value is ignored.
// Identical inputs always produce identical cells.
func (f *FlowField) Rebuild(points []float32) {
	g := f.grid
	cells := g.Cells

	for i := range cells {
		cells[i].Reset()
	}

	// Aggregate points into cells
	f.points = 0
	for i := 0; i+1 < len(points); i += 2 {
		px, py := points[i], points[i+1]
		idx := g.CellIndex(px, py)
		if idx < 0 {
			continue
		}
		c := &cells[idx]
		c.Occupied = true
		c.CX += px
		c.CY += py
		c.PointCount++
		f.points++
	}

	// Centroids, and seed the frontier in ascending index order
	f.queue = f.queue[:0]
	if len(f.visited) != len(cells) {
		f.visited = make([]bool, len(cells))
	}
	for i := range f.visited {
		f.visited[i] = false
	}
	for i := range cells {
		c := &cells[i]
		if !c.Occupied {
			continue
		}
		c.CX /= float32(c.PointCount)
		c.CY /= float32(c.PointCount)
		c.Dist = 0
		f.visited[i] = true
		f.queue = append(f.queue, int32(i))
	}
	f.occupied = len(f.queue)

	// Multi-source BFS; first discovery wins
	cols := g.Cols()
	for head := 0; head < len(f.queue); head++ {
		cur := int(f.queue[head])
		cx, cy := cur%cols, cur/cols
		depth := cells[cur].Dist + 1

		for _, d := range flowNeighbors {
			nx, ny := cx+d[0], cy+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			n := g.Index(nx, ny)
			if f.visited[n] {
				continue
			}
			f.visited[n] = true

			fx, fy := setMag(-float32(d[0]), -float32(d[1]), 1)
			cells[n].FlowX = fx
			cells[n].FlowY = fy
			cells[n].Dist = depth
			f.queue = append(f.queue, int32(n))
		}
	}
}
