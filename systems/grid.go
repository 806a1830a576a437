package systems

import (
	"math"

	"github.com/pthm-cable/flock/components"
)

// Grid is a fixed cols×rows tiling of the world at a fixed cell size.
// Both the flow field and the spatial index share it.
type Grid struct {
	cellSize float32
	cols     int
	rows     int
	Cells    []components.GridCell
}

// NewGrid creates a grid covering width×height. A degenerate world yields an
// empty grid.
func NewGrid(width, height, cellSize float32) *Grid {
	cols, rows := 0, 0
	if cellSize > 0 && width > 0 && height > 0 {
		cols = int(math.Ceil(float64(width / cellSize)))
		rows = int(math.Ceil(float64(height / cellSize)))
	}

	cells := make([]components.GridCell, cols*rows)
	for i := range cells {
		cells[i].Reset()
	}

	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		Cells:    cells,
	}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the edge length of a cell in world units.
func (g *Grid) CellSize() float32 { return g.cellSize }

// CellCoords maps a world position to (col, row) using floor division.
// The result may be out of bounds.
func (g *Grid) CellCoords(x, y float32) (col, row int) {
	if g.cellSize <= 0 {
		return -1, -1
	}
	col = int(math.Floor(float64(x / g.cellSize)))
	row = int(math.Floor(float64(y / g.cellSize)))
	return col, row
}

// InBounds reports whether (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Index returns the flat index of an in-bounds cell.
func (g *Grid) Index(col, row int) int {
	return row*g.cols + col
}

// CellIndex maps a world position to a flat cell index, or -1 outside the grid.
func (g *Grid) CellIndex(x, y float32) int {
	col, row := g.CellCoords(x, y)
	if !g.InBounds(col, row) {
		return -1
	}
	return g.Index(col, row)
}

// Cell returns the cell at (col, row), or nil outside the grid.
func (g *Grid) Cell(col, row int) *components.GridCell {
	if !g.InBounds(col, row) {
		return nil
	}
	return &g.Cells[g.Index(col, row)]
}
