package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/systems"
)

// FieldRenderer draws the grid state: flow vectors, occupancy and cell lines.
type FieldRenderer struct {
	FlowColor   rl.Color
	TargetColor rl.Color
	GridColor   rl.Color
}

// NewFieldRenderer creates a field renderer with the default palette.
func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		FlowColor:   rl.Color{R: 50, G: 100, B: 130, A: 160},
		TargetColor: rl.Color{R: 230, G: 80, B: 80, A: 140},
		GridColor:   rl.Color{R: 40, G: 40, B: 40, A: 255},
	}
}

// DrawFlow draws one arrow per reachable cell, half a cell long.
func (r *FieldRenderer) DrawFlow(grid *systems.Grid) {
	size := grid.CellSize()
	half := size * 0.5

	rl.BeginBlendMode(rl.BlendAdditive)
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			c := grid.Cell(col, row)
			if c.Occupied || (c.FlowX == 0 && c.FlowY == 0) {
				continue
			}
			cx := float32(col)*size + half
			cy := float32(row)*size + half
			tip := rl.Vector2{X: cx + c.FlowX*half, Y: cy + c.FlowY*half}
			rl.DrawLineEx(rl.Vector2{X: cx, Y: cy}, tip, 1, r.FlowColor)
			rl.DrawCircleV(tip, 1.5, r.FlowColor)
		}
	}
	rl.EndBlendMode()
}

// DrawOccupancy shades target cells by how full they are relative to limit.
// Cells at or over the limit are drawn at full strength.
func (r *FieldRenderer) DrawOccupancy(grid *systems.Grid, limit int32) {
	size := grid.CellSize()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			c := grid.Cell(col, row)
			if !c.Occupied {
				continue
			}
			fill := float32(1)
			if limit > 0 && c.AgentCount < limit {
				fill = float32(c.AgentCount) / float32(limit)
			}
			color := r.TargetColor
			color.A = uint8(40 + fill*float32(color.A-40))
			rl.DrawRectangleV(
				rl.Vector2{X: float32(col) * size, Y: float32(row) * size},
				rl.Vector2{X: size, Y: size},
				color,
			)
			rl.DrawCircleV(rl.Vector2{X: c.CX, Y: c.CY}, 1.5, rl.Yellow)
		}
	}
}

// DrawDistance shades each reachable cell by its BFS depth, brightest next
// to the targets and fading to black at maxDepth.
func (r *FieldRenderer) DrawDistance(grid *systems.Grid, maxDepth int32) {
	if maxDepth < 1 {
		maxDepth = 1
	}
	size := grid.CellSize()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			c := grid.Cell(col, row)
			if c.Dist < 0 {
				continue
			}
			t := 1 - float32(min(c.Dist, maxDepth))/float32(maxDepth)
			color := rl.Color{R: uint8(20 + 60*t), G: uint8(30 + 90*t), B: uint8(40 + 120*t), A: 255}
			rl.DrawRectangleV(
				rl.Vector2{X: float32(col) * size, Y: float32(row) * size},
				rl.Vector2{X: size, Y: size},
				color,
			)
		}
	}
}

// DrawGrid draws the cell boundaries.
func (r *FieldRenderer) DrawGrid(grid *systems.Grid) {
	size := grid.CellSize()
	w := int32(float32(grid.Cols()) * size)
	h := int32(float32(grid.Rows()) * size)
	for col := 0; col <= grid.Cols(); col++ {
		x := int32(float32(col) * size)
		rl.DrawLine(x, 0, x, h, r.GridColor)
	}
	for row := 0; row <= grid.Rows(); row++ {
		y := int32(float32(row) * size)
		rl.DrawLine(0, y, w, y, r.GridColor)
	}
}

// DrawTargets draws the raw target points.
func (r *FieldRenderer) DrawTargets(points []float32) {
	for i := 0; i+1 < len(points); i += 2 {
		rl.DrawPixelV(rl.Vector2{X: points[i], Y: points[i+1]}, r.TargetColor)
	}
}
