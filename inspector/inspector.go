// Package inspector lets the user click a boid and read its state.
package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/camera"
	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/systems"
)

// Panel dimensions
const (
	PanelWidth   = 260
	PanelPadding = 10
	HeaderHeight = 26
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorHighlight   = rl.Color{R: 255, G: 200, B: 100, A: 255}
)

// pickRadius is the click tolerance in screen pixels.
const pickRadius = 8

// BoidView is the inspected snapshot of one agent and the cell it sits in.
type BoidView struct {
	Index      int     `inspect:"label"`
	X          float32 `inspect:"label,fmt:%.1f"`
	Y          float32 `inspect:"label,fmt:%.1f"`
	Speed      float32 `inspect:"bar,max:6"`
	Heading    float32 `inspect:"angle"`
	Col        int     `inspect:"label"`
	Row        int     `inspect:"label"`
	OnTarget   bool    `inspect:"bool"`
	CellAgents int32   `inspect:"bar,max:10"`
	Distance   int32   `inspect:"label"` // BFS hops to the nearest target cell, -1 if unreachable
	FlowX      float32 `inspect:"label,fmt:%.2f"`
	FlowY      float32 `inspect:"label,fmt:%.2f"`
}

// NewBoidView builds the view for agent i. Cell fields are zero when the
// agent lies outside the grid.
func NewBoidView(agents []components.Agent, i int, grid *systems.Grid) BoidView {
	a := &agents[i]
	v := BoidView{
		Index:   i,
		X:       a.X,
		Y:       a.Y,
		Speed:   float32(math.Sqrt(float64(a.SpeedSq()))),
		Heading: float32(math.Atan2(float64(a.VY), float64(a.VX))),
	}
	v.Col, v.Row = grid.CellCoords(a.X, a.Y)
	if c := grid.Cell(v.Col, v.Row); c != nil {
		v.OnTarget = c.Occupied
		v.CellAgents = c.AgentCount
		v.Distance = c.Dist
		v.FlowX, v.FlowY = c.FlowX, c.FlowY
	}
	return v
}

// NearestAgent returns the index of the agent among the first active ones
// closest to (wx, wy) within radius, measuring across the world wrap.
// It returns -1 when none is in range.
func NearestAgent(agents []components.Agent, active int, wx, wy, radius, worldW, worldH float32) int {
	active = min(active, len(agents))
	best := -1
	bestDist := radius * radius
	for i := 0; i < active; i++ {
		dx := wrapDelta(agents[i].X-wx, worldW)
		dy := wrapDelta(agents[i].Y-wy, worldH)
		if d := dx*dx + dy*dy; d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func wrapDelta(d, size float32) float32 {
	if d > size/2 {
		return d - size
	}
	if d < -size/2 {
		return d + size
	}
	return d
}

// Inspector manages boid selection and panel rendering.
type Inspector struct {
	selected int
	panelX   int32
	panelY   int32
}

// NewInspector creates an inspector with its panel at the top-left below the HUD.
func NewInspector(panelX, panelY int32) *Inspector {
	return &Inspector{selected: -1, panelX: panelX, panelY: panelY}
}

// Selected returns the selected agent index, or -1.
func (ins *Inspector) Selected() int { return ins.selected }

// Deselect clears the selection.
func (ins *Inspector) Deselect() { ins.selected = -1 }

// HandleClick selects the boid under screen position (sx, sy), or clears the
// selection when there is none.
func (ins *Inspector) HandleClick(sx, sy float32, agents []components.Agent, active int, cam *camera.Camera) {
	wx, wy := cam.ScreenToWorld(sx, sy)
	ins.selected = NearestAgent(agents, active, wx, wy, pickRadius/cam.Zoom, cam.WorldW, cam.WorldH)
}

// DrawHighlight circles the selected boid.
func (ins *Inspector) DrawHighlight(agents []components.Agent, cam *camera.Camera) {
	if ins.selected < 0 || ins.selected >= len(agents) {
		return
	}
	a := &agents[ins.selected]
	sx, sy := cam.WorldToScreen(a.X, a.Y)
	rl.DrawCircleLines(int32(sx), int32(sy), 6*max(cam.Zoom, 1), ColorHighlight)
}

// Draw renders the inspector panel for the selected boid.
func (ins *Inspector) Draw(agents []components.Agent, grid *systems.Grid) {
	if ins.selected < 0 || ins.selected >= len(agents) {
		return
	}

	fields := ExtractFields(NewBoidView(agents, ins.selected, grid))
	height := int32(HeaderHeight + PanelPadding*2)
	for _, f := range fields {
		height += fieldHeight(f)
	}

	x, y := ins.panelX, ins.panelY
	rl.DrawRectangle(x, y, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangle(x, y, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawRectangleLines(x, y, PanelWidth, height, ColorPanelBorder)
	rl.DrawText(fmt.Sprintf("Boid #%d", ins.selected), x+PanelPadding, y+6, 16, ColorHeaderText)

	y += HeaderHeight + PanelPadding
	for _, f := range fields {
		y += DrawField(x+PanelPadding, y, f)
	}
}

// fieldHeight mirrors the heights returned by the Draw* widgets.
func fieldHeight(f Field) int32 {
	if f.Widget == WidgetAngle {
		return 44
	}
	return 18
}
