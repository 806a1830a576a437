package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/telemetry"
	"github.com/pthm-cable/flock/ui"
)

// handleOverlayKeys checks for overlay toggle key presses.
func (g *Game) handleOverlayKeys() {
	for _, desc := range g.overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			g.overlays.Toggle(desc.ID)
		}
	}
}

// drawFieldOverlays renders the overlays that sit beneath the flock.
func (g *Game) drawFieldOverlays() {
	grid := g.sim.Grid()
	if g.overlays.IsEnabled(ui.OverlayDistance) {
		g.field.DrawDistance(grid, int32(max(grid.Cols(), grid.Rows())/2))
	}
	if g.overlays.IsEnabled(ui.OverlayGrid) {
		g.field.DrawGrid(grid)
	}
	if g.overlays.IsEnabled(ui.OverlayOccupancy) {
		g.field.DrawOccupancy(grid, g.sim.Steering().DensityLimit)
	}
	if g.overlays.IsEnabled(ui.OverlayFlowField) {
		g.field.DrawFlow(grid)
	}
	if g.overlays.IsEnabled(ui.OverlayTargets) {
		g.field.DrawTargets(g.sim.Targets())
	}
}

// drawPerf renders the per-phase timing panel.
func (g *Game) drawPerf() {
	stats := g.perf.Stats()
	g.perfPanel.Draw(ui.PerfPanelData{
		Phases: stats.PhaseAvg,
		Order:  telemetry.PhaseOrder(),
		Total:  stats.AvgTickDuration,
		TPS:    stats.TicksPerSecond,
	})
}
