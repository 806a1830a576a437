package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/ui"
)

const controlsLegend = "[Space] pause  [,/.] speed  [R] restart  [N] new seed  [S] snapshot  [Tab] overlays  [C] steering  [Wheel/RMB] zoom/pan  [Home] reset view  [Click] inspect"

// Draw renders the game.
func (g *Game) Draw() {
	g.perf.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	ox, oy := g.camera.Origin()
	rl.BeginMode2D(rl.Camera2D{Target: rl.Vector2{X: ox, Y: oy}, Zoom: g.camera.Zoom})
	g.drawFieldOverlays()
	rl.EndMode2D()

	// Only the recommended share of the pool is shown
	g.boids.Draw(g.sim.Agents(), g.sim.RecommendedActiveCount(), g.camera)
	g.inspector.DrawHighlight(g.sim.Agents(), g.camera)

	if g.frames != nil {
		g.thumbnail.Draw(g.frames.ShownPath(g.sim.Tick()), g.screenW, g.screenH)
	}

	g.drawUI()

	rl.EndDrawing()
}

// drawUI renders the HUD and panels.
func (g *Game) drawUI() {
	frame := 0
	if g.frames != nil {
		frame = g.frames.FrameIndex(g.sim.Tick())
	}

	g.hud.Draw(ui.HUDData{
		Title:            "Flock",
		Agents:           len(g.sim.Agents()),
		ActiveAgents:     min(g.sim.RecommendedActiveCount(), len(g.sim.Agents())),
		TargetPoints:     g.sim.TargetCount(),
		OccupiedCells:    g.sim.OccupiedCells(),
		SeparationRadius: g.sim.SeparationRadius(),
		PerceptionRadius: g.sim.PerceptionRadius(),
		Frame:            frame,
		Tick:             g.sim.Tick(),
		Speed:            g.stepsPerUpdate,
		FPS:              rl.GetFPS(),
		Paused:           g.paused,
	})

	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.drawPerf()
	}

	g.controls.Draw(g.overlays)
	g.inspector.Draw(g.sim.Agents(), g.sim.Grid())

	if st, changed := g.steeringPanel.Draw(g.steeringState()); changed {
		g.applySteering(st)
	}

	g.hud.DrawControls(g.screenH, controlsLegend)
}

// steeringState reads the live-editable settings from the simulation.
func (g *Game) steeringState() ui.SteeringState {
	cfg := g.sim.Steering()
	return ui.SteeringState{
		Separation:       cfg.Separation,
		Dynamic:          g.sim.DynamicTuning(),
		TargetForce:      cfg.TargetForce,
		SeparationWeight: cfg.SeparationWeight,
		MaxForce:         cfg.MaxForce,
		DensityLimit:     cfg.DensityLimit,
	}
}

// applySteering pushes panel edits into the simulation.
// Tuning changes take effect on the next flow-field rebuild.
func (g *Game) applySteering(st ui.SteeringState) {
	cfg := g.sim.Steering()
	cfg.Separation = st.Separation
	cfg.TargetForce = st.TargetForce
	cfg.SeparationWeight = st.SeparationWeight
	cfg.MaxForce = st.MaxForce
	cfg.DensityLimit = max(st.DensityLimit, 1)
	g.sim.SetSteering(cfg)

	if st.Dynamic != g.sim.DynamicTuning() {
		g.sim.SetDynamicTuning(st.Dynamic)
		g.sim.RebuildFlowField()
	}
}
