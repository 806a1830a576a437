package game

import (
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.restart()
	}
	if rl.IsKeyPressed(rl.KeyN) {
		seed := g.cfg.Agents.Seed + 1
		g.cfg.Agents.Seed = seed
		g.sim.Reseed(seed)
		g.restart()
		slog.Info("reseeded", "seed", seed)
	}

	if rl.IsKeyPressed(rl.KeyS) {
		g.saveSnapshot(nil)
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.steeringPanel.Toggle()
	}

	g.handleOverlayKeys()
	g.handleCameraInput()
	g.handleSelection()
}

// handleSelection picks the boid under a left click outside the steering panel.
func (g *Game) handleSelection() {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	mouse := rl.GetMousePosition()
	if g.steeringPanel.Contains(mouse.X, mouse.Y) {
		return
	}
	g.inspector.HandleClick(mouse.X, mouse.Y, g.sim.Agents(), g.sim.RecommendedActiveCount(), g.camera)
}

// handleResize propagates window size changes to the camera and panels.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenW = int32(rl.GetScreenWidth())
	g.screenH = int32(rl.GetScreenHeight())
	g.camera.Resize(float32(g.screenW), float32(g.screenH))
	g.perfPanel.SetPosition(g.screenW-230, 16)
	g.steeringPanel.SetPosition(float32(g.screenW)-230, float32(g.screenH)-360)
}

// handleCameraInput zooms on the mouse wheel and pans on right-drag.
func (g *Game) handleCameraInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		mouse := rl.GetMousePosition()
		g.camera.ZoomAt(float32(math.Pow(1.1, float64(wheel))), mouse.X, mouse.Y)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.camera.Pan(-d.X, -d.Y)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
