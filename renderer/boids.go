// Package renderer draws the flock and its debug overlays with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/camera"
	"github.com/pthm-cable/flock/components"
)

// BoidRenderer draws agents as small squares.
type BoidRenderer struct {
	Size  float32
	Color rl.Color
}

// NewBoidRenderer creates a renderer with 2 px translucent white boids.
func NewBoidRenderer() *BoidRenderer {
	return &BoidRenderer{
		Size:  2,
		Color: rl.Color{R: 255, G: 255, B: 255, A: 204},
	}
}

// Draw renders the first active agents through cam. active is clamped to len(agents).
func (r *BoidRenderer) Draw(agents []components.Agent, active int, cam *camera.Camera) {
	if active > len(agents) {
		active = len(agents)
	}
	size := max(r.Size*cam.Zoom, 1)
	dim := rl.Vector2{X: size, Y: size}

	for i := 0; i < active; i++ {
		a := &agents[i]
		if !cam.IsVisible(a.X, a.Y, r.Size) {
			continue
		}
		sx, sy := cam.WorldToScreen(a.X, a.Y)
		rl.DrawRectangleV(rl.Vector2{X: sx, Y: sy}, dim, r.Color)
	}
}
