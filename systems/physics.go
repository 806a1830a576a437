package systems

import "github.com/pthm-cable/flock/components"

// Integrate applies accumulated forces, clamps speed, moves agents and wraps
// them around a toroidal world. Forces are cleared afterwards.
func Integrate(agents []components.Agent, maxSpeed, worldW, worldH float32) {
	for i := range agents {
		a := &agents[i]

		a.VX += a.AX
		a.VY += a.AY
		a.VX, a.VY = limit(a.VX, a.VY, maxSpeed)

		a.X += a.VX
		a.Y += a.VY

		a.X = wrap(a.X, worldW)
		a.Y = wrap(a.Y, worldH)

		a.AX = 0
		a.AY = 0
	}
}

// wrap sends a coordinate past the far edge to zero and one below zero to the far edge.
func wrap(v, size float32) float32 {
	if v > size {
		return 0
	}
	if v < 0 {
		return size
	}
	return v
}
