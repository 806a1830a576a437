// Package components defines the plain data records shared by the simulation
// systems and the host.
package components

// AgentStride is the number of float32 values in one Agent record.
// Hosts decode the agent buffer as consecutive records of this stride with
// the field order x, y, vx, vy, ax, ay followed by two padding floats.
const AgentStride = 8

// Agent is a single boid. The layout is fixed: hosts read it as raw floats.
type Agent struct {
	X, Y   float32 // position
	VX, VY float32 // velocity
	AX, AY float32 // accumulated force, cleared after integration

	_ [2]float32 // padding to AgentStride
}

// SpeedSq returns the squared velocity magnitude.
func (a *Agent) SpeedSq() float32 {
	return a.VX*a.VX + a.VY*a.VY
}
