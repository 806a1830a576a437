package systems

import "github.com/pthm-cable/flock/components"

// SteeringConfig holds the steering constants and feature toggles.
type SteeringConfig struct {
	MaxSpeed         float32
	MaxForce         float32
	TargetForce      float32 // weight of the seek force
	SeparationWeight float32

	DensityLimit  int32 // agents per cell before rerouting
	RerouteRadius int   // largest ring searched when rerouting
	CrowdJitter   float32
	IdleJitter    float32

	Separation bool
}

// DefaultSteeringConfig returns the stock steering constants.
func DefaultSteeringConfig() SteeringConfig {
	return SteeringConfig{
		MaxSpeed:         6,
		MaxForce:         0.4,
		TargetForce:      1,
		SeparationWeight: 1.5,
		DensityLimit:     5,
		RerouteRadius:    4,
		CrowdJitter:      10,
		IdleJitter:       1,
		Separation:       true,
	}
}

// SteeringEngine accumulates separation and goal-seeking forces per agent.
type SteeringEngine struct {
	Config SteeringConfig

	grid  *Grid
	index *SpatialIndex
	rng   *RNG
}

// NewSteeringEngine creates an engine reading from grid and index.
func NewSteeringEngine(cfg SteeringConfig, grid *Grid, index *SpatialIndex, rng *RNG) *SteeringEngine {
	return &SteeringEngine{Config: cfg, grid: grid, index: index, rng: rng}
}

// Apply adds steering forces to every agent's accumulator.
// Positions and velocities are only read, so all agents see the same frame.
func (e *SteeringEngine) Apply(agents []components.Agent, separationRadius, worldW, worldH float32) {
	cfg := &e.Config
	for i := range agents {
		a := &agents[i]
		col, row := e.grid.CellCoords(a.X, a.Y)

		var sepX, sepY float32
		if cfg.Separation {
			sepX, sepY = e.separation(agents, i, col, row, separationRadius)
		}

		tx, ty := e.seekTarget(a, col, row, worldW, worldH)
		if tx != 0 || ty != 0 {
			tx, ty = setMag(tx, ty, cfg.MaxSpeed)
			tx -= a.VX
			ty -= a.VY
			tx, ty = limit(tx, ty, cfg.MaxForce)
		}

		a.AX += sepX*cfg.SeparationWeight + tx*cfg.TargetForce
		a.AY += sepY*cfg.SeparationWeight + ty*cfg.TargetForce
	}
}

// separation returns the repulsion steering for agent i, or zero when no
// neighbour is within radius.
func (e *SteeringEngine) separation(agents []components.Agent, i, col, row int, radius float32) (float32, float32) {
	self := &agents[i]
	radiusSq := radius * radius

	var sx, sy float32
	found := false
	for j := range e.index.Query3x3(col, row) {
		if j == i {
			continue
		}
		o := &agents[j]
		dx := self.X - o.X
		dy := self.Y - o.Y
		distSq := dx*dx + dy*dy
		if distSq >= radiusSq || distSq <= 0 {
			continue
		}
		// Unit direction divided by distance again: closer pushes harder
		dist := sqrtf(distSq)
		sx += dx / dist / dist
		sy += dy / dist / dist
		found = true
	}
	if !found {
		return 0, 0
	}

	sx, sy = setMag(sx, sy, e.Config.MaxSpeed)
	sx -= self.VX
	sy -= self.VY
	return limit(sx, sy, 2*e.Config.MaxForce)
}

// seekTarget picks the raw (unscaled) desired direction for an agent in cell (col, row).
func (e *SteeringEngine) seekTarget(a *components.Agent, col, row int, worldW, worldH float32) (float32, float32) {
	cell := e.grid.Cell(col, row)
	if cell == nil {
		return worldW/2 - a.X, worldH/2 - a.Y
	}

	if !cell.Occupied {
		if cell.FlowX == 0 && cell.FlowY == 0 {
			j := e.Config.IdleJitter
			return e.rng.Range(-j, j), e.rng.Range(-j, j)
		}
		return cell.FlowX, cell.FlowY
	}

	if cell.AgentCount <= e.Config.DensityLimit {
		return cell.CX - a.X, cell.CY - a.Y
	}

	if alt := e.reroute(col, row); alt != nil {
		return alt.CX - a.X, alt.CY - a.Y
	}

	j := e.Config.CrowdJitter
	jx := cell.CX + e.rng.Range(-j, j)
	jy := cell.CY + e.rng.Range(-j, j)
	return jx - a.X, jy - a.Y
}

// reroute searches square rings of growing radius around (col, row) for the
// first occupied cell that still has room.
func (e *SteeringEngine) reroute(col, row int) *components.GridCell {
	maxCount := e.Config.DensityLimit
	for r := 1; r <= e.Config.RerouteRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if absInt(dx) != r && absInt(dy) != r {
					continue
				}
				n := e.grid.Cell(col+dx, row+dy)
				if n != nil && n.Occupied && n.AgentCount < maxCount {
					return n
				}
			}
		}
	}
	return nil
}
