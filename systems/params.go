package systems

// ParamConfig holds the endpoints for density-driven tuning.
type ParamConfig struct {
	MinPopulation   int
	MaxPopulation   int
	MaxTargetPoints float32 // capacity the density ratio is measured against

	SeparationMin, SeparationMax float32
	PerceptionMin, PerceptionMax float32

	// Used when Dynamic is false
	StaticSeparation float32
	StaticPerception float32

	Dynamic bool
}

// DefaultParamConfig returns the tuning used for an 800×600 world sampled every 8 px.
func DefaultParamConfig() ParamConfig {
	return ParamConfig{
		MinPopulation:    500,
		MaxPopulation:    5000,
		MaxTargetPoints:  7500,
		SeparationMin:    3,
		SeparationMax:    6,
		PerceptionMin:    10,
		PerceptionMax:    12,
		StaticSeparation: 10,
		StaticPerception: 20,
		Dynamic:          true,
	}
}

// ParamController derives separation, perception and a recommended
// population from the density of the current target set.
type ParamController struct {
	cfg ParamConfig

	ratio       float32
	activeCount int
	separation  float32
	perception  float32
}

// NewParamController creates a controller primed as if no targets were set.
func NewParamController(cfg ParamConfig) *ParamController {
	p := &ParamController{cfg: cfg}
	p.separation = cfg.StaticSeparation
	p.perception = cfg.StaticPerception
	if cfg.Dynamic {
		p.separation = cfg.SeparationMin
		p.perception = cfg.PerceptionMin
	}
	p.activeCount = cfg.MinPopulation
	return p
}

// Config returns the controller configuration.
func (p *ParamController) Config() ParamConfig { return p.cfg }

// SetDynamic toggles density-driven radii. Takes effect on the next Update.
func (p *ParamController) SetDynamic(on bool) { p.cfg.Dynamic = on }

// Update recomputes all derived values for targetCount points.
func (p *ParamController) Update(targetCount int) {
	c := &p.cfg
	var ratio float32
	if c.MaxTargetPoints > 0 {
		ratio = float32(targetCount) / c.MaxTargetPoints
	}
	p.ratio = ratio

	span := float32(c.MaxPopulation - c.MinPopulation)
	p.activeCount = clampInt(c.MinPopulation+int(ratio*span), c.MinPopulation, c.MaxPopulation)

	if c.Dynamic {
		p.separation = c.SeparationMin + ratio*(c.SeparationMax-c.SeparationMin)
		p.perception = c.PerceptionMin + ratio*(c.PerceptionMax-c.PerceptionMin)
	} else {
		p.separation = c.StaticSeparation
		p.perception = c.StaticPerception
	}
}

// Ratio returns the last target density ratio.
func (p *ParamController) Ratio() float32 { return p.ratio }

// ActiveCount returns the recommended number of agents to use.
// Advisory only: the simulation always steps the full pool.
func (p *ParamController) ActiveCount() int { return p.activeCount }

// SeparationRadius returns the current separation radius.
func (p *ParamController) SeparationRadius() float32 { return p.separation }

// PerceptionRadius returns the current perception radius.
func (p *ParamController) PerceptionRadius() float32 { return p.perception }
