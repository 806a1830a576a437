package game

import (
	"unsafe"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/systems"
	"github.com/pthm-cable/flock/telemetry"
)

// Options configures a Simulation.
type Options struct {
	Seed         uint32
	CellSize     float32
	InitialSpeed float32 // initial velocity components are drawn from [-v, v]
	Steering     systems.SteeringConfig
	Params       systems.ParamConfig
}

// DefaultOptions returns the stock 20-unit grid and steering constants.
func DefaultOptions() Options {
	return Options{
		Seed:         systems.DefaultSeed,
		CellSize:     20,
		InitialSpeed: 2,
		Steering:     systems.DefaultSteeringConfig(),
		Params:       systems.DefaultParamConfig(),
	}
}

// OptionsFromConfig maps a loaded configuration onto simulation options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Seed:         cfg.Agents.Seed,
		CellSize:     float32(cfg.Grid.CellSize),
		InitialSpeed: float32(cfg.Agents.InitialSpeed),
		Steering: systems.SteeringConfig{
			MaxSpeed:         float32(cfg.Physics.MaxSpeed),
			MaxForce:         float32(cfg.Physics.MaxForce),
			TargetForce:      float32(cfg.Steering.TargetForce),
			SeparationWeight: float32(cfg.Steering.SeparationWeight),
			DensityLimit:     int32(cfg.Steering.DensityLimit),
			RerouteRadius:    cfg.Steering.RerouteRadius,
			CrowdJitter:      float32(cfg.Steering.CrowdJitter),
			IdleJitter:       float32(cfg.Steering.IdleJitter),
			Separation:       cfg.Steering.Separation,
		},
		Params: systems.ParamConfig{
			MinPopulation:    cfg.Tuning.MinPopulation,
			MaxPopulation:    cfg.Tuning.MaxPopulation,
			MaxTargetPoints:  float32(cfg.Tuning.MaxTargetPoints),
			SeparationMin:    float32(cfg.Tuning.SeparationMin),
			SeparationMax:    float32(cfg.Tuning.SeparationMax),
			PerceptionMin:    float32(cfg.Tuning.PerceptionMin),
			PerceptionMax:    float32(cfg.Tuning.PerceptionMax),
			StaticSeparation: float32(cfg.Tuning.StaticSeparation),
			StaticPerception: float32(cfg.Tuning.StaticPerception),
			Dynamic:          cfg.Tuning.Dynamic,
		},
	}
}

// PhaseRecorder receives phase boundaries during a step.
// telemetry.PerfCollector satisfies it.
type PhaseRecorder interface {
	StartPhase(phase string)
}

// Simulation owns the agent pool, grid, target buffer, derived parameters and
// PRNG of one flock. It is not safe for concurrent use; run independent
// simulations as independent values.
type Simulation struct {
	opts Options

	width, height float32
	agents        []components.Agent
	targets       []float32

	grid     *systems.Grid
	index    *systems.SpatialIndex
	flow     *systems.FlowField
	params   *systems.ParamController
	steering *systems.SteeringEngine
	rng      *systems.RNG

	phases PhaseRecorder
	tick   int64
}

// NewSimulation creates an empty simulation. Call Initialize before stepping.
func NewSimulation(opts Options) *Simulation {
	s := &Simulation{
		opts:   opts,
		rng:    systems.NewRNG(opts.Seed),
		params: systems.NewParamController(opts.Params),
	}
	s.Initialize(0, 0, 0)
	return s
}

// Initialize (re)allocates the agent pool and grid for a width×height world
// and scatters count agents over it. The PRNG is reset to the configured
// seed first, so identical calls produce identical pools.
func (s *Simulation) Initialize(count int, width, height float32) {
	if count < 0 {
		count = 0
	}
	s.width, s.height = width, height
	s.rng.Reseed(s.opts.Seed)
	s.tick = 0

	s.grid = systems.NewGrid(width, height, s.opts.CellSize)
	s.index = systems.NewSpatialIndex(s.grid, count)
	s.flow = systems.NewFlowField(s.grid)
	s.steering = systems.NewSteeringEngine(s.opts.Steering, s.grid, s.index, s.rng)

	s.agents = make([]components.Agent, count)
	v := s.opts.InitialSpeed
	for i := range s.agents {
		a := &s.agents[i]
		a.X = s.rng.Float32() * width
		a.Y = s.rng.Float32() * height
		a.VX = s.rng.Range(-v, v)
		a.VY = s.rng.Range(-v, v)
	}
}

// Reseed replaces the configured seed used by the next Initialize and
// restarts the PRNG sequence immediately.
func (s *Simulation) Reseed(seed uint32) {
	s.opts.Seed = seed
	s.rng.Reseed(seed)
}

// Restore replaces the agent pool, tick and PRNG state while keeping the
// world and grid. Forces are cleared. Call SetTargets and RebuildFlowField
// afterwards to restore the field.
func (s *Simulation) Restore(tick int64, rngState uint32, agents []components.Agent) {
	s.index = systems.NewSpatialIndex(s.grid, len(agents))
	s.steering = systems.NewSteeringEngine(s.opts.Steering, s.grid, s.index, s.rng)
	s.agents = agents
	for i := range s.agents {
		s.agents[i].AX, s.agents[i].AY = 0, 0
	}
	s.rng.Reseed(rngState)
	s.tick = tick
}

// Seed returns the seed the next Initialize starts from.
func (s *Simulation) Seed() uint32 { return s.opts.Seed }

// RNGState returns the current PRNG state.
func (s *Simulation) RNGState() uint32 { return s.rng.State() }

// ResizeTargetBuffer resizes the target buffer to count (x, y) pairs and
// returns it for the host to fill. The slice is valid until the next
// ResizeTargetBuffer or SetTargets call.
func (s *Simulation) ResizeTargetBuffer(count int) []float32 {
	if count < 0 {
		count = 0
	}
	n := count * 2
	if cap(s.targets) < n {
		grown := make([]float32, n)
		copy(grown, s.targets)
		s.targets = grown
	} else {
		s.targets = s.targets[:n]
	}
	return s.targets
}

// SetTargets copies a flat (x, y) list into the target buffer.
func (s *Simulation) SetTargets(points []float32) {
	buf := s.ResizeTargetBuffer(len(points) / 2)
	copy(buf, points)
}

// Targets returns the target buffer. Read only.
func (s *Simulation) Targets() []float32 { return s.targets }

// TargetCount returns the number of (x, y) pairs in the target buffer.
func (s *Simulation) TargetCount() int {
	return len(s.targets) / 2
}

// RebuildFlowField recomputes centroids and flow vectors from the target
// buffer and refreshes the density-driven parameters.
func (s *Simulation) RebuildFlowField() {
	s.startPhase(telemetry.PhaseFlowField)
	s.flow.Rebuild(s.targets)
	s.params.Update(s.TargetCount())
}

// Step advances the simulation by one frame.
func (s *Simulation) Step() {
	s.startPhase(telemetry.PhaseSpatialIndex)
	s.index.Rebuild(s.agents)

	s.startPhase(telemetry.PhaseSteering)
	s.steering.Apply(s.agents, s.params.SeparationRadius(), s.width, s.height)

	s.startPhase(telemetry.PhaseIntegrate)
	systems.Integrate(s.agents, s.steering.Config.MaxSpeed, s.width, s.height)

	s.tick++
}

func (s *Simulation) startPhase(phase string) {
	if s.phases != nil {
		s.phases.StartPhase(phase)
	}
}

// SetPhaseRecorder installs a recorder for per-phase timing. nil disables it.
func (s *Simulation) SetPhaseRecorder(p PhaseRecorder) {
	s.phases = p
}

// Agents returns the agent pool. The slice is borrowed: it is valid until
// the next Initialize and must not be modified by the host.
func (s *Simulation) Agents() []components.Agent {
	return s.agents
}

// AgentFloats returns the agent pool as raw floats, components.AgentStride
// per agent in the order x, y, vx, vy, ax, ay, pad, pad. Same validity as Agents.
func (s *Simulation) AgentFloats() []float32 {
	if len(s.agents) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&s.agents[0])), len(s.agents)*components.AgentStride)
}

// RecommendedActiveCount returns the advisory population for the current
// target density. The full pool is always simulated.
func (s *Simulation) RecommendedActiveCount() int {
	return s.params.ActiveCount()
}

// SeparationRadius returns the separation radius in use.
func (s *Simulation) SeparationRadius() float32 { return s.params.SeparationRadius() }

// PerceptionRadius returns the perception radius derived on the last rebuild.
func (s *Simulation) PerceptionRadius() float32 { return s.params.PerceptionRadius() }

// Grid exposes the grid for overlays and telemetry. Read only.
func (s *Simulation) Grid() *systems.Grid { return s.grid }

// OccupiedCells returns the occupied cell count from the last rebuild.
func (s *Simulation) OccupiedCells() int { return s.flow.OccupiedCells() }

// Steering returns the active steering configuration.
func (s *Simulation) Steering() systems.SteeringConfig { return s.steering.Config }

// SetSteering replaces the steering configuration. It survives Initialize.
func (s *Simulation) SetSteering(cfg systems.SteeringConfig) {
	s.opts.Steering = cfg
	s.steering.Config = cfg
}

// SetDynamicTuning toggles density-driven radii; applied on the next RebuildFlowField.
func (s *Simulation) SetDynamicTuning(on bool) {
	s.opts.Params.Dynamic = on
	s.params.SetDynamic(on)
}

// DynamicTuning reports whether density-driven radii are enabled.
func (s *Simulation) DynamicTuning() bool { return s.params.Config().Dynamic }

// Size returns the world dimensions.
func (s *Simulation) Size() (width, height float32) { return s.width, s.height }

// Tick returns the number of steps since Initialize.
func (s *Simulation) Tick() int64 { return s.tick }
