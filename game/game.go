package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/flock/camera"
	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/inspector"
	"github.com/pthm-cable/flock/renderer"
	"github.com/pthm-cable/flock/targets"
	"github.com/pthm-cable/flock/telemetry"
	"github.com/pthm-cable/flock/ui"
)

// GameOptions configures a Game.
type GameOptions struct {
	Config         *config.Config
	Headless       bool
	LogStats       bool
	OutputDir      string
	StepsPerUpdate int
	Source         targets.Source      // overrides the configured source when set
	Snapshot       *telemetry.Snapshot // resume from this state when set
}

// Game drives a Simulation from a target source and records telemetry.
// In windowed mode it also owns the renderers and UI.
type Game struct {
	cfg *config.Config
	sim *Simulation

	source targets.Source
	frames *targets.FrameSource // nil unless playing back frames
	points []float32

	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	output        *telemetry.OutputManager
	bookmarks     *telemetry.BookmarkDetector
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	headless       bool
	paused         bool
	stepsPerUpdate int
	screenW        int32
	screenH        int32

	camera        *camera.Camera
	boids         *renderer.BoidRenderer
	field         *renderer.FieldRenderer
	thumbnail     *renderer.Thumbnail
	hud           *ui.HUD
	perfPanel     *ui.PerfPanel
	overlays      *ui.OverlayRegistry
	controls      *ui.ControlsPanel
	steeringPanel *ui.SteeringPanel
	inspector     *inspector.Inspector
}

// NewGameWithOptions builds a game from the given options. A nil Config uses
// the global configuration.
func NewGameWithOptions(opts GameOptions) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	source := opts.Source
	var frames *targets.FrameSource
	if source == nil {
		var err error
		source, frames, err = NewSource(cfg)
		if err != nil {
			return nil, err
		}
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		sim:            NewSimulation(OptionsFromConfig(cfg)),
		source:         source,
		frames:         frames,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:         output,
		bookmarks:      telemetry.NewBookmarkDetector(10),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		screenW:        int32(cfg.Screen.Width),
		screenH:        int32(cfg.Screen.Height),
	}
	g.sim.SetPhaseRecorder(g.perf)
	g.sim.Initialize(cfg.Agents.Count, cfg.Derived.WorldW32, cfg.Derived.WorldH32)
	if opts.Snapshot != nil {
		if err := g.resume(opts.Snapshot); err != nil {
			output.Close()
			return nil, err
		}
	}

	if !g.headless {
		g.camera = camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), cfg.Derived.WorldW32, cfg.Derived.WorldH32)
		g.boids = renderer.NewBoidRenderer()
		g.field = renderer.NewFieldRenderer()
		g.thumbnail = renderer.NewThumbnail()
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(int32(cfg.Screen.Width)-230, 16)
		g.overlays = ui.NewOverlayRegistry()
		g.controls = ui.NewControlsPanel(10, 120, 200)
		g.steeringPanel = ui.NewSteeringPanel(float32(cfg.Screen.Width)-230, float32(cfg.Screen.Height)-360, 220)
		g.inspector = inspector.NewInspector(220, 120)
	}

	if output != nil {
		slog.Info("writing run output", "dir", output.Dir())
	}
	return g, nil
}

// NewSource builds the target source named in cfg. The frame source is also
// returned so callers can show the frame on screen.
func NewSource(cfg *config.Config) (targets.Source, *targets.FrameSource, error) {
	t := cfg.Targets
	w := int(cfg.Derived.WorldW32)
	h := int(cfg.Derived.WorldH32)

	switch t.Source {
	case "frames":
		sampler := targets.NewSampler(w, h, t.SampleRate, t.Threshold)
		frames, err := targets.NewFrameSource(t.FramesDir, sampler, t.FrameInterval, t.Lookahead)
		if err != nil {
			return nil, nil, err
		}
		return frames, frames, nil
	default:
		shapes, err := targets.NewShapeSource(t.Shape, w, h, t.SampleRate, t.FrameInterval)
		if err != nil {
			return nil, nil, err
		}
		return shapes, nil, nil
	}
}

// SetStatsCallback installs a function called with every flushed window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Simulation returns the underlying simulation.
func (g *Game) Simulation() *Simulation { return g.sim }

// Tick returns the simulation tick.
func (g *Game) Tick() int64 { return g.sim.Tick() }

// Update handles input and advances the simulation by the configured number of steps.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances the simulation without touching raylib.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs one frame: pull targets, rebuild the field if they changed,
// steer and integrate, then flush telemetry at window boundaries.
func (g *Game) step() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseTargets)
	pts, changed := g.source.Next(g.sim.Tick(), g.points)
	g.points = pts
	// An empty frame leaves the previous field in place so the flock keeps moving
	if changed && len(pts) > 0 {
		g.sim.SetTargets(pts)
		g.sim.RebuildFlowField()
		g.collector.RecordRebuild()
	}

	g.sim.Step()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perf.EndTick()
}

// restart re-scatters the pool and rebuilds the field from the current targets.
func (g *Game) restart() {
	g.sim.Initialize(g.cfg.Agents.Count, g.cfg.Derived.WorldW32, g.cfg.Derived.WorldH32)
	g.sim.RebuildFlowField()
	g.collector = telemetry.NewCollector(g.cfg.Telemetry.StatsWindow)
	g.bookmarks = telemetry.NewBookmarkDetector(10)
	if g.inspector != nil {
		g.inspector.Deselect()
	}
	slog.Info("simulation restarted", "agents", g.cfg.Agents.Count)
}

// Unload releases renderer resources and closes output files.
func (g *Game) Unload() {
	if g.thumbnail != nil {
		g.thumbnail.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
