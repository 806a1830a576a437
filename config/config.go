// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Grid      GridConfig      `yaml:"grid"`
	Agents    AgentsConfig    `yaml:"agents"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Steering  SteeringConfig  `yaml:"steering"`
	Tuning    TuningConfig    `yaml:"tuning"`
	Targets   TargetsConfig   `yaml:"targets"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
type WorldConfig struct {
	Width  int `yaml:"width"`  // 0 = use screen width
	Height int `yaml:"height"` // 0 = use screen height
}

// GridConfig holds the bucket grid layout.
type GridConfig struct {
	CellSize float64 `yaml:"cell_size"`
}

// AgentsConfig holds agent pool parameters.
type AgentsConfig struct {
	Count        int     `yaml:"count"`
	InitialSpeed float64 `yaml:"initial_speed"` // initial velocity components drawn from [-v, v]
	Seed         uint32  `yaml:"seed"`
}

// PhysicsConfig holds integration limits.
type PhysicsConfig struct {
	MaxSpeed float64 `yaml:"max_speed"`
	MaxForce float64 `yaml:"max_force"`
}

// SteeringConfig holds steering weights and toggles.
type SteeringConfig struct {
	Separation       bool    `yaml:"separation"`
	TargetForce      float64 `yaml:"target_force"`
	SeparationWeight float64 `yaml:"separation_weight"`
	DensityLimit     int     `yaml:"density_limit"`
	RerouteRadius    int     `yaml:"reroute_radius"`
	CrowdJitter      float64 `yaml:"crowd_jitter"` // jitter around a saturated centroid
	IdleJitter       float64 `yaml:"idle_jitter"`  // jitter in cells with no flow
}

// TuningConfig holds density-driven parameter endpoints.
type TuningConfig struct {
	Dynamic          bool    `yaml:"dynamic"`
	MinPopulation    int     `yaml:"min_population"`
	MaxPopulation    int     `yaml:"max_population"`
	MaxTargetPoints  float64 `yaml:"max_target_points"`
	SeparationMin    float64 `yaml:"separation_min"`
	SeparationMax    float64 `yaml:"separation_max"`
	PerceptionMin    float64 `yaml:"perception_min"`
	PerceptionMax    float64 `yaml:"perception_max"`
	StaticSeparation float64 `yaml:"static_separation"`
	StaticPerception float64 `yaml:"static_perception"`
}

// TargetsConfig holds target-point source parameters.
type TargetsConfig struct {
	Source        string `yaml:"source"` // "shapes" or "frames"
	FramesDir     string `yaml:"frames_dir"`
	SampleRate    int    `yaml:"sample_rate"`
	Threshold     int    `yaml:"threshold"`
	FrameInterval int    `yaml:"frame_interval"`
	Lookahead     int    `yaml:"lookahead"`
	Shape         string `yaml:"shape"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
	PerfWindow  int `yaml:"perf_window"`  // ticks in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW32 float32 // Effective world width as float32
	WorldH32 float32 // Effective world height as float32
	Cols     int     // Grid columns
	Rows     int     // Grid rows
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cell_size must be positive, got %v", c.Grid.CellSize)
	}
	if c.Agents.Count < 0 {
		return fmt.Errorf("agents.count must not be negative, got %d", c.Agents.Count)
	}
	if c.Tuning.MinPopulation > c.Tuning.MaxPopulation {
		return fmt.Errorf("tuning.min_population (%d) exceeds max_population (%d)",
			c.Tuning.MinPopulation, c.Tuning.MaxPopulation)
	}
	if c.Targets.SampleRate <= 0 {
		return fmt.Errorf("targets.sample_rate must be positive, got %d", c.Targets.SampleRate)
	}
	switch c.Targets.Source {
	case "shapes", "frames":
	default:
		return fmt.Errorf("targets.source must be \"shapes\" or \"frames\", got %q", c.Targets.Source)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)

	c.Derived.Cols = int(math.Ceil(float64(worldW) / c.Grid.CellSize))
	c.Derived.Rows = int(math.Ceil(float64(worldH) / c.Grid.CellSize))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
