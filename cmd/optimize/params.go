package main

import (
	"math"

	"github.com/pthm-cable/flock/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable steering parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "target_force", Path: "steering.target_force", Min: 0.2, Max: 3.0, Default: 1.0},
			{Name: "separation_weight", Path: "steering.separation_weight", Min: 0.0, Max: 4.0, Default: 1.5},
			{Name: "max_force", Path: "physics.max_force", Min: 0.1, Max: 2.0, Default: 0.4},
			{Name: "density_limit", Path: "steering.density_limit", Min: 2, Max: 15, Default: 5},
			{Name: "reroute_radius", Path: "steering.reroute_radius", Min: 1, Max: 8, Default: 4},
			{Name: "crowd_jitter", Path: "steering.crowd_jitter", Min: 0, Max: 20, Default: 10},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Min(math.Max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)

	cfg.Steering.TargetForce = c[0]
	cfg.Steering.SeparationWeight = c[1]
	cfg.Physics.MaxForce = c[2]
	cfg.Steering.DensityLimit = int(math.Round(c[3]))
	cfg.Steering.RerouteRadius = int(math.Round(c[4]))
	cfg.Steering.CrowdJitter = c[5]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Steering.TargetForce,
		cfg.Steering.SeparationWeight,
		cfg.Physics.MaxForce,
		float64(cfg.Steering.DensityLimit),
		float64(cfg.Steering.RerouteRadius),
		cfg.Steering.CrowdJitter,
	}
}
