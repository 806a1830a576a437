package main

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/game"
	"github.com/pthm-cable/flock/targets"
	"github.com/pthm-cable/flock/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int64
	seeds      []uint32
	shapes     []string
	baseConfig *config.Config

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator. Every parameter vector is run
// once per seed and shape.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []uint32, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		shapes:     []string{targets.ShapeDisc, targets.ShapeRing, targets.ShapeOrbit},
		baseConfig: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// Quality component weights.
const (
	qualityWeightOnTarget  = 0.45
	qualityWeightCoverage  = 0.35
	qualityWeightStability = 0.20

	qualityWarmupWindows = 2 // skip first N windows while the flock gathers
)

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is negative mean quality over all runs.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	type run struct {
		seed  uint32
		shape string
	}
	var runs []run
	for _, s := range fe.seeds {
		for _, shape := range fe.shapes {
			runs = append(runs, run{seed: s, shape: shape})
		}
	}

	qualities := make([]float64, len(runs))
	var wg sync.WaitGroup
	for i, r := range runs {
		wg.Add(1)
		go func(idx int, r run) {
			defer wg.Done()
			windows, err := fe.runSimulation(x, r.seed, r.shape)
			if err != nil {
				slog.Error("run failed", "seed", r.seed, "shape", r.shape, "error", err)
				return
			}
			qualities[idx] = computeQuality(windows)
		}(i, r)
	}
	wg.Wait()

	quality := stat.Mean(qualities, nil)

	fe.mu.Lock()
	fe.lastQuality = quality
	fe.mu.Unlock()

	return -quality
}

// runSimulation executes a single headless run and returns its stats windows.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed uint32, shape string) ([]telemetry.WindowStats, error) {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	cfg.Agents.Seed = seed
	cfg.Targets.Source = "shapes"
	cfg.Targets.Shape = shape

	g, err := game.NewGameWithOptions(game.GameOptions{
		Config:         cfg,
		Headless:       true,
		StepsPerUpdate: 1,
	})
	if err != nil {
		return nil, err
	}
	defer g.Unload()

	var windows []telemetry.WindowStats
	g.SetStatsCallback(func(stats telemetry.WindowStats) {
		windows = append(windows, stats)
	})

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}
	return windows, nil
}

// copyConfig creates a copy of the base config. Config holds no references,
// so a value copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeQuality scores a run in [0, 1]: how much of the flock sits on the
// silhouette, how much of the silhouette is covered, and how steady both are.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	onTarget := make([]float64, len(valid))
	coverage := make([]float64, len(valid))
	for i, w := range valid {
		onTarget[i] = w.OnTarget
		coverage[i] = w.Coverage
	}

	meanOn, stdOn := stat.MeanStdDev(onTarget, nil)
	meanCov, stdCov := stat.MeanStdDev(coverage, nil)

	stability := 1.0
	if len(valid) >= 2 {
		stability = math.Exp(-(stdOn*stdOn + stdCov*stdCov) * 25)
	}

	quality := qualityWeightOnTarget*meanOn +
		qualityWeightCoverage*meanCov +
		qualityWeightStability*stability

	return clamp01(quality)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
