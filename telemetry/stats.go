// Package telemetry collects windowed flock statistics and per-phase timings
// and writes them as CSV.
package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/systems"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`

	// Target set as of the last rebuild
	Rebuilds      int `csv:"rebuilds"`
	TargetPoints  int `csv:"target_points"`
	OccupiedCells int `csv:"occupied_cells"`

	// Derived parameters
	RecommendedActive int     `csv:"recommended_active"`
	SeparationRadius  float64 `csv:"separation_radius"`
	PerceptionRadius  float64 `csv:"perception_radius"`

	// Agent placement at window end
	Agents       int     `csv:"agents"`
	OnTarget     float64 `csv:"on_target"`     // fraction of agents inside occupied cells
	Coverage     float64 `csv:"coverage"`      // fraction of occupied cells holding an agent
	CrowdedCells int     `csv:"crowded_cells"` // occupied cells over the density limit
	OutOfGrid    int     `csv:"out_of_grid"`

	// Speed distribution at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// ComputeSpeedStats returns mean, sample standard deviation and empirical
// percentiles. Returns zeros for an empty slice. values is sorted in place.
func ComputeSpeedStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}
	mean, std = stat.MeanStdDev(values, nil)
	if math.IsNaN(std) {
		std = 0
	}

	sort.Float64s(values)
	p10 = stat.Quantile(0.10, stat.Empirical, values, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, values, nil)
	return mean, std, p10, p50, p90
}

// Placement summarises where agents sit relative to the target cells.
type Placement struct {
	OnTarget     float64
	Coverage     float64
	CrowdedCells int
	OutOfGrid    int
}

// MeasurePlacement inspects agent positions against the grid. Occupancy counts
// are recomputed here so the result does not depend on when the spatial index
// last ran.
func MeasurePlacement(agents []components.Agent, grid *systems.Grid, densityLimit int32, counts []int32) (Placement, []int32) {
	var p Placement
	cells := grid.Cells
	if cap(counts) < len(cells) {
		counts = make([]int32, len(cells))
	}
	counts = counts[:len(cells)]
	for i := range counts {
		counts[i] = 0
	}

	onTarget := 0
	for i := range agents {
		idx := grid.CellIndex(agents[i].X, agents[i].Y)
		if idx < 0 {
			p.OutOfGrid++
			continue
		}
		counts[idx]++
		if cells[idx].Occupied {
			onTarget++
		}
	}

	occupied, covered := 0, 0
	for i := range cells {
		if !cells[i].Occupied {
			continue
		}
		occupied++
		if counts[i] > 0 {
			covered++
		}
		if counts[i] > densityLimit {
			p.CrowdedCells++
		}
	}

	if len(agents) > 0 {
		p.OnTarget = float64(onTarget) / float64(len(agents))
	}
	if occupied > 0 {
		p.Coverage = float64(covered) / float64(occupied)
	}
	return p, counts
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("rebuilds", s.Rebuilds),
		slog.Int("target_points", s.TargetPoints),
		slog.Int("occupied_cells", s.OccupiedCells),
		slog.Int("recommended_active", s.RecommendedActive),
		slog.Float64("on_target", s.OnTarget),
		slog.Float64("coverage", s.Coverage),
		slog.Int("crowded_cells", s.CrowdedCells),
		slog.Float64("speed_mean", s.SpeedMean),
	)
}

// LogStats logs the window via slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
