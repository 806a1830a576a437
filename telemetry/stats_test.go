package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/systems"
)

func TestComputeSpeedStats(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean, std, _, p50, _ := ComputeSpeedStats(values)

	if math.Abs(mean-5) > 1e-9 {
		t.Errorf("mean = %v, want 5", mean)
	}
	// Sample standard deviation: sqrt(32/7)
	if math.Abs(std-math.Sqrt(32.0/7.0)) > 1e-9 {
		t.Errorf("std = %v, want %v", std, math.Sqrt(32.0/7.0))
	}
	if p50 != 4 {
		t.Errorf("p50 = %v, want 4", p50)
	}
}

func TestComputeSpeedStatsPercentiles(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	_, _, p10, p50, p90 := ComputeSpeedStats(values)

	tests := []struct {
		name      string
		got, want float64
	}{
		{"p10", p10, 1},
		{"p50", p50, 5},
		{"p90", p90, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestComputeSpeedStatsEdgeCases(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeSpeedStats(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("expected all zeros for empty input")
	}

	mean, std, _, p50, _ = ComputeSpeedStats([]float64{3})
	if mean != 3 || p50 != 3 {
		t.Errorf("single value: mean=%v p50=%v, want 3", mean, p50)
	}
	if std != 0 {
		t.Errorf("single value std = %v, want 0", std)
	}
}

func TestMeasurePlacement(t *testing.T) {
	grid := systems.NewGrid(100, 100, 20)
	flow := systems.NewFlowField(grid)
	// Two occupied cells: (0,0) and (4,4)
	flow.Rebuild([]float32{5, 5, 85, 85})

	agents := []components.Agent{
		{X: 2, Y: 2},     // cell (0,0), on target
		{X: 3, Y: 3},     // cell (0,0), on target
		{X: 50, Y: 50},   // cell (2,2), off target
		{X: 150, Y: 150}, // outside grid
	}

	p, counts := MeasurePlacement(agents, grid, 1, nil)

	if math.Abs(p.OnTarget-0.5) > 1e-9 {
		t.Errorf("OnTarget = %v, want 0.5", p.OnTarget)
	}
	if math.Abs(p.Coverage-0.5) > 1e-9 {
		t.Errorf("Coverage = %v, want 0.5", p.Coverage)
	}
	if p.CrowdedCells != 1 {
		t.Errorf("CrowdedCells = %d, want 1", p.CrowdedCells)
	}
	if p.OutOfGrid != 1 {
		t.Errorf("OutOfGrid = %d, want 1", p.OutOfGrid)
	}
	if len(counts) != len(grid.Cells) {
		t.Errorf("counts length = %d, want %d", len(counts), len(grid.Cells))
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10)
	if c.ShouldFlush(5) {
		t.Error("should not flush before window ends")
	}
	if !c.ShouldFlush(10) {
		t.Error("should flush at window end")
	}

	c.RecordRebuild()
	c.RecordRebuild()

	agents := []components.Agent{{VX: 3, VY: 4}, {VX: 0, VY: 0}}
	stats := c.Flush(10, FlockState{Agents: agents, TargetPoints: 7, ActiveCount: 500})

	if stats.Rebuilds != 2 {
		t.Errorf("Rebuilds = %d, want 2", stats.Rebuilds)
	}
	if stats.Agents != 2 || stats.TargetPoints != 7 || stats.RecommendedActive != 500 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if math.Abs(stats.SpeedMean-2.5) > 1e-6 {
		t.Errorf("SpeedMean = %v, want 2.5", stats.SpeedMean)
	}

	// Counters reset for the next window
	if c.ShouldFlush(15) {
		t.Error("window should restart at last flush")
	}
	next := c.Flush(20, FlockState{})
	if next.Rebuilds != 0 {
		t.Errorf("Rebuilds after reset = %d, want 0", next.Rebuilds)
	}
	if next.WindowStartTick != 10 {
		t.Errorf("WindowStartTick = %d, want 10", next.WindowStartTick)
	}
}
