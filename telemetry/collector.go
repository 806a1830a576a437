package telemetry

import (
	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/systems"
)

// FlockState is the per-window view of a simulation the collector needs.
type FlockState struct {
	Agents           []components.Agent
	Grid             *systems.Grid
	DensityLimit     int32
	TargetPoints     int
	OccupiedCells    int
	ActiveCount      int
	SeparationRadius float32
	PerceptionRadius float32
}

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     int64
	windowStartTick int64

	rebuilds int

	// Scratch buffers reused across flushes
	speeds []float64
	counts []int32
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int64(windowTicks)}
}

// StartAt begins the current window at tick, for runs resumed mid-way.
func (c *Collector) StartAt(tick int64) {
	c.windowStartTick = tick
}

// RecordRebuild records a flow-field rebuild.
func (c *Collector) RecordRebuild() {
	c.rebuilds++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, st FlockState) WindowStats {
	c.speeds = c.speeds[:0]
	for i := range st.Agents {
		c.speeds = append(c.speeds, float64(sqrt32(st.Agents[i].SpeedSq())))
	}
	mean, std, p10, p50, p90 := ComputeSpeedStats(c.speeds)

	var placement Placement
	if st.Grid != nil {
		placement, c.counts = MeasurePlacement(st.Agents, st.Grid, st.DensityLimit, c.counts)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Rebuilds:      c.rebuilds,
		TargetPoints:  st.TargetPoints,
		OccupiedCells: st.OccupiedCells,

		RecommendedActive: st.ActiveCount,
		SeparationRadius:  float64(st.SeparationRadius),
		PerceptionRadius:  float64(st.PerceptionRadius),

		Agents:       len(st.Agents),
		OnTarget:     placement.OnTarget,
		Coverage:     placement.Coverage,
		CrowdedCells: placement.CrowdedCells,
		OutOfGrid:    placement.OutOfGrid,

		SpeedMean: mean,
		SpeedStd:  std,
		SpeedP10:  p10,
		SpeedP50:  p50,
		SpeedP90:  p90,
	}

	c.windowStartTick = currentTick
	c.rebuilds = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowTicks
}
