package game

import (
	"log/slog"

	"github.com/pthm-cable/flock/telemetry"
)

// flushTelemetry writes a stats window when one has elapsed.
func (g *Game) flushTelemetry() {
	tick := g.sim.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick, g.flockState())
	perfStats := g.perf.Stats()

	g.checkBookmarks(stats)

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// flockState snapshots the simulation for the collector.
func (g *Game) flockState() telemetry.FlockState {
	s := g.sim
	return telemetry.FlockState{
		Agents:           s.Agents(),
		Grid:             s.Grid(),
		DensityLimit:     s.Steering().DensityLimit,
		TargetPoints:     s.TargetCount(),
		OccupiedCells:    s.OccupiedCells(),
		ActiveCount:      s.RecommendedActiveCount(),
		SeparationRadius: s.SeparationRadius(),
		PerceptionRadius: s.PerceptionRadius(),
	}
}
