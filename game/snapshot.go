package game

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/pthm-cable/flock/telemetry"
)

// snapshot captures the simulation state, tagged with bm when non-nil.
func (g *Game) snapshot(bm *telemetry.Bookmark) *telemetry.Snapshot {
	s := g.sim
	w, h := s.Size()
	return &telemetry.Snapshot{
		Version:     telemetry.SnapshotVersion,
		Seed:        s.Seed(),
		RNGState:    s.RNGState(),
		WorldWidth:  w,
		WorldHeight: h,
		CellSize:    s.Grid().CellSize(),
		Tick:        s.Tick(),
		Agents:      telemetry.AgentStates(s.Agents()),
		Targets:     append([]float32(nil), s.Targets()...),
		Bookmark:    bm,
	}
}

// saveSnapshot writes the current state under the output directory.
// It is a no-op when output is disabled.
func (g *Game) saveSnapshot(bm *telemetry.Bookmark) {
	if g.output == nil {
		return
	}
	path, err := telemetry.SaveSnapshot(g.snapshot(bm), filepath.Join(g.output.Dir(), "snapshots"))
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	slog.Info("snapshot saved", "path", path, "tick", g.sim.Tick())
}

// resume restores a snapshot into the freshly initialized simulation.
// The world and cell size must match the running configuration.
func (g *Game) resume(snap *telemetry.Snapshot) error {
	w, h := g.sim.Size()
	if snap.WorldWidth != w || snap.WorldHeight != h {
		return fmt.Errorf("snapshot world %vx%v does not match %vx%v", snap.WorldWidth, snap.WorldHeight, w, h)
	}
	if cs := g.sim.Grid().CellSize(); snap.CellSize != cs {
		return fmt.Errorf("snapshot cell size %v does not match %v", snap.CellSize, cs)
	}

	g.sim.Restore(snap.Tick, snap.RNGState, snap.RestoreAgents())
	g.collector.StartAt(snap.Tick)
	if len(snap.Targets) > 0 {
		g.sim.SetTargets(snap.Targets)
		g.sim.RebuildFlowField()
	}
	slog.Info("resumed from snapshot", "tick", snap.Tick, "agents", len(snap.Agents))
	return nil
}

// checkBookmarks logs triggered bookmarks and snapshots each one. Quiet runs
// with neither stats logging nor output skip detection.
func (g *Game) checkBookmarks(stats telemetry.WindowStats) {
	if !g.logStats && g.output == nil {
		return
	}
	for _, bm := range g.bookmarks.Check(stats) {
		bm.LogBookmark()
		g.saveSnapshot(&bm)
	}
}
