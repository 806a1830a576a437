package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/flock/components"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{
		Version:     SnapshotVersion,
		Seed:        42,
		RNGState:    987654321,
		WorldWidth:  800,
		WorldHeight: 600,
		CellSize:    20,
		Tick:        1000,
		Agents: []AgentState{
			{X: 150, Y: 250, VelX: 0.5, VelY: -0.3},
			{X: 10, Y: 20, VelX: -1, VelY: 2},
		},
		Targets: []float32{100, 100, 104, 100},
		Bookmark: &Bookmark{
			Type:        BookmarkConverged,
			Tick:        1000,
			Description: "Test bookmark",
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Snapshot file not created at %s", path)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if loaded.Seed != snapshot.Seed {
		t.Errorf("Seed mismatch: got %d, want %d", loaded.Seed, snapshot.Seed)
	}
	if loaded.RNGState != snapshot.RNGState {
		t.Errorf("RNGState mismatch: got %d, want %d", loaded.RNGState, snapshot.RNGState)
	}
	if loaded.Tick != snapshot.Tick {
		t.Errorf("Tick mismatch: got %d, want %d", loaded.Tick, snapshot.Tick)
	}
	if len(loaded.Agents) != len(snapshot.Agents) {
		t.Fatalf("Agents count mismatch: got %d, want %d", len(loaded.Agents), len(snapshot.Agents))
	}
	if loaded.Agents[1] != snapshot.Agents[1] {
		t.Errorf("Agent mismatch: got %+v, want %+v", loaded.Agents[1], snapshot.Agents[1])
	}
	if len(loaded.Targets) != 4 || loaded.Targets[2] != 104 {
		t.Errorf("Targets mismatch: got %v", loaded.Targets)
	}
	if loaded.Bookmark == nil {
		t.Error("Bookmark not loaded")
	} else if loaded.Bookmark.Type != snapshot.Bookmark.Type {
		t.Errorf("Bookmark type mismatch: got %s, want %s", loaded.Bookmark.Type, snapshot.Bookmark.Type)
	}
}

func TestSnapshotFilename(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{
		Version: SnapshotVersion,
		Tick:    5000,
		Bookmark: &Bookmark{
			Type: BookmarkScattered,
			Tick: 5000,
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	expected := filepath.Join(tmpDir, "snapshot_5000_scattered.json")
	if path != expected {
		t.Errorf("Path mismatch: got %s, want %s", path, expected)
	}

	snapshotNoBookmark := &Snapshot{
		Version: SnapshotVersion,
		Tick:    3000,
	}

	path, err = SaveSnapshot(snapshotNoBookmark, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	expected = filepath.Join(tmpDir, "snapshot_3000.json")
	if path != expected {
		t.Errorf("Path mismatch: got %s, want %s", path, expected)
	}
}

func TestLoadSnapshotRejectsVersion(t *testing.T) {
	tmpDir := t.TempDir()
	path, err := SaveSnapshot(&Snapshot{Version: SnapshotVersion + 1, Tick: 1}, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected version error")
	}
}

func TestAgentStatesRoundTrip(t *testing.T) {
	agents := []components.Agent{
		{X: 1, Y: 2, VX: 3, VY: 4, AX: 9, AY: 9},
		{X: 5, Y: 6, VX: -1, VY: -2},
	}

	snap := Snapshot{Agents: AgentStates(agents)}
	restored := snap.RestoreAgents()

	if len(restored) != len(agents) {
		t.Fatalf("len = %d, want %d", len(restored), len(agents))
	}
	for i := range agents {
		a, r := agents[i], restored[i]
		if r.X != a.X || r.Y != a.Y || r.VX != a.VX || r.VY != a.VY {
			t.Errorf("agent %d: got %+v, want %+v", i, r, a)
		}
		if r.AX != 0 || r.AY != 0 {
			t.Errorf("agent %d: forces not cleared", i)
		}
	}
}
