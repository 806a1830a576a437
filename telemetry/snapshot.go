package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/flock/components"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the complete simulation state for resuming a run.
type Snapshot struct {
	Version  int    `json:"version"`
	Seed     uint32 `json:"seed"`
	RNGState uint32 `json:"rng_state"`

	WorldWidth  float32 `json:"world_width"`
	WorldHeight float32 `json:"world_height"`
	CellSize    float32 `json:"cell_size"`

	Tick int64 `json:"tick"`

	Agents  []AgentState `json:"agents"`
	Targets []float32    `json:"targets"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// AgentState holds one agent's position and velocity. Forces are always
// zero between steps and are not stored.
type AgentState struct {
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
	VelX float32 `json:"vel_x"`
	VelY float32 `json:"vel_y"`
}

// AgentStates converts the agent pool to its JSON form.
func AgentStates(agents []components.Agent) []AgentState {
	out := make([]AgentState, len(agents))
	for i := range agents {
		a := &agents[i]
		out[i] = AgentState{X: a.X, Y: a.Y, VelX: a.VX, VelY: a.VY}
	}
	return out
}

// RestoreAgents converts the stored agents back into a pool.
func (s *Snapshot) RestoreAgents() []components.Agent {
	out := make([]components.Agent, len(s.Agents))
	for i, st := range s.Agents {
		out[i].X, out[i].Y = st.X, st.Y
		out[i].VX, out[i].VY = st.VelX, st.VelY
	}
	return out
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	name += ".json"

	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}

	return &snapshot, nil
}
