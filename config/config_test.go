package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Derived.WorldW32 != 800 || cfg.Derived.WorldH32 != 600 {
		t.Errorf("world = %vx%v, want 800x600", cfg.Derived.WorldW32, cfg.Derived.WorldH32)
	}
	if cfg.Derived.Cols != 40 || cfg.Derived.Rows != 30 {
		t.Errorf("grid = %dx%d, want 40x30", cfg.Derived.Cols, cfg.Derived.Rows)
	}
	if cfg.Physics.MaxSpeed != 6 {
		t.Errorf("max_speed = %v, want 6", cfg.Physics.MaxSpeed)
	}
	if cfg.Steering.DensityLimit != 5 {
		t.Errorf("density_limit = %d, want 5", cfg.Steering.DensityLimit)
	}
	if cfg.Agents.Seed != 12345 {
		t.Errorf("seed = %d, want 12345", cfg.Agents.Seed)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("world:\n  width: 100\n  height: 100\nsteering:\n  separation: false\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Derived.WorldW32 != 100 {
		t.Errorf("world width = %v, want 100", cfg.Derived.WorldW32)
	}
	if cfg.Derived.Cols != 5 {
		t.Errorf("cols = %d, want 5", cfg.Derived.Cols)
	}
	if cfg.Steering.Separation {
		t.Error("separation should be disabled by overlay")
	}
	// Fields absent from the overlay keep their defaults
	if cfg.Steering.TargetForce != 1 {
		t.Errorf("target_force = %v, want default 1", cfg.Steering.TargetForce)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero cell size", "grid:\n  cell_size: 0\n"},
		{"inverted population", "tuning:\n  min_population: 10\n  max_population: 5\n"},
		{"unknown source", "targets:\n  source: webcam\n"},
		{"bad sample rate", "targets:\n  sample_rate: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Steering.TargetForce = 1.25

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Steering.TargetForce != 1.25 {
		t.Errorf("target_force = %v, want 1.25", loaded.Steering.TargetForce)
	}
}
