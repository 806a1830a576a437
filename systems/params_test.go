package systems

import (
	"math"
	"testing"
)

func TestParamControllerUpdate(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		wantActive int
		wantSep    float32
		wantPerc   float32
	}{
		{"no targets", 0, 500, 3, 10},
		{"half capacity", 3750, 2750, 4.5, 11},
		{"full capacity", 7500, 5000, 6, 12},
		{"over capacity clamps population", 15000, 5000, 9, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParamController(DefaultParamConfig())
			p.Update(tt.points)

			if got := p.ActiveCount(); got != tt.wantActive {
				t.Errorf("ActiveCount = %d, want %d", got, tt.wantActive)
			}
			if got := p.SeparationRadius(); math.Abs(float64(got-tt.wantSep)) > 1e-5 {
				t.Errorf("SeparationRadius = %v, want %v", got, tt.wantSep)
			}
			if got := p.PerceptionRadius(); math.Abs(float64(got-tt.wantPerc)) > 1e-5 {
				t.Errorf("PerceptionRadius = %v, want %v", got, tt.wantPerc)
			}
		})
	}
}

func TestParamControllerMonotonic(t *testing.T) {
	p := NewParamController(DefaultParamConfig())
	prev := -1
	for n := 0; n <= 9000; n += 37 {
		p.Update(n)
		got := p.ActiveCount()
		if got < prev {
			t.Fatalf("ActiveCount decreased at %d points: %d < %d", n, got, prev)
		}
		prev = got
	}
}

func TestParamControllerStatic(t *testing.T) {
	cfg := DefaultParamConfig()
	cfg.Dynamic = false
	p := NewParamController(cfg)
	p.Update(7500)

	if p.SeparationRadius() != 10 || p.PerceptionRadius() != 20 {
		t.Errorf("static radii = %v/%v, want 10/20", p.SeparationRadius(), p.PerceptionRadius())
	}
	// Population recommendation is still density-driven
	if p.ActiveCount() != 5000 {
		t.Errorf("ActiveCount = %d, want 5000", p.ActiveCount())
	}

	p.SetDynamic(true)
	p.Update(0)
	if p.SeparationRadius() != 3 {
		t.Errorf("SeparationRadius after enabling dynamic = %v, want 3", p.SeparationRadius())
	}
}

func TestParamControllerZeroCapacity(t *testing.T) {
	cfg := DefaultParamConfig()
	cfg.MaxTargetPoints = 0
	p := NewParamController(cfg)
	p.Update(100)

	if p.Ratio() != 0 || p.ActiveCount() != cfg.MinPopulation {
		t.Errorf("zero capacity: ratio=%v active=%d", p.Ratio(), p.ActiveCount())
	}
}
