package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/flock/components"
)

func TestIntegrateClampsSpeed(t *testing.T) {
	agents := []components.Agent{{X: 100, Y: 100, VX: 7, VY: 0}}
	Integrate(agents, 6, 800, 600)

	a := agents[0]
	if a.VX != 6 || a.VY != 0 {
		t.Errorf("velocity = (%v,%v), want (6,0)", a.VX, a.VY)
	}
	if a.X != 106 {
		t.Errorf("x = %v, want 106", a.X)
	}
}

func TestIntegrateWrap(t *testing.T) {
	tests := []struct {
		name         string
		agent        components.Agent
		wantX, wantY float32
	}{
		{"past right edge", components.Agent{X: 805, Y: 300}, 0, 300},
		{"past bottom edge", components.Agent{X: 10, Y: 599, VY: 3}, 10, 0},
		{"below left edge", components.Agent{X: 1, Y: 300, VX: -2}, 800, 300},
		{"below top edge", components.Agent{X: 10, Y: 0.5, VY: -1}, 10, 600},
		{"inside", components.Agent{X: 400, Y: 300, VX: 1, VY: 1}, 401, 301},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agents := []components.Agent{tt.agent}
			Integrate(agents, 6, 800, 600)
			if agents[0].X != tt.wantX || agents[0].Y != tt.wantY {
				t.Errorf("position = (%v,%v), want (%v,%v)", agents[0].X, agents[0].Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestIntegrateResetsForce(t *testing.T) {
	agents := []components.Agent{{X: 10, Y: 10, AX: 0.3, AY: -0.2}}
	Integrate(agents, 6, 800, 600)

	if agents[0].AX != 0 || agents[0].AY != 0 {
		t.Errorf("force = (%v,%v), want zero", agents[0].AX, agents[0].AY)
	}
	if agents[0].VX != 0.3 || agents[0].VY != -0.2 {
		t.Errorf("velocity = (%v,%v), want (0.3,-0.2)", agents[0].VX, agents[0].VY)
	}
}

func TestIntegrateSpeedLaw(t *testing.T) {
	rng := NewRNG(11)
	agents := make([]components.Agent, 2000)
	for i := range agents {
		agents[i] = components.Agent{
			X: rng.Range(0, 800), Y: rng.Range(0, 600),
			VX: rng.Range(-20, 20), VY: rng.Range(-20, 20),
			AX: rng.Range(-5, 5), AY: rng.Range(-5, 5),
		}
	}

	Integrate(agents, 6, 800, 600)

	for i := range agents {
		speed := math.Sqrt(float64(agents[i].SpeedSq()))
		if speed > 6+1e-4 {
			t.Fatalf("agent %d speed %v exceeds 6", i, speed)
		}
		if agents[i].X < 0 || agents[i].X > 800 || agents[i].Y < 0 || agents[i].Y > 600 {
			t.Fatalf("agent %d at (%v,%v) outside world", i, agents[i].X, agents[i].Y)
		}
	}
}

func TestLimitAndSetMag(t *testing.T) {
	rng := NewRNG(5)
	for i := 0; i < 1000; i++ {
		x, y := rng.Range(-50, 50), rng.Range(-50, 50)
		lx, ly := limit(x, y, 0.8)
		if m := math.Hypot(float64(lx), float64(ly)); m > 0.8+1e-5 {
			t.Fatalf("limit(%v,%v,0.8) magnitude %v", x, y, m)
		}
		sx, sy := setMag(x, y, 6)
		if m := math.Hypot(float64(sx), float64(sy)); math.Abs(m-6) > 1e-4 {
			t.Fatalf("setMag(%v,%v,6) magnitude %v", x, y, m)
		}
	}

	if x, y := setMag(0, 0, 6); x != 0 || y != 0 {
		t.Errorf("setMag of zero vector = (%v,%v)", x, y)
	}
	if x, y := limit(0, 0, 1); x != 0 || y != 0 {
		t.Errorf("limit of zero vector = (%v,%v)", x, y)
	}
	// Short vectors pass through untouched
	if x, y := limit(0.1, 0.2, 1); x != 0.1 || y != 0.2 {
		t.Errorf("limit(0.1,0.2,1) = (%v,%v)", x, y)
	}
}
