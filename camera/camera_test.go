package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(800, 600, 800, 600)

	if cam.X != 400 || cam.Y != 300 {
		t.Errorf("expected camera at (400, 300), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 || cam.MinZoom != 1.0 {
		t.Errorf("expected zoom 1 and min zoom 1, got %f / %f", cam.Zoom, cam.MinZoom)
	}
	if ox, oy := cam.Origin(); ox != 0 || oy != 0 {
		t.Errorf("expected origin (0, 0), got (%f, %f)", ox, oy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.SetZoom(2)

	testCases := []struct{ sx, sy float32 }{
		{400, 300}, // center
		{10, 10},   // top-left
		{790, 590}, // bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestToroidalWrap(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.X = 50

	// A boid just across the right edge is nearer on the left of the camera
	sx, _ := cam.WorldToScreen(790, 300)
	if !near(sx, 340) {
		t.Errorf("expected wrapped x=340, got %f", sx)
	}
}

func TestPanWraps(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.X = 100

	cam.Pan(-200, 0)
	if cam.X != 700 {
		t.Errorf("expected X to wrap to 700, got %f", cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(800, 600, 1600, 800)

	// max(800/1600, 600/800) = 0.75
	if !near(cam.MinZoom, 0.75) {
		t.Errorf("expected MinZoom 0.75, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1)
	if !near(cam.Zoom, 0.75) {
		t.Errorf("expected zoom clamped to 0.75, got %f", cam.Zoom)
	}

	cam.SetZoom(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
}

func TestZoomAtKeepsCursorPoint(t *testing.T) {
	cam := New(800, 600, 800, 600)

	wx, wy := cam.ScreenToWorld(200, 150)
	cam.ZoomAt(2, 200, 150)

	if cam.Zoom != 2 {
		t.Fatalf("expected zoom 2, got %f", cam.Zoom)
	}
	sx, sy := cam.WorldToScreen(wx, wy)
	if !near(sx, 200) || !near(sy, 150) {
		t.Errorf("cursor point moved to (%f, %f)", sx, sy)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.SetZoom(4) // visible: (300, 225) to (500, 375)

	if !cam.IsVisible(400, 300, 0) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(100, 100, 2) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(290, 300, 20) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestResizeRaisesZoom(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.Resize(1600, 600)

	if cam.MinZoom != 2 || cam.Zoom != 2 {
		t.Errorf("expected min zoom and zoom 2, got %f / %f", cam.MinZoom, cam.Zoom)
	}
}

func TestReset(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.X, cam.Y, cam.Zoom = 10, 20, 3

	cam.Reset()

	if cam.X != 400 || cam.Y != 300 || cam.Zoom != 1 {
		t.Errorf("expected (400, 300) at zoom 1, got (%f, %f) at %f", cam.X, cam.Y, cam.Zoom)
	}
}
