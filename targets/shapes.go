package targets

import (
	"fmt"
	"math"
)

// Shape kinds understood by ShapeSource.
const (
	ShapeRing  = "ring"
	ShapeDisc  = "disc"
	ShapeOrbit = "orbit"
)

// ShapeSource generates animated silhouettes on the sampling lattice, for
// runs without recorded frames.
type ShapeSource struct {
	kind          string
	width, height float32
	rate          int
	interval      int

	last int64
}

// NewShapeSource creates a procedural source. interval is ticks per regenerated frame.
func NewShapeSource(kind string, width, height, rate, interval int) (*ShapeSource, error) {
	switch kind {
	case ShapeRing, ShapeDisc, ShapeOrbit:
	default:
		return nil, fmt.Errorf("unknown shape %q", kind)
	}
	if rate < 1 {
		rate = 1
	}
	if interval < 1 {
		interval = 1
	}
	return &ShapeSource{
		kind:     kind,
		width:    float32(width),
		height:   float32(height),
		rate:     rate,
		interval: interval,
		last:     -1,
	}, nil
}

// Next implements Source.
func (s *ShapeSource) Next(tick int64, dst []float32) ([]float32, bool) {
	frame := tick / int64(s.interval)
	if frame == s.last {
		return dst, false
	}
	s.last = frame
	return s.Generate(frame, dst), true
}

// Generate appends the lattice points inside the shape at frame to dst[:0].
func (s *ShapeSource) Generate(frame int64, dst []float32) []float32 {
	dst = dst[:0]
	minDim := s.width
	if s.height < minDim {
		minDim = s.height
	}
	cx, cy := s.width/2, s.height/2
	phase := float64(frame) * 0.02

	var inside func(x, y float32) bool
	switch s.kind {
	case ShapeDisc:
		// Breathing disc
		r := minDim * (0.2 + 0.1*float32(math.Sin(phase)))
		inside = func(x, y float32) bool {
			return distSq(x-cx, y-cy) <= r*r
		}
	case ShapeRing:
		outer := minDim * 0.35
		inner := outer * (0.55 + 0.25*float32(math.Sin(phase)))
		inside = func(x, y float32) bool {
			d := distSq(x-cx, y-cy)
			return d <= outer*outer && d >= inner*inner
		}
	default:
		// Blob orbiting the centre
		orbit := minDim * 0.25
		bx := cx + orbit*float32(math.Cos(phase))
		by := cy + orbit*float32(math.Sin(phase))
		r := minDim * 0.15
		inside = func(x, y float32) bool {
			return distSq(x-bx, y-by) <= r*r
		}
	}

	step := float32(s.rate)
	for y := float32(0); y < s.height; y += step {
		for x := float32(0); x < s.width; x += step {
			if inside(x, y) {
				dst = append(dst, x, y)
			}
		}
	}
	return dst
}

func distSq(dx, dy float32) float32 {
	return dx*dx + dy*dy
}
