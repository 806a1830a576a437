// Package targets produces target point sets for the flock: sampling bright
// pixels from images, playing back frame sequences and generating simple
// animated silhouettes.
package targets

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Source yields the target points for a tick.
// changed is false when the previous set is still current; dst is then returned as is.
type Source interface {
	Next(tick int64, dst []float32) (points []float32, changed bool)
}

// Sampler scales images to world size and keeps every Rate-th pixel whose
// mean RGB brightness exceeds Threshold (0..255).
type Sampler struct {
	Width, Height int
	Rate          int
	Threshold     int

	canvas *image.RGBA
}

// NewSampler creates a sampler for a width×height world.
func NewSampler(width, height, rate, threshold int) *Sampler {
	if rate < 1 {
		rate = 1
	}
	return &Sampler{
		Width:     width,
		Height:    height,
		Rate:      rate,
		Threshold: threshold,
	}
}

// Sample appends the (x, y) world coordinates of bright lattice pixels in img to dst[:0].
func (s *Sampler) Sample(img image.Image, dst []float32) []float32 {
	dst = dst[:0]
	if s.Width <= 0 || s.Height <= 0 || img.Bounds().Empty() {
		return dst
	}

	if s.canvas == nil || s.canvas.Bounds().Dx() != s.Width || s.canvas.Bounds().Dy() != s.Height {
		s.canvas = image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	}
	// Nearest neighbour keeps hard silhouette edges
	xdraw.NearestNeighbor.Scale(s.canvas, s.canvas.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	pix := s.canvas.Pix
	stride := s.canvas.Stride
	for y := 0; y < s.Height; y += s.Rate {
		row := y * stride
		for x := 0; x < s.Width; x += s.Rate {
			i := row + x*4
			brightness := (int(pix[i]) + int(pix[i+1]) + int(pix[i+2])) / 3
			if brightness > s.Threshold {
				dst = append(dst, float32(x), float32(y))
			}
		}
	}
	return dst
}

// MaxPoints returns the number of lattice positions, the most Sample can return.
func (s *Sampler) MaxPoints() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	cols := (s.Width + s.Rate - 1) / s.Rate
	rows := (s.Height + s.Rate - 1) / s.Rate
	return cols * rows
}
