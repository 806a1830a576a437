package targets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FrameSource plays back a directory of still frames as target sets.
// Frames are decoded lazily, one per interval ticks, looping at the end.
type FrameSource struct {
	paths     []string
	sampler   *Sampler
	interval  int
	lookahead int

	current int
}

// NewFrameSource lists the PNG/JPEG frames in dir, sorted by file name.
// lookahead shifts playback ahead of the displayed frame so the flock has
// time to arrive.
func NewFrameSource(dir string, sampler *Sampler, interval, lookahead int) (*FrameSource, error) {
	paths, err := ListFrames(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no frames found in %s", dir)
	}
	if interval < 1 {
		interval = 1
	}
	return &FrameSource{
		paths:     paths,
		sampler:   sampler,
		interval:  interval,
		lookahead: lookahead,
		current:   -1,
	}, nil
}

// ListFrames returns the image files in dir sorted by name.
func ListFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading frames dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Len returns the number of frames.
func (f *FrameSource) Len() int { return len(f.paths) }

// FrameIndex returns the frame shown at tick, including lookahead.
func (f *FrameSource) FrameIndex(tick int64) int {
	idx := (int(tick)/f.interval + f.lookahead) % len(f.paths)
	if idx < 0 {
		idx += len(f.paths)
	}
	return idx
}

// ShownPath returns the frame on screen at tick, without lookahead.
func (f *FrameSource) ShownPath(tick int64) string {
	return f.paths[(int(tick)/f.interval)%len(f.paths)]
}

// Next implements Source.
func (f *FrameSource) Next(tick int64, dst []float32) ([]float32, bool) {
	idx := f.FrameIndex(tick)
	if idx == f.current {
		return dst, false
	}
	f.current = idx

	img, err := DecodeFile(f.paths[idx])
	if err != nil {
		slog.Warn("skipping frame", "path", f.paths[idx], "error", err)
		return dst, false
	}
	return f.sampler.Sample(img, dst), true
}

// DecodeFile decodes a PNG or JPEG image.
func DecodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening frame: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
