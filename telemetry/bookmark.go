package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkConverged BookmarkType = "converged"
	BookmarkScattered BookmarkType = "scattered"
	BookmarkSaturated BookmarkType = "saturated"
	BookmarkStable    BookmarkType = "stable"
)

// Thresholds for the detectors.
const (
	convergedOnTarget = 0.5
	scatterDrop       = 0.30
	scatterMinPeak    = 0.2
	stableWindows     = 5
	stableCVSq        = 0.01 // CV < 0.1
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `json:"type"`
	Tick        int64        `json:"tick"`
	Description string       `json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in a flock run.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	converged          bool    // on-target fraction currently above the converged threshold
	saturated          bool    // more than half the target cells over the density limit
	recentPeak         float64 // peak on-target fraction since the last scatter
	stableWindowsCount int     // consecutive windows with steady placement

	onTarget, coverage []float64 // scratch for the stability check
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for stability detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	for _, check := range []func(WindowStats) *Bookmark{
		bd.checkConverged,
		bd.checkScattered,
		bd.checkSaturated,
	} {
		if b := check(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)

	// Stability looks at the window just added
	if b := bd.checkStable(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if stats.OnTarget > bd.recentPeak {
		bd.recentPeak = stats.OnTarget
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// recent returns up to n of the latest windows, oldest first.
func (bd *BookmarkDetector) recent(n int) []WindowStats {
	size := bd.historyIdx
	if bd.historyFull {
		size = bd.historySize
	}
	n = min(n, size)
	out := make([]WindowStats, n)
	for i := range n {
		idx := (bd.historyIdx - n + i + bd.historySize) % bd.historySize
		out[i] = bd.history[idx]
	}
	return out
}

func (bd *BookmarkDetector) checkConverged(stats WindowStats) *Bookmark {
	if stats.OnTarget < convergedOnTarget {
		bd.converged = false
		return nil
	}
	if bd.converged {
		return nil
	}
	bd.converged = true
	return &Bookmark{
		Type:        BookmarkConverged,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%.0f%% of agents on target, coverage %.0f%%", stats.OnTarget*100, stats.Coverage*100),
	}
}

func (bd *BookmarkDetector) checkScattered(stats WindowStats) *Bookmark {
	if bd.recentPeak < scatterMinPeak {
		return nil
	}

	drop := 1 - stats.OnTarget/bd.recentPeak
	if drop <= scatterDrop {
		return nil
	}

	// Reset peak after a scatter
	oldPeak := bd.recentPeak
	bd.recentPeak = stats.OnTarget
	return &Bookmark{
		Type:        BookmarkScattered,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("On-target fell %.0f%% from peak %.2f to %.2f", drop*100, oldPeak, stats.OnTarget),
	}
}

func (bd *BookmarkDetector) checkSaturated(stats WindowStats) *Bookmark {
	over := stats.OccupiedCells > 0 && stats.CrowdedCells*2 > stats.OccupiedCells
	if !over {
		bd.saturated = false
		return nil
	}
	if bd.saturated {
		return nil
	}
	bd.saturated = true
	return &Bookmark{
		Type:        BookmarkSaturated,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d of %d target cells over the density limit", stats.CrowdedCells, stats.OccupiedCells),
	}
}

func (bd *BookmarkDetector) checkStable(stats WindowStats) *Bookmark {
	if stats.OnTarget < scatterMinPeak {
		bd.stableWindowsCount = 0
		return nil
	}

	window := bd.recent(4)
	if len(window) < 4 {
		return nil
	}

	bd.onTarget = bd.onTarget[:0]
	bd.coverage = bd.coverage[:0]
	for _, h := range window {
		bd.onTarget = append(bd.onTarget, h.OnTarget)
		bd.coverage = append(bd.coverage, h.Coverage)
	}

	if cvSq(bd.onTarget) < stableCVSq && cvSq(bd.coverage) < stableCVSq {
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	if bd.stableWindowsCount == stableWindows { // trigger exactly once per stable run
		return &Bookmark{
			Type:        BookmarkStable,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Placement steady at %.2f on target, %.2f coverage", stats.OnTarget, stats.Coverage),
		}
	}
	return nil
}

// cvSq returns the squared coefficient of variation, or 0 for a zero mean.
func cvSq(values []float64) float64 {
	mean, variance := stat.MeanVariance(values, nil)
	if mean == 0 {
		return 0
	}
	return variance / (mean * mean)
}
