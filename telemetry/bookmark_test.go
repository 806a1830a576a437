package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_Converged(t *testing.T) {
	bd := NewBookmarkDetector(10)

	if got := bd.Check(WindowStats{WindowEndTick: 600, OnTarget: 0.1}); hasBookmark(got, BookmarkConverged) {
		t.Fatal("converged fired below threshold")
	}
	if got := bd.Check(WindowStats{WindowEndTick: 1200, OnTarget: 0.6}); !hasBookmark(got, BookmarkConverged) {
		t.Fatal("expected converged bookmark")
	}
	// Staying above the threshold does not fire again
	if got := bd.Check(WindowStats{WindowEndTick: 1800, OnTarget: 0.7}); hasBookmark(got, BookmarkConverged) {
		t.Error("converged fired twice without dropping below threshold")
	}
}

func TestBookmarkDetector_Scattered(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := range 3 {
		bd.Check(WindowStats{WindowEndTick: int64(i * 600), OnTarget: 0.8})
	}

	got := bd.Check(WindowStats{WindowEndTick: 1800, OnTarget: 0.3})
	if !hasBookmark(got, BookmarkScattered) {
		t.Fatal("expected scattered bookmark")
	}

	// Peak resets, so a small further dip is quiet
	got = bd.Check(WindowStats{WindowEndTick: 2400, OnTarget: 0.25})
	if hasBookmark(got, BookmarkScattered) {
		t.Error("scattered fired again without a new peak")
	}
}

func TestBookmarkDetector_Saturated(t *testing.T) {
	bd := NewBookmarkDetector(10)

	got := bd.Check(WindowStats{WindowEndTick: 600, OccupiedCells: 10, CrowdedCells: 6})
	if !hasBookmark(got, BookmarkSaturated) {
		t.Fatal("expected saturated bookmark")
	}
	got = bd.Check(WindowStats{WindowEndTick: 1200, OccupiedCells: 10, CrowdedCells: 7})
	if hasBookmark(got, BookmarkSaturated) {
		t.Error("saturated fired twice in a row")
	}
	bd.Check(WindowStats{WindowEndTick: 1800, OccupiedCells: 10, CrowdedCells: 1})
	got = bd.Check(WindowStats{WindowEndTick: 2400, OccupiedCells: 10, CrowdedCells: 8})
	if !hasBookmark(got, BookmarkSaturated) {
		t.Error("expected saturated bookmark after recovery")
	}
}

func TestBookmarkDetector_Stable(t *testing.T) {
	bd := NewBookmarkDetector(10)

	fired := 0
	for i := range 12 {
		got := bd.Check(WindowStats{
			WindowEndTick: int64(i * 600),
			OnTarget:      0.6,
			Coverage:      0.9,
		})
		if hasBookmark(got, BookmarkStable) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("stable fired %d times, want 1", fired)
	}
}

func TestBookmarkDetector_NotStableWhenSwinging(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := range 12 {
		on := 0.3
		if i%2 == 0 {
			on = 0.7
		}
		got := bd.Check(WindowStats{WindowEndTick: int64(i * 600), OnTarget: on, Coverage: 0.9})
		if hasBookmark(got, BookmarkStable) {
			t.Fatalf("stable fired at window %d", i)
		}
	}
}

func TestBookmarkDetector_Recent(t *testing.T) {
	bd := NewBookmarkDetector(5)
	for i := range 7 {
		bd.addToHistory(WindowStats{WindowEndTick: int64(i)})
	}

	got := bd.recent(3)
	want := []int64{4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].WindowEndTick != want[i] {
			t.Errorf("recent[%d] = %d, want %d", i, got[i].WindowEndTick, want[i])
		}
	}
}
