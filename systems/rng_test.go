package systems

import "testing"

func TestRNGSequence(t *testing.T) {
	r := NewRNG(DefaultSeed)
	want := []float32{21468.0 / 32768, 9988.0 / 32768, 22117.0 / 32768}
	for i, w := range want {
		if got := r.Float32(); got != w {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 10000; i++ {
		v := r.Range(-10, 10)
		if v < -10 || v >= 10 {
			t.Fatalf("Range(-10, 10) = %v out of bounds", v)
		}
	}
}

func TestRNGReseed(t *testing.T) {
	a := NewRNG(99)
	first := []float32{a.Float32(), a.Float32(), a.Float32()}

	a.Reseed(99)
	for i, want := range first {
		if got := a.Float32(); got != want {
			t.Errorf("after reseed draw %d = %v, want %v", i, got, want)
		}
	}
}

func TestRNGState(t *testing.T) {
	r := NewRNG(99)
	r.Float32()
	r.Float32()
	resume := NewRNG(0)
	resume.Reseed(r.State())
	for i := range 10 {
		if got, want := resume.Float32(), r.Float32(); got != want {
			t.Fatalf("step %d: got %v, want %v", i, got, want)
		}
	}
}
