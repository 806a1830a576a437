package systems

// DefaultSeed is the LCG seed used when none is configured.
const DefaultSeed uint32 = 12345

// RNG is a 32-bit linear congruential generator.
// It is deliberately tiny so runs are reproducible across platforms.
type RNG struct {
	seed uint32
}

// NewRNG creates a generator with the given seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{seed: seed}
}

// Reseed resets the generator state.
func (r *RNG) Reseed(seed uint32) {
	r.seed = seed
}

// Float32 returns a value in [0, 1) with 15 bits of resolution.
func (r *RNG) Float32() float32 {
	r.seed = r.seed*1103515245 + 12345
	v := (r.seed / 65536) % 32768
	return float32(v) / 32768
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}

// State returns the current generator state. Reseed(State()) resumes the
// sequence from this point.
func (r *RNG) State() uint32 {
	return r.seed
}
