package tilegrid

import "math/rand"

// RNG is the deterministic random stream owned by a Grid.
//
// Goals:
//   - Determinism: same seed ⇒ identical generation on every platform.
//   - Ownership: one stream per grid, never a package global, so levels can be
//     generated in parallel without interfering.
//   - Resumability: Position counts source steps, RestoreRNG replays them.
//
// Concurrency: an RNG is NOT goroutine-safe.
type RNG struct {
	seed int64
	src  *countingSource
	r    *rand.Rand
}

// countingSource counts every step taken from the underlying source.
// Both Int63 and Uint64 advance math/rand's generator by exactly one step,
// so the count is an exact replay position.
type countingSource struct {
	src rand.Source64
	n   int64
}

func (s *countingSource) Int63() int64 {
	s.n++
	return s.src.Int63()
}

func (s *countingSource) Uint64() uint64 {
	s.n++
	return s.src.Uint64()
}

func (s *countingSource) Seed(seed int64) {
	s.src.Seed(seed)
	s.n = 0
}

// NewRNG creates a deterministic RNG from seed.
func NewRNG(seed int64) *RNG {
	src := &countingSource{src: rand.NewSource(seed).(rand.Source64)}
	return &RNG{seed: seed, src: src, r: rand.New(src)}
}

// RestoreRNG creates an RNG for seed and advances it to position.
// Complexity: O(position).
func RestoreRNG(seed, position int64) *RNG {
	g := NewRNG(seed)
	for g.src.n < position {
		g.src.Int63()
	}
	return g
}

// Seed returns the seed the stream was created from.
func (g *RNG) Seed() int64 { return g.seed }

// Position returns the number of source steps consumed since creation.
func (g *RNG) Position() int64 { return g.src.n }

// Intn returns a value in [0, n). It panics if n <= 0, like math/rand.
func (g *RNG) Intn(n int) int { return g.r.Intn(n) }

// IntRange returns a value in the inclusive range [lo, hi].
// If hi < lo, lo is returned without consuming the stream.
func (g *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Float64 returns a value in [0.0, 1.0).
func (g *RNG) Float64() float64 { return g.r.Float64() }

// Chance reports true with probability p.
func (g *RNG) Chance(p float64) bool { return g.r.Float64() < p }

// Bool returns a fair coin flip.
func (g *RNG) Bool() bool { return g.r.Intn(2) == 0 }
