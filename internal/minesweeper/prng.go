package minesweeper

import "math/rand/v2"

// PRNG is a seeded, reproducible source: the same seed yields the same
// sequence regardless of which goroutine or process draws from it.
// Each Process call owns its own instance — there is no shared mutable
// RNG state. The driver's workers draw their attempt seeds from their
// own math/rand/v2 source, not from this type.
type PRNG struct {
	r *rand.Rand
}

// NewPRNG seeds a PRNG from a 32-bit seed. Two PRNGs created from the
// same seed produce identical draw sequences.
func NewPRNG(seed uint32) *PRNG {
	return &PRNG{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

// IntN returns a pseudo-random number in [0, n).
func (p *PRNG) IntN(n int) int {
	return p.r.IntN(n)
}

// Uint32 draws a fresh 32-bit value.
func (p *PRNG) Uint32() uint32 {
	return p.r.Uint32()
}
