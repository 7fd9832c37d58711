// Package gen implements the random triangulation generator spec §1
// names as an external collaborator and SPEC_FULL.md's expansion
// supplements: a randomized incremental plane-triangulation builder, a
// small PCG32 RNG (grounded on
// deps/libaven/include/aven/rng/pcg.h), and a batch-generation helper
// bounded by an errgroup, exercising the golang.org/x/sync dependency
// wired in SPEC_FULL.md's domain stack.
package gen

// PCG32 is a minimal permuted-congruential generator, ported from
// aven/rng/pcg.h. It is not used by the coloring core itself (spec §1
// treats the RNG as an external collaborator of the core); it exists
// here only to drive this package's own triangulation construction.
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 seeds a generator the way aven_rng_pcg_seed does: one step
// of the LCG primes the state with the increment, then initState is
// added and a second step is taken before the first real draw.
func NewPCG32(initState, initSeq uint64) *PCG32 {
	p := &PCG32{state: 0, inc: (initSeq << 1) | 1}
	p.next()
	p.state += initState
	p.next()
	return p
}

func (p *PCG32) next() uint32 {
	old := p.state
	p.state = old*6364136223846793005 + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Uint32 returns the next 32-bit output.
func (p *PCG32) Uint32() uint32 {
	return p.next()
}

// Intn returns a uniform value in [0, n) for n > 0, using Lemire's
// rejection-free reduction (the same bias-avoidance the original's
// benchmark harness relies on via modulo on a wide-enough draw).
func (p *PCG32) Intn(n int) int {
	if n <= 0 {
		panic("gen: Intn called with n <= 0")
	}
	return int((uint64(p.Uint32()) * uint64(n)) >> 32)
}
