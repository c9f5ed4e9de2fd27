package cpu

import "math/rand/v2"

// RandomSource feeds the RND instruction. *rand.Rand satisfies it.
type RandomSource interface {
	Uint32() uint32
}

// NewRandomSource returns a randomly seeded source.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededSource returns a deterministic source.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
