// Package random provides the entropy sources used by the generators and the
// roughness-scaled noise term added at every displacement.
package random

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
)

// Source yields uniformly distributed values in [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSeeded returns a deterministic PCG source derived from seed.
func NewSeeded(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible terrain.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// New returns a source seeded from the runtime's entropy.
func New() *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// ForSeed returns NewSeeded(seed) for a non-zero seed and New() otherwise.
func ForSeed(seed int64) *rand.Rand {
	if seed == 0 {
		return New()
	}
	return NewSeeded(seed)
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Amplitude returns |roughness^iteration|, the half-width of the noise interval.
func Amplitude(roughness float64, iteration int) float64 {
	return math.Abs(math.Pow(roughness, float64(iteration)))
}

// Noise draws one value uniformly from [-a, a] where a = Amplitude(roughness, iteration).
// Exactly one value is consumed from src.
func Noise(src Source, roughness float64, iteration int) float64 {
	amp := Amplitude(roughness, iteration)
	return -amp + src.Float64()*(2*amp)
}
