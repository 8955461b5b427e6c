package sampler

import (
	"hash/fnv"
	"math/rand"
)

// DefaultSeed is used when a scene does not name one.
const DefaultSeed = "villa"

// Rand is the random source the sampler draws from. *rand.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// DeterministicSeedValue hashes a root seed and a subsystem label into a
// non-zero int64 seed.
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// NewDeterministicRNG returns a generator that replays the same sequence for
// the same (rootSeed, label) pair.
func NewDeterministicRNG(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeedValue(rootSeed, label)))
}
