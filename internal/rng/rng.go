// Package rng is the integer-range random number service shared by graph
// generation, deck shuffles and enemy decisions.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
)

// Source draws integers from closed ranges and shuffles sequences.
type Source interface {
	// Intn returns a value in [lo, hi], both ends inclusive.
	Intn(lo, hi int) int
	Shuffle(n int, swap func(i, j int))
}

// Rand is a Source backed by a PCG generator.
type Rand struct {
	r *mrand.Rand
}

// New returns a deterministic Source for the given seed.
func New(seed uint64) *Rand {
	return &Rand{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a Source seeded from crypto/rand.
func NewRandom() *Rand {
	return New(RandomSeed())
}

// RandomSeed reads a fresh seed from crypto/rand.
func RandomSeed() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (r *Rand) Intn(lo, hi int) int {
	checkRange(lo, hi)
	return lo + r.r.IntN(hi-lo+1)
}

func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

func checkRange(lo, hi int) {
	if hi < lo {
		panic(fmt.Sprintf("rng: empty range [%d, %d]", lo, hi))
	}
}
