// Package randutil derives reproducible math/rand/v2 generators from int64 seeds.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	return NewStream(seed, 0)
}

// NewStream returns a generator for one numbered stream of a seed. Streams of
// the same seed are independent of each other, which lets concurrent workers
// each own a source while a run as a whole stays reproducible.
func NewStream(seed int64, stream uint64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64*(stream+1))))
}

// Seed picks a seed from the clock. Callers log it so a session can be replayed.
func Seed(clock quartz.Clock) int64 {
	return clock.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
