// Package randutil derives reproducible random sources for board generation.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand seeded from seed. The same seed always
// yields the same sequence, so a board can be regenerated from its seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// ResolveSeed returns seed unchanged unless it is zero, in which case the
// clock's current time in nanoseconds is used.
func ResolveSeed(clock quartz.Clock, seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return clock.Now().UnixNano()
}

// splitmix is the splitmix64 finaliser; PCG needs two well-mixed words.
func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
