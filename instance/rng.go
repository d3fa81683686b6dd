// Package instance - deterministic random streams for the generator.
//
// Every generated problem draws from its own stream derived from the base
// seed and the problem position, so problem k is the same whatever Count is.
//
// math/rand.Rand is not goroutine-safe; each stream is used by one call only.
package instance

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finaliser).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the stream for problem k under seed.
func streamRNG(seed int64, k int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(k))))
}
