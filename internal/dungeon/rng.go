// Package dungeon builds dungeon floors: room-and-corridor layouts,
// cellular-automata caves, shrine and decoration placement, and the
// safety passes that keep every floor solvable.
package dungeon

// RNG is the caller-owned random source. *math/rand.Rand satisfies it.
// Nothing in this package seeds or keeps one between calls.
type RNG interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// chance returns true with probability p.
func chance(rng RNG, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// intRange returns a uniform integer in [lo, hi].
func intRange(rng RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
