// Package dice wraps the random source shared by the generators.
//
// The source is math/rand/v2; nothing here is security sensitive.
package dice

import (
	"math/rand/v2"
	"time"
)

// Rand is the subset of *rand.Rand the generators draw from. Tests can
// substitute a scripted source.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// New returns a PCG-backed source. A zero seed picks one from the clock.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	// #nosec G404 -- visual effect only
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pick returns a uniformly chosen element of xs. xs must be non-empty.
func Pick[T any](r Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// Uniform returns a value in [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// IntRange returns a value in [lo, hi], both inclusive.
func IntRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// Duration returns a duration in [lo, hi).
func Duration(r Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(r.Float64()*float64(hi-lo))
}

// Shuffle permutes xs in place (Fisher-Yates).
func Shuffle[T any](r Rand, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Weighted holds choices with integer weights.
type Weighted[T any] struct {
	items []T
	cum   []int
}

// NewWeighted pairs items with weights; len(items) must equal len(weights)
// and at least one weight must be positive.
func NewWeighted[T any](items []T, weights []int) *Weighted[T] {
	w := &Weighted[T]{items: items, cum: make([]int, len(weights))}
	total := 0
	for i, wt := range weights {
		total += wt
		w.cum[i] = total
	}
	return w
}

// Draw returns one item with probability proportional to its weight.
func (w *Weighted[T]) Draw(r Rand) T {
	x := r.IntN(w.cum[len(w.cum)-1])
	for i, c := range w.cum {
		if x < c {
			return w.items[i]
		}
	}
	return w.items[len(w.items)-1]
}
