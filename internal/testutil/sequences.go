package testutil

import "math/rand"

// Sequence returns the ints 0..n-1.
func Sequence(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i
	}
	return out
}

// DeterministicNoise returns values in [-amplitude, amplitude) drawn from a
// fixed seed, so float kernels can be checked against a scalar reference.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, max(length, 0))
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse returns a unit impulse at pos; an out-of-range pos yields zeros.
func Impulse(length, pos int) []float64 {
	out := make([]float64, max(length, 0))
	if pos >= 0 && pos < len(out) {
		out[pos] = 1
	}
	return out
}
