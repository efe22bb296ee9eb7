package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type shape struct{ n, c int }

func (s shape) Len() int { return s.n }
func (s shape) Cap() int { return s.c }

func TestSequence(t *testing.T) {
	require.Equal(t, []int{0, 1, 2, 3}, Sequence(4))
	require.Empty(t, Sequence(-1))
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	require.Equal(t, a, b)
	for i, v := range a {
		require.Truef(t, v >= -1 && v < 1, "a[%d] = %v out of range", i, v)
	}
	require.NotEqual(t, a, DeterministicNoise(7, 1.0, 64))
}

func TestImpulse(t *testing.T) {
	require.Equal(t, []float64{0, 0, 1, 0}, Impulse(4, 2))
	require.Equal(t, []float64{0, 0}, Impulse(2, 5))
}

func TestRequireHelpersPass(t *testing.T) {
	RequireInvariants(t, shape{2, 4})
	RequireShape(t, shape{3, 3}, 3, 3)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-12, 2}, 1e-9)
}
