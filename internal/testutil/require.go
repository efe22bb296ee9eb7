package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Sized is the part of a container the invariant checks need.
type Sized interface {
	Len() int
	Cap() int
}

// RequireInvariants fails t unless 0 <= Len <= Cap.
func RequireInvariants(t testing.TB, s Sized) {
	t.Helper()
	require.GreaterOrEqual(t, s.Len(), 0, "negative length")
	require.LessOrEqual(t, s.Len(), s.Cap(), "length exceeds capacity")
}

// RequireShape fails t unless s has exactly the given length and capacity.
func RequireShape(t testing.TB, s Sized, length, capacity int) {
	t.Helper()
	RequireInvariants(t, s)
	require.Equal(t, length, s.Len(), "length")
	require.Equal(t, capacity, s.Cap(), "capacity")
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
	}
}
