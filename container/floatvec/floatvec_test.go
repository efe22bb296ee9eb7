package floatvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vector/container/vector"
	"github.com/cwbudde/algo-vector/internal/testutil"
)

func TestMulMatchesScalar(t *testing.T) {
	a := vector.Of(testutil.DeterministicNoise(1, 1, 37)...)
	b := vector.Of(testutil.DeterministicNoise(2, 1, 37)...)
	dst := vector.New[float64]()

	require.NoError(t, Mul(dst, a, b))
	want := make([]float64, a.Len())
	for i := range want {
		want[i] = a.Get(i) * b.Get(i)
	}
	testutil.RequireSliceNearlyEqual(t, dst.Data(), want, 1e-12)
}

func TestMulLengthMismatch(t *testing.T) {
	err := Mul(vector.New[float64](), vector.Of(1.0), vector.Of(1.0, 2.0))
	require.ErrorIs(t, err, ErrLengthMismatch)
	require.ErrorIs(t, MulInPlace(vector.Of(1.0), vector.New[float64]()), ErrLengthMismatch)
}

func TestMulInPlace(t *testing.T) {
	dst := vector.Of(1.0, 2, 3, 4, 5)
	require.NoError(t, MulInPlace(dst, vector.Of(2.0, 2, 2, 2, 0.5)))
	testutil.RequireSliceNearlyEqual(t, dst.Data(), []float64{2, 4, 6, 8, 2.5}, 1e-12)
}

func TestMagnitudeAndPower(t *testing.T) {
	re := vector.Of(3.0, 0, -5)
	im := vector.Of(4.0, 2, 12)

	mag, err := Magnitude(re, im)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, mag.Data(), []float64{5, 2, 13}, 1e-12)

	pow, err := Power(re, im)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, pow.Data(), []float64{25, 4, 169}, 1e-9)

	_, err = Power(re, vector.Of(1.0))
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSpectrumImpulseIsFlat(t *testing.T) {
	v := vector.Of(testutil.Impulse(8, 0)...)
	mag, err := Spectrum(v)
	require.NoError(t, err)
	require.Equal(t, 5, mag.Len())

	ref := mag.Get(0)
	require.Greater(t, ref, 0.0)
	for i := range mag.Len() {
		require.InDelta(t, ref, mag.Get(i), 1e-9)
	}
}

func TestSpectrumPadsToPowerOfTwo(t *testing.T) {
	mag, err := Spectrum(vector.Filled(5, 1.0))
	require.NoError(t, err)
	require.Equal(t, 8/2+1, mag.Len())
	for _, x := range mag.Data() {
		require.False(t, math.IsNaN(x))
	}
}

func TestSpectrumEmpty(t *testing.T) {
	mag, err := Spectrum(vector.New[float64]())
	require.NoError(t, err)
	require.True(t, mag.IsEmpty())
}

func TestFFTSize(t *testing.T) {
	for n, want := range map[int]int{1: 2, 2: 2, 3: 4, 8: 8, 9: 16} {
		require.Equal(t, want, fftSize(n), "n=%d", n)
	}
}
