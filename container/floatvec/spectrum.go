package floatvec

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vector/container/vector"
)

// scratch holds the split real/imaginary parts between Spectrum calls.
var scratch = vector.NewPool[float64](vector.WithMaxRetainedCapacity(1 << 16))

// Spectrum returns the magnitude of the first n/2+1 FFT bins of v, where n
// is len(v) rounded up to a power of two (at least 2) and v is zero-padded
// to n. An empty v yields an empty vector.
func Spectrum(v *vector.Vector[float64]) (*vector.Vector[float64], error) {
	if v.IsEmpty() {
		return vector.New[float64](), nil
	}

	n := fftSize(v.Len())
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: plan %d: %w", n, err)
	}

	in := make([]complex128, n)
	for i, x := range v.Data() {
		in[i] = complex(x, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward: %w", err)
	}

	bins := n/2 + 1
	re, im := scratch.Get(), scratch.Get()
	defer scratch.Put(re)
	defer scratch.Put(im)
	re.Resize(bins)
	im.Resize(bins)
	for k := range bins {
		re.Set(k, real(out[k]))
		im.Set(k, imag(out[k]))
	}

	mag := vector.WithSize[float64](bins)
	vecmath.Magnitude(mag.Data(), re.Data(), im.Data())
	return mag, nil
}

func fftSize(n int) int {
	size := 2
	for size < n {
		size <<= 1
	}
	return size
}
