package floatvec

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vector/container/vector"
)

// ErrLengthMismatch is returned when operands differ in length.
var ErrLengthMismatch = errors.New("floatvec: length mismatch")

func checkLen(op string, a, b *vector.Vector[float64]) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%s: %d vs %d: %w", op, a.Len(), b.Len(), ErrLengthMismatch)
	}
	return nil
}

// Mul stores the element-wise product of a and b in dst, resizing dst to
// their common length.
func Mul(dst, a, b *vector.Vector[float64]) error {
	if err := checkLen("mul", a, b); err != nil {
		return err
	}
	dst.Resize(a.Len())
	vecmath.MulBlock(dst.Data(), a.Data(), b.Data())
	return nil
}

// MulInPlace multiplies dst element-wise by src.
func MulInPlace(dst, src *vector.Vector[float64]) error {
	if err := checkLen("mul in place", dst, src); err != nil {
		return err
	}
	vecmath.MulBlockInPlace(dst.Data(), src.Data())
	return nil
}

// Magnitude returns sqrt(re[k]^2 + im[k]^2) for each k.
func Magnitude(re, im *vector.Vector[float64]) (*vector.Vector[float64], error) {
	if err := checkLen("magnitude", re, im); err != nil {
		return nil, err
	}
	out := vector.WithSize[float64](re.Len())
	vecmath.Magnitude(out.Data(), re.Data(), im.Data())
	return out, nil
}

// Power returns re[k]^2 + im[k]^2 for each k.
func Power(re, im *vector.Vector[float64]) (*vector.Vector[float64], error) {
	if err := checkLen("power", re, im); err != nil {
		return nil, err
	}
	out := vector.WithSize[float64](re.Len())
	vecmath.Power(out.Data(), re.Data(), im.Data())
	return out, nil
}
