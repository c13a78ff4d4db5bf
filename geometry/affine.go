package geometry

import (
	"fmt"
	"math/cmplx"

	"github.com/pkg/errors"
)

// AffinePoint is a point of the Euclidean plane, stored as a complex number.
type AffinePoint complex128

// Affine is a convenience constructor from Cartesian coordinates.
func Affine(x, y float64) AffinePoint {
	return AffinePoint(complex(x, y))
}

func (p AffinePoint) X() float64 { return real(p) }
func (p AffinePoint) Y() float64 { return imag(p) }

func (p AffinePoint) DistanceTo(other AffinePoint) float64 {
	return cmplx.Abs(complex128(other - p))
}

func (p AffinePoint) HeadingTo(other AffinePoint) (float64, error) {
	if p == other {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "heading from %v to itself", p)
	}
	return NormalizeAngle(cmplx.Phase(complex128(other - p))), nil
}

func (p AffinePoint) Invert(other AffinePoint) AffinePoint {
	return 2*p - other
}

func (p AffinePoint) Travel(heading, distance float64) AffinePoint {
	return p + AffinePoint(cmplx.Rect(distance, heading))
}

func (p AffinePoint) Projective() complex128 {
	return complex128(p)
}

func (AffinePoint) FromProjective(z complex128) (AffinePoint, error) {
	if cmplx.IsInf(z) || cmplx.IsNaN(z) {
		return 0, errors.Wrapf(ErrDomain, "affine point %v is not finite", z)
	}
	return AffinePoint(z), nil
}

func (AffinePoint) Curvature() float64 { return 0 }

func (p AffinePoint) String() string {
	return fmt.Sprintf("(%g, %g)", real(p), imag(p))
}
