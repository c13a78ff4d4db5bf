package geometry

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
)

// HyperPoint is a point of the hyperbolic plane. Both the Poincaré and Klein
// disk coordinates are computed once at construction, so the two charts can
// never drift apart. Points on the unit circle (ideal points) are accepted.
type HyperPoint struct {
	poincare complex128
	klein    complex128
}

func FromPoincare(poincare complex128) (HyperPoint, error) {
	normSqr := normSqr(poincare)
	if normSqr > 1 || math.IsNaN(normSqr) {
		return HyperPoint{}, errors.Wrapf(ErrDomain, "Poincaré coordinate %v is outside the disk", poincare)
	}
	klein := poincare * complex(2/(1+normSqr), 0)
	return HyperPoint{poincare: poincare, klein: klein}, nil
}

func FromKlein(klein complex128) (HyperPoint, error) {
	normSqr := normSqr(klein)
	if normSqr > 1 || math.IsNaN(normSqr) {
		return HyperPoint{}, errors.Wrapf(ErrDomain, "Klein coordinate %v is outside the disk", klein)
	}
	poincare := klein * complex(1/(1+math.Sqrt(1-normSqr)), 0)
	return HyperPoint{poincare: poincare, klein: klein}, nil
}

// Internal constructor for results of isometries, which can land a rounding
// error outside the disk. Those are pulled back onto the boundary.
func clampPoincare(z complex128) HyperPoint {
	n := normSqr(z)
	if n > 1 {
		z /= complex(math.Sqrt(n), 0)
		n = 1
	}
	return HyperPoint{poincare: z, klein: z * complex(2/(1+n), 0)}
}

func (p HyperPoint) Poincare() complex128 { return p.poincare }
func (p HyperPoint) Klein() complex128    { return p.klein }

// Ideal points sit on the boundary circle, infinitely far from everything.
func (p HyperPoint) IsIdeal() bool {
	return Equal(normSqr(p.poincare), 1)
}

// Möbius translation of the disk taking a to the origin. Its derivative at a is
// a positive real, so directions at a are preserved.
func translate(a, z complex128) complex128 {
	return (z - a) / (1 - cmplx.Conj(a)*z)
}

// Inverse of translate(a, ·).
func untranslate(a, w complex128) complex128 {
	return (w + a) / (1 + cmplx.Conj(a)*w)
}

func (p HyperPoint) DistanceTo(other HyperPoint) float64 {
	if p == other {
		return 0
	}
	r := cmplx.Abs(translate(p.poincare, other.poincare))
	if r >= 1 {
		return math.Inf(1)
	}
	return 2 * math.Atanh(r)
}

func (p HyperPoint) HeadingTo(other HyperPoint) (float64, error) {
	if p == other {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "heading from %v to itself", p)
	}
	return NormalizeAngle(cmplx.Phase(translate(p.poincare, other.poincare))), nil
}

// Invert applies the half-turn about p, which is the hyperbolic point
// reflection.
func (p HyperPoint) Invert(other HyperPoint) HyperPoint {
	return clampPoincare(untranslate(p.poincare, -translate(p.poincare, other.poincare)))
}

func (p HyperPoint) Travel(heading, distance float64) HyperPoint {
	atOrigin := cmplx.Rect(math.Tanh(distance/2), heading)
	return clampPoincare(untranslate(p.poincare, atOrigin))
}

func (p HyperPoint) Projective() complex128 {
	return p.klein
}

func (HyperPoint) FromProjective(z complex128) (HyperPoint, error) {
	return FromKlein(z)
}

func (HyperPoint) Curvature() float64 { return -1 }

func (p HyperPoint) String() string {
	return fmt.Sprintf("H(%g, %g)", real(p.poincare), imag(p.poincare))
}

func normSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
