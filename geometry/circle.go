package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Circle is the set of points at Radius from Center, in the geometry's own
// metric. A hyperbolic circle is also a Euclidean circle in the Poincaré disk,
// but its Euclidean center and radius differ from these.
type Circle[P Point[P]] struct {
	Center P
	Radius float64
}

func NewCircle[P Point[P]](center P, radius float64) (Circle[P], error) {
	if radius < 0 || math.IsNaN(radius) {
		return Circle[P]{}, errors.Wrapf(ErrDomain, "circle radius %g must be non-negative", radius)
	}
	return Circle[P]{Center: center, Radius: radius}, nil
}

func (c Circle[P]) Contains(q P) bool {
	return c.Center.DistanceTo(q) <= c.Radius+Tolerance
}

// TangentsFrom returns the two points where geodesics from v touch the circle.
// Facing the center from v, right is the clockwise one. Fails with
// ErrNoTangent if v is on or inside the circle.
func (c Circle[P]) TangentsFrom(v P) (right, left P, err error) {
	d := v.DistanceTo(c.Center)
	if d <= c.Radius+Tolerance || math.IsInf(d, 0) {
		return right, left, errors.Wrapf(ErrNoTangent, "%v is not outside circle %v", v, c)
	}
	toCenter, err := v.HeadingTo(c.Center)
	if err != nil {
		return right, left, err
	}
	k := v.Curvature()
	theta := oppositeAngle(k, c.Radius, d)
	length := otherLeg(k, d, c.Radius)
	right = v.Travel(toCenter-theta, length)
	left = v.Travel(toCenter+theta, length)
	return right, left, nil
}

// Bisection settings for FourthCircle
const (
	fourthCircleIterations = 200
	fourthCircleDoublings  = 64

	// Relative error allowed between a candidate radius and the distance from
	// the tangency to the center actually reached
	fourthCircleDrift = 1e-6
)

// FourthCircle builds the circle that touches line1 at tangency and is also
// tangent to line2, lying on the side of line1 that holds line2's defining
// points. With line1 and line2 meeting, this is the circle inscribed in their
// angle at that tangency. Parallel lines in the plane are fine too: the circle
// then spans the strip between them.
//
// Fails with ErrDegenerateGeometry when tangency is not on line1, when it is
// also on line2, when the lines coincide, or when no such circle exists. In
// the hyperbolic plane that happens whenever line2 diverges from line1 faster
// than circles grow; the circles then degenerate toward a horocycle whose
// center is an ideal point.
func FourthCircle[P Point[P]](tangency P, line1, line2 Line[P]) (Circle[P], error) {
	if !line1.Contains(tangency) {
		return Circle[P]{}, errors.Wrapf(ErrDegenerateGeometry, "tangency %v is not on the first line", tangency)
	}
	ref := line2.a
	if line1.Contains(ref) {
		ref = line2.b
	}
	if line1.Contains(ref) {
		return Circle[P]{}, errors.Wrap(ErrDegenerateGeometry, "lines coincide")
	}
	side := 1.0
	if line1.Side(ref) < 0 {
		side = -1
	}
	normal := line1.HeadingAt(tangency) + side*math.Pi/2

	center := func(r float64) P {
		return tangency.Travel(normal, r)
	}
	gap := func(r float64) float64 {
		return DistanceToLine(center(r), line2) - r
	}
	// Far enough out, a hyperbolic center rounds onto the boundary of the disk
	reachable := func(r float64) bool {
		d := tangency.DistanceTo(center(r))
		return !math.IsInf(d, 0) && !math.IsNaN(d) && math.Abs(d-r) <= fourthCircleDrift*math.Max(1, r)
	}

	lo := 0.0
	hi := gap(0)
	if hi <= Tolerance {
		return Circle[P]{}, errors.Wrapf(ErrDegenerateGeometry, "tangency %v lies on the second line", tangency)
	}
	for i := 0; gap(hi) > 0; i++ {
		if i == fourthCircleDoublings || !reachable(hi) {
			return Circle[P]{}, errors.Wrap(ErrDegenerateGeometry, "no circle is tangent to both lines")
		}
		hi *= 2
	}
	if math.IsNaN(gap(hi)) {
		return Circle[P]{}, errors.Wrap(ErrDegenerateGeometry, "no circle is tangent to both lines")
	}
	for i := 0; i < fourthCircleIterations && hi-lo > Tolerance*Tolerance; i++ {
		mid := (lo + hi) / 2
		if gap(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	r := (lo + hi) / 2
	if !reachable(r) {
		return Circle[P]{}, errors.Wrap(ErrDegenerateGeometry, "no circle is tangent to both lines")
	}
	return Circle[P]{Center: center(r), Radius: r}, nil
}
