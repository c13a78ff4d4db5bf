package geometry

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
)

// Line is the full geodesic through two distinct points. It is directed from
// A to B, which gives meaning to its sides and to headings along it.
type Line[P Point[P]] struct {
	a, b P
}

func NewLine[P Point[P]](a, b P) (Line[P], error) {
	if a == b {
		return Line[P]{}, errors.Wrapf(ErrDegenerateGeometry, "line through %v needs two distinct points", a)
	}
	return Line[P]{a: a, b: b}, nil
}

func (l Line[P]) A() P { return l.a }
func (l Line[P]) B() P { return l.b }

// Heading of the line at A, pointing toward B.
func (l Line[P]) Heading() float64 {
	h, _ := l.a.HeadingTo(l.b) // distinct by construction
	return h
}

// HeadingAt is the direction of travel from A toward B, measured at a point q
// on the line. In the plane this is constant; in the hyperbolic plane it turns.
func (l Line[P]) HeadingAt(q P) float64 {
	if q == l.a {
		return l.Heading()
	}
	back, _ := q.HeadingTo(l.a)
	if l.param(q) < 0 { // q lies behind A, so A is ahead of it
		return back
	}
	return NormalizeAngle(back + math.Pi)
}

// Position of q along the line in the projective chart, where A is 0 and B is 1.
func (l Line[P]) param(q P) float64 {
	a := l.a.Projective()
	d := l.b.Projective() - a
	return dot(q.Projective()-a, d) / dot(d, d)
}

// Side is the signed distance of q from the line in the projective chart:
// positive on the left of A→B, negative on the right. Only the sign and
// near-zero values are meaningful in the hyperbolic case.
func (l Line[P]) Side(q P) float64 {
	a := l.a.Projective()
	d := l.b.Projective() - a
	return cross(d, q.Projective()-a) / cmplx.Abs(d)
}

func (l Line[P]) Contains(q P) bool {
	return math.Abs(l.Side(q)) <= Tolerance
}

// Intersect returns the unique point where the two geodesics meet. Parallel or
// coincident lines, and hyperbolic geodesics that only meet at or beyond the
// boundary, have no intersection.
func (l Line[P]) Intersect(other Line[P]) (P, bool) {
	var zero P
	s, _, ok := crossing(l.a.Projective(), l.b.Projective(), other.a.Projective(), other.b.Projective())
	if !ok {
		return zero, false
	}
	a := l.a.Projective()
	z := a + complex(s, 0)*(l.b.Projective()-a)
	p, err := zero.FromProjective(z)
	if err != nil {
		return zero, false
	}
	// Geodesics meeting on the boundary are asymptotic, not intersecting
	if p.Curvature() < 0 && normSqr(z) >= 1 {
		return zero, false
	}
	return p, true
}

// Parameters s and u of the crossing point a1 + s(a2-a1) = b1 + u(b2-b1) of two
// straight chart lines.
func crossing(a1, a2, b1, b2 complex128) (s, u float64, ok bool) {
	d1 := a2 - a1
	d2 := b2 - b1
	denom := cross(d1, d2)
	if math.Abs(denom) <= Tolerance*cmplx.Abs(d1)*cmplx.Abs(d2) {
		return 0, 0, false
	}
	offset := b1 - a1
	return cross(offset, d2) / denom, cross(offset, d1) / denom, true
}

// Segment is the part of a geodesic between two endpoints.
type Segment[P Point[P]] struct {
	Start P
	End   P
}

func (s Segment[P]) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// Ray is a half geodesic leaving Start with a fixed heading.
type Ray[P Point[P]] struct {
	start   P
	heading float64
}

func NewRay[P Point[P]](start P, heading float64) Ray[P] {
	return Ray[P]{start: start, heading: NormalizeAngle(heading)}
}

// RayThrough starts at a and heads toward b.
func RayThrough[P Point[P]](a, b P) (Ray[P], error) {
	heading, err := a.HeadingTo(b)
	if err != nil {
		return Ray[P]{}, errors.Wrap(err, "ray needs two distinct points")
	}
	return Ray[P]{start: a, heading: heading}, nil
}

func (r Ray[P]) Start() P         { return r.start }
func (r Ray[P]) Heading() float64 { return r.heading }

// PointAlong is the point at signed arclength distance from the start.
func (r Ray[P]) PointAlong(distance float64) P {
	return r.start.Travel(r.heading, distance)
}

// Hit finds where the ray crosses a segment, endpoints included. Hits behind
// the start are ignored; a hit at the start itself is reported, so callers that
// launch from a boundary must filter it out by distance.
func (r Ray[P]) Hit(seg Segment[P]) (P, bool) {
	var zero P
	a1 := r.start.Projective()
	a2 := r.PointAlong(1).Projective()
	b1 := seg.Start.Projective()
	b2 := seg.End.Projective()
	s, u, ok := crossing(a1, a2, b1, b2)
	if !ok || s < 0 || u < -Tolerance || u > 1+Tolerance {
		return zero, false
	}
	// Snap to vertices so that corner hits come back exact
	switch {
	case Equal(u, 0):
		return seg.Start, true
	case Equal(u, 1):
		return seg.End, true
	}
	p, err := zero.FromProjective(b1 + complex(u, 0)*(b2-b1))
	if err != nil {
		return zero, false
	}
	return p, true
}
