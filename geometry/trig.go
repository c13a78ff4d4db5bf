package geometry

import "math"

// Trigonometry shared by the constant-curvature geometries. With curvature 0
// these reduce to the Euclidean formulas, with -1 to the hyperbolic ones.

// sn is the "sine-like" length function: x in the plane, sinh(x) in the
// hyperbolic plane.
func sn(k, x float64) float64 {
	if k < 0 {
		return math.Sinh(x)
	}
	return x
}

func asn(k, y float64) float64 {
	if k < 0 {
		return math.Asinh(y)
	}
	return y
}

// Length of the remaining leg of a right triangle from its hypotenuse and one
// leg.
func otherLeg(k, hypotenuse, leg float64) float64 {
	if k < 0 {
		return math.Acosh(math.Cosh(hypotenuse) / math.Cosh(leg))
	}
	return math.Sqrt(hypotenuse*hypotenuse - leg*leg)
}

// Angle at the vertex opposite a leg of a right triangle, from that leg and the
// hypotenuse.
func oppositeAngle(k, leg, hypotenuse float64) float64 {
	ratio := sn(k, leg) / sn(k, hypotenuse)
	if ratio > 1 {
		ratio = 1
	}
	return math.Asin(ratio)
}

// DistanceToLine is the length of the perpendicular dropped from q onto the
// full geodesic through the line's defining points.
func DistanceToLine[P Point[P]](q P, line Line[P]) float64 {
	a := line.a
	if q == a {
		return 0
	}
	hypotenuse := a.DistanceTo(q)
	toQ, err := a.HeadingTo(q)
	if err != nil {
		return 0
	}
	along, err := a.HeadingTo(line.b)
	if err != nil {
		return 0
	}
	k := q.Curvature()
	return asn(k, sn(k, hypotenuse)*math.Abs(math.Sin(toQ-along)))
}
