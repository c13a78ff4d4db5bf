package geometry

import "math"

// Tolerance is used wherever floating point positions are matched against one
// another: boundary times against vertex times, side-of-line tests, and the
// forward check on chord hits. Point equality is exact and does not use it.
const Tolerance = 1e-9

// To compensate for imprecision in floats, equality of derived quantities is
// tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	// Mod can round a tiny negative angle up to exactly 2π
	if angle >= 2*math.Pi {
		angle = 0
	}
	return angle
}

// Reflect returns the outgoing heading of a direction that bounces off a wall
// whose tangent has the given heading. The angle to the tangent is preserved
// while the normal component is reversed.
func Reflect(incident, tangent float64) float64 {
	return NormalizeAngle(2*tangent - incident)
}

// AngleBetween returns the unsigned difference of two headings, in [0, π].
func AngleBetween(a, b float64) float64 {
	d := NormalizeAngle(a - b)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// cross is the z component of the cross product of two chart vectors. Positive
// when b is counterclockwise of a.
func cross(a, b complex128) float64 {
	return real(a)*imag(b) - imag(a)*real(b)
}

func dot(a, b complex128) float64 {
	return real(a)*real(b) + imag(a)*imag(b)
}
