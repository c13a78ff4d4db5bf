// Package geometry provides the point, line and circle primitives that polygon
// tables and billiard maps are built from, for both the Euclidean plane and the
// hyperbolic plane.
//
// Everything is generic over the Point constraint, so the same construction
// code runs in either geometry. Points are immutable values, and every derived
// object holds its points by value.
package geometry

// Point is the capability set shared by AffinePoint and HyperPoint. The type
// parameter is the implementing type itself, so that methods can take and
// return concrete points.
type Point[P any] interface {
	comparable

	// Metric distance. Symmetric, and zero iff the points are equal.
	DistanceTo(other P) float64

	// The initial direction of the geodesic toward other, measured in the
	// geometry's canonical chart (the plane itself, or the Poincaré disk).
	// Fails with ErrDegenerateGeometry when the points are equal.
	HeadingTo(other P) (float64, error)

	// Point reflection of other through the receiver.
	Invert(other P) P

	// The point at signed distance along the geodesic leaving the receiver with
	// the given heading.
	Travel(heading, distance float64) P

	// Coordinate in a chart where geodesics are straight lines: the plane for
	// affine points, the Klein disk for hyperbolic ones. Orientation is the same
	// as the heading chart, so side-of-line tests may be done here.
	Projective() complex128

	// Inverse of Projective. The receiver is ignored; call it on a zero value.
	FromProjective(z complex128) (P, error)

	// Constant sectional curvature of the geometry: 0 or -1.
	Curvature() float64
}
