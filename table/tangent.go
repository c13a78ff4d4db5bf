package table

import (
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/billiards/geometry"
)

// Which side of a directed line the table must lie on
type side float64

const (
	leftSide  side = 1
	rightSide side = -1
)

// RightTangentPoint finds the vertex R where the geodesic from an external
// point q touches the table with the whole table on its left, as seen walking
// from q to R. When several vertices are collinear with q, the nearest one is
// the point of tangency. Fails with ErrNoTangent when q is inside the table,
// or on one of its vertices.
func (poly *Polygon[P]) RightTangentPoint(q P) (P, error) {
	return poly.tangentPoint(q, leftSide)
}

// LeftTangentPoint mirrors RightTangentPoint: the table lies on the right of
// the geodesic from q to the returned vertex.
func (poly *Polygon[P]) LeftTangentPoint(q P) (P, error) {
	return poly.tangentPoint(q, rightSide)
}

func (poly *Polygon[P]) tangentPoint(q P, tableSide side) (P, error) {
	var best P
	found := false
	bestDistance := math.Inf(1)
	for _, v := range poly.vertices {
		line, err := geometry.NewLine(q, v)
		if err != nil {
			return best, errors.Wrapf(geometry.ErrNoTangent, "%v is a vertex of the table", q)
		}
		if !poly.allOnSide(line, tableSide) {
			continue
		}
		if d := q.DistanceTo(v); d < bestDistance {
			best, bestDistance, found = v, d, true
		}
	}
	if !found {
		return best, errors.Wrapf(geometry.ErrNoTangent, "%v is not outside the table", q)
	}
	return best, nil
}

func (poly *Polygon[P]) allOnSide(line geometry.Line[P], s side) bool {
	for _, w := range poly.vertices {
		if float64(s)*line.Side(w) < -geometry.Tolerance {
			return false
		}
	}
	return true
}

// RightTangentToCircle finds a geodesic that supports both the table and the
// circle: it passes through a vertex, touches the circle, and has both bodies
// on the same side. Of the supporting lines that switch between the two
// bodies, this is the one that, directed with the bodies on its left, touches
// the circle first and the table second. Lines whose circle contact falls
// inside the table's own contact with the line are not switches and are
// skipped.
//
// For a circle touching the table from outside at a single vertex there are
// two outer common tangents besides the one through the contact, and the rule
// above keeps exactly one of them.
//
// Fails with ErrNoTangent if no such line exists, for instance when the circle
// contains the table.
func (poly *Polygon[P]) RightTangentToCircle(c geometry.Circle[P]) (geometry.Line[P], error) {
	for _, v := range poly.vertices {
		right, left, err := c.TangentsFrom(v)
		if err != nil {
			// v is on or inside the circle
			continue
		}
		for _, touch := range []P{right, left} {
			line, err := geometry.NewLine(v, touch)
			if err != nil {
				continue
			}
			if poly.switchesToTable(line, c) {
				return line, nil
			}
		}
	}
	return geometry.Line[P]{}, errors.Wrapf(geometry.ErrNoTangent, "no common tangent of the table and %v", c)
}

// switchesToTable reports whether line, drawn from a vertex v to its contact
// point x with circle c, supports both bodies and reaches x before every table
// contact when directed with the bodies on its left.
func (poly *Polygon[P]) switchesToTable(line geometry.Line[P], c geometry.Circle[P]) bool {
	var orientation side
	switch {
	case poly.allOnSide(line, leftSide) && !poly.allOnSide(line, rightSide):
		orientation = leftSide
	case poly.allOnSide(line, rightSide) && !poly.allOnSide(line, leftSide):
		orientation = rightSide
	default:
		return false
	}
	if float64(orientation)*line.Side(c.Center) <= geometry.Tolerance {
		return false
	}

	// Position along the line, directed with the bodies on the left. The vertex
	// is at 0 and the circle contact at ±distance.
	v, x := line.A(), line.B()
	contact := float64(orientation) * v.DistanceTo(x)
	for _, w := range poly.vertices {
		if !line.Contains(w) {
			continue
		}
		position := 0.0
		if w != v {
			position = v.DistanceTo(w)
			if heading, _ := v.HeadingTo(w); geometry.AngleBetween(heading, line.Heading()) > math.Pi/2 {
				position = -position
			}
			position *= float64(orientation)
		}
		if contact >= position-geometry.Tolerance {
			return false
		}
	}
	return true
}
