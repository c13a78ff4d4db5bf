// Package table parametrizes closed polygonal billiard tables by a boundary
// time in [0, 1), proportional to arclength, and answers the chord and tangent
// queries that billiard maps are built from.
package table

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/osuushi/billiards/geometry"
	"github.com/osuushi/billiards/internal/throw"
)

// ErrInvalidTable is returned for polygons that cannot serve as a table.
var ErrInvalidTable = errors.New("invalid table")

// Table is a simply connected region in or around which billiards may be
// played.
type Table[P geometry.Point[P]] interface {
	// The boundary point at a boundary time. Times are taken modulo 1.
	Point(t float64) P

	// The anticlockwise tangent heading of the boundary at a boundary time.
	TangentHeading(t float64) (float64, error)

	// Follow the chord leaving the boundary at startTime with an absolute
	// heading, and return the boundary time where it lands along with the
	// heading of the chord as it arrives there.
	ChordEnd(startTime, heading float64) (endTime, endHeading float64, err error)

	RightTangentPoint(q P) (P, error)
	LeftTangentPoint(q P) (P, error)

	RightTangentToCircle(c geometry.Circle[P]) (geometry.Line[P], error)
}

// Polygon is a Table bounded by geodesic segments. It is immutable: all
// derived lengths are computed by New.
type Polygon[P geometry.Point[P]] struct {
	vertices []P
	// Cumulative boundary length at each vertex. vertexTimes[0] is always 0.
	vertexTimes []float64
	perimeter   float64
}

var _ Table[geometry.AffinePoint] = (*Polygon[geometry.AffinePoint])(nil)
var _ Table[geometry.HyperPoint] = (*Polygon[geometry.HyperPoint])(nil)

// New builds a polygon from its vertices in order; the last connects back to
// the first. Tables are expected to wind anticlockwise. At least three vertices
// are required, consecutive vertices must differ, and every edge must have
// finite length.
func New[P geometry.Point[P]](vertices []P) (*Polygon[P], error) {
	n := len(vertices)
	if n < 3 {
		return nil, errors.Wrapf(ErrInvalidTable, "polygon requires at least 3 vertices, got %d", n)
	}

	poly := &Polygon[P]{
		vertices:    append([]P(nil), vertices...),
		vertexTimes: make([]float64, n),
	}
	for i, v := range poly.vertices {
		next := poly.vertices[geometry.CircularIndex(i+1, n)]
		if v == next {
			return nil, errors.Wrapf(geometry.ErrDegenerateGeometry, "vertices %d and %d coincide at %v", i, geometry.CircularIndex(i+1, n), v)
		}
		poly.vertexTimes[i] = poly.perimeter
		poly.perimeter += v.DistanceTo(next)
	}
	if math.IsInf(poly.perimeter, 0) || math.IsNaN(poly.perimeter) {
		return nil, errors.Wrap(ErrInvalidTable, "polygon has an edge of infinite length")
	}
	return poly, nil
}

// RegularPolygon places n vertices evenly around center, each at circumradius
// from it, starting on heading 0 and winding anticlockwise.
func RegularPolygon[P geometry.Point[P]](center P, n int, circumradius float64) (*Polygon[P], error) {
	if n < 3 {
		return nil, errors.Wrapf(ErrInvalidTable, "a polygon needs at least 3 vertices, got %d", n)
	}
	if circumradius <= 0 {
		return nil, errors.Wrapf(ErrInvalidTable, "circumradius %g must be positive", circumradius)
	}
	vertices := make([]P, 0, n)
	for i := 0; i < n; i++ {
		vertices = append(vertices, center.Travel(2*math.Pi*float64(i)/float64(n), circumradius))
	}
	return New(vertices)
}

func (poly *Polygon[P]) Len() int { return len(poly.vertices) }

func (poly *Polygon[P]) Vertices() []P {
	return append([]P(nil), poly.vertices...)
}

func (poly *Polygon[P]) Vertex(i int) P {
	return poly.vertices[geometry.CircularIndex(i, len(poly.vertices))]
}

func (poly *Polygon[P]) Perimeter() float64 { return poly.perimeter }

// VertexTime is the boundary time of vertex i.
func (poly *Polygon[P]) VertexTime(i int) float64 {
	return poly.vertexTimes[geometry.CircularIndex(i, len(poly.vertices))] / poly.perimeter
}

// Edge i runs from vertex i to vertex i+1.
func (poly *Polygon[P]) Edge(i int) geometry.Segment[P] {
	return geometry.Segment[P]{Start: poly.Vertex(i), End: poly.Vertex(i + 1)}
}

// locate finds the edge holding boundary time t, and the arclength along it.
// Positions within tolerance of a vertex snap to that vertex, which is then
// reported as the start of its outgoing edge with along == 0.
func (poly *Polygon[P]) locate(t float64) (edge int, along float64) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		throw.Wrapf(geometry.ErrDomain, "boundary time %v is not finite", t)
	}
	fixed := (t - math.Floor(t)) * poly.perimeter
	if geometry.Equal(fixed, poly.perimeter) {
		fixed = 0
	}
	n := len(poly.vertexTimes)
	// First vertex strictly past fixed, allowing for tolerance
	next := sort.Search(n, func(i int) bool {
		return poly.vertexTimes[i] > fixed+geometry.Tolerance
	})
	edge = next - 1
	if edge < 0 {
		throw.Fatalf("boundary time %v has no edge", t)
	}
	along = fixed - poly.vertexTimes[edge]
	if along < geometry.Tolerance {
		along = 0
	}
	return edge, along
}

func (poly *Polygon[P]) Point(t float64) P {
	edge, along := poly.locate(t)
	start := poly.Vertex(edge)
	if along == 0 {
		return start
	}
	ray, err := geometry.RayThrough(start, poly.Vertex(edge+1))
	if err != nil {
		throw.Fatalf("edge %d is degenerate: %v", edge, err)
	}
	return ray.PointAlong(along)
}

// TangentHeading is the direction of travel along the boundary at time t. At a
// vertex the tangent is undefined, and the bisector of the incoming and
// outgoing edge directions is used instead. For a right-angled corner this
// makes a reflection send a ball straight back.
func (poly *Polygon[P]) TangentHeading(t float64) (heading float64, err error) {
	defer func() {
		if recovered := throw.HandlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	edge, along := poly.locate(t)
	start := poly.Vertex(edge)
	end := poly.Vertex(edge + 1)
	if along != 0 {
		return poly.Point(t).HeadingTo(end)
	}

	outgoing, err := start.HeadingTo(end)
	if err != nil {
		return 0, err
	}
	back, err := start.HeadingTo(poly.Vertex(edge - 1))
	if err != nil {
		return 0, err
	}
	incoming := back + math.Pi
	x := math.Cos(incoming) + math.Cos(outgoing)
	y := math.Sin(incoming) + math.Sin(outgoing)
	if geometry.Equal(x, 0) && geometry.Equal(y, 0) {
		// The boundary doubles back on itself here; there is no bisector
		return 0, errors.Wrapf(geometry.ErrDegenerateGeometry, "vertex %d is a cusp", edge)
	}
	return geometry.NormalizeAngle(math.Atan2(y, x)), nil
}

// timeOn converts a point on edge i into a boundary time in [0, 1).
func (poly *Polygon[P]) timeOn(edge int, p P) float64 {
	fixed := poly.vertexTimes[edge] + poly.Vertex(edge).DistanceTo(p)
	t := fixed / poly.perimeter
	t -= math.Floor(t)
	if geometry.Equal(t*poly.perimeter, poly.perimeter) {
		t = 0
	}
	return t
}
