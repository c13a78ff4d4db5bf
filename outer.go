package billiards

import (
	"context"

	"github.com/pkg/errors"

	"github.com/osuushi/billiards/geometry"
	"github.com/osuushi/billiards/internal/throw"
	"github.com/osuushi/billiards/table"
)

// OuterBilliards moves a point around the outside of a convex table.
type OuterBilliards[P geometry.Point[P]] struct {
	Table  table.Table[P]
	Flavor Flavor
}

// NextState moves the point past the table, keeping the table on its left.
//
// Regular: the point is reflected through the right tangent vertex.
//
// Symplectic: take the circle tangent to the right tangent geodesic at the
// right tangent vertex R and also tangent to the left tangent geodesic, taken
// in the angle beyond the point, opposite the table. It touches the table only
// at R. The table and the circle have one more common supporting geodesic
// besides the right tangent one, and the new point is where the two meet,
// always past R. In the hyperbolic plane that circle may not exist, and the
// step fails with geometry.ErrDegenerateGeometry.
func (b OuterBilliards[P]) NextState(s OuterState[P]) (_ OuterState[P], err error) {
	defer func() {
		if recovered := throw.HandlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	right, err := b.Table.RightTangentPoint(s.Point)
	if err != nil {
		return OuterState[P]{}, err
	}
	if b.Flavor != Symplectic {
		return OuterState[P]{Point: right.Invert(s.Point)}, nil
	}

	left, err := b.Table.LeftTangentPoint(s.Point)
	if err != nil {
		return OuterState[P]{}, err
	}
	rightLine, err := geometry.NewLine(right, s.Point)
	if err != nil {
		return OuterState[P]{}, err
	}
	// Same geodesic as left to the point, defined from its far side so the
	// circle lands in the angle opposite the table
	mirrored, err := geometry.NewLine(s.Point.Invert(left), s.Point)
	if err != nil {
		return OuterState[P]{}, err
	}
	circle, err := geometry.FourthCircle(right, rightLine, mirrored)
	if err != nil {
		return OuterState[P]{}, err
	}
	tangent, err := b.Table.RightTangentToCircle(circle)
	if err != nil {
		return OuterState[P]{}, err
	}
	next, ok := rightLine.Intersect(tangent)
	if !ok {
		return OuterState[P]{}, errors.Wrapf(geometry.ErrNoIntersection,
			"tangent of %v through %v misses %v", circle, tangent.A(), rightLine)
	}
	return OuterState[P]{Point: next}, nil
}

// PreviousState inverts the regular map by reflecting through the left
// tangent vertex. The symplectic map has no inverse here.
func (b OuterBilliards[P]) PreviousState(s OuterState[P]) (OuterState[P], error) {
	if b.Flavor == Symplectic {
		return OuterState[P]{}, errors.Wrap(ErrUnsupported, "symplectic outer billiards cannot be run backwards")
	}
	left, err := b.Table.LeftTangentPoint(s.Point)
	if err != nil {
		return OuterState[P]{}, err
	}
	return OuterState[P]{Point: left.Invert(s.Point)}, nil
}

// Iterate returns the first steps+1 points of the orbit through s, starting
// with s itself. The first failing step aborts the whole orbit with an
// *OrbitError, and no points are returned.
func (b OuterBilliards[P]) Iterate(s OuterState[P], steps int) ([]P, error) {
	return b.IterateContext(context.Background(), s, steps)
}

func (b OuterBilliards[P]) IterateContext(ctx context.Context, s OuterState[P], steps int) ([]P, error) {
	return fold(ctx, b.Table, s, steps, func(s OuterState[P]) P {
		return s.Point
	}, b.NextState)
}
