package billiards

import (
	"context"

	"github.com/osuushi/billiards/geometry"
	"github.com/osuushi/billiards/internal/throw"
	"github.com/osuushi/billiards/table"
)

// InnerBilliards bounces a ball around the inside of a table.
type InnerBilliards[P geometry.Point[P]] struct {
	Table  table.Table[P]
	Flavor Flavor
}

// NextState follows the chord leaving s to the boundary.
//
// Regular: the ball reflects off the boundary tangent where it lands.
//
// Symplectic: the chord's arrival heading is launched again from the original
// start, and the new heading points from the original start to where that
// second chord lands. The new state still sits at the end of the first chord.
func (b InnerBilliards[P]) NextState(s InnerState) (next InnerState, err error) {
	defer func() {
		if recovered := throw.HandlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	end, incoming, err := b.Table.ChordEnd(s.Time, s.Heading)
	if err != nil {
		return InnerState{}, err
	}

	if b.Flavor == Symplectic {
		twisted, _, err := b.Table.ChordEnd(s.Time, incoming)
		if err != nil {
			return InnerState{}, err
		}
		heading, err := b.Table.Point(s.Time).HeadingTo(b.Table.Point(twisted))
		if err != nil {
			return InnerState{}, err
		}
		return InnerState{Time: end, Heading: heading}, nil
	}

	tangent, err := b.Table.TangentHeading(end)
	if err != nil {
		return InnerState{}, err
	}
	return InnerState{Time: end, Heading: geometry.Reflect(incoming, tangent)}, nil
}

// Iterate returns the boundary points of the first steps+1 states of the
// orbit through s, starting with s itself. The first failing step aborts the
// whole orbit with an *OrbitError, and no points are returned.
func (b InnerBilliards[P]) Iterate(s InnerState, steps int) ([]P, error) {
	return b.IterateContext(context.Background(), s, steps)
}

// IterateContext is Iterate, checking ctx between steps.
func (b InnerBilliards[P]) IterateContext(ctx context.Context, s InnerState, steps int) ([]P, error) {
	return fold(ctx, b.Table, s, steps, func(s InnerState) P {
		return b.Table.Point(s.Time)
	}, b.NextState)
}
