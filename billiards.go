// Billiard dynamics on polygonal tables, in the Euclidean plane or the
// hyperbolic plane.
//
// An engine is built from a table, a duality (inner billiards, where a ball
// bounces around inside the table, or outer billiards, where a point hops
// around outside it) and a flavor (the regular map, or its symplectic
// variant). Orbits are computed by repeatedly stepping a state, and Iterate
// collects the points an orbit visits.
package billiards

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/osuushi/billiards/geometry"
	"github.com/osuushi/billiards/table"
)

type Flavor int

const (
	Regular Flavor = iota
	Symplectic
)

func (f Flavor) String() string {
	switch f {
	case Regular:
		return "regular"
	case Symplectic:
		return "symplectic"
	}
	return fmt.Sprintf("Flavor(%d)", int(f))
}

type Duality int

const (
	Inner Duality = iota
	Outer
)

func (d Duality) String() string {
	switch d {
	case Inner:
		return "inner"
	case Outer:
		return "outer"
	}
	return fmt.Sprintf("Duality(%d)", int(d))
}

// State is the position of an orbit between steps: an InnerState or an
// OuterState.
type State interface {
	isState()
}

// InnerState is a ball on the boundary of the table at boundary time Time,
// about to leave along Heading.
type InnerState struct {
	Time    float64
	Heading float64
}

func (InnerState) isState() {}

func (s InnerState) String() string {
	return fmt.Sprintf("t=%.6g heading=%.6g", s.Time, s.Heading)
}

// OuterState is a point outside the table.
type OuterState[P geometry.Point[P]] struct {
	Point P
}

func (OuterState[P]) isState() {}

func (s OuterState[P]) String() string {
	return fmt.Sprint(s.Point)
}

// Engine steps orbits of either duality behind one interface.
type Engine[P geometry.Point[P]] interface {
	Duality() Duality
	Flavor() Flavor
	Table() table.Table[P]

	// Step applies the billiard map once.
	Step(s State) (State, error)

	// Iterate returns the first steps+1 points of the orbit through s. See
	// InnerBilliards.Iterate.
	Iterate(s State, steps int) ([]P, error)
	IterateContext(ctx context.Context, s State, steps int) ([]P, error)
}

// New builds the engine for a duality and flavor. Engines are immutable and
// may be shared between goroutines.
func New[P geometry.Point[P]](t table.Table[P], duality Duality, flavor Flavor) (Engine[P], error) {
	if t == nil {
		return nil, errors.Wrap(table.ErrInvalidTable, "engine requires a table")
	}
	if flavor != Regular && flavor != Symplectic {
		return nil, errors.Wrapf(ErrUnsupported, "unknown flavor %v", flavor)
	}
	switch duality {
	case Inner:
		return innerEngine[P]{InnerBilliards[P]{Table: t, Flavor: flavor}}, nil
	case Outer:
		return outerEngine[P]{OuterBilliards[P]{Table: t, Flavor: flavor}}, nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "unknown duality %v", duality)
}

type innerEngine[P geometry.Point[P]] struct {
	billiards InnerBilliards[P]
}

func (e innerEngine[P]) Duality() Duality      { return Inner }
func (e innerEngine[P]) Flavor() Flavor        { return e.billiards.Flavor }
func (e innerEngine[P]) Table() table.Table[P] { return e.billiards.Table }

func (e innerEngine[P]) state(s State) (InnerState, error) {
	inner, ok := s.(InnerState)
	if !ok {
		return inner, errors.Wrapf(ErrStateMismatch, "inner billiards cannot step %T", s)
	}
	return inner, nil
}

func (e innerEngine[P]) Step(s State) (State, error) {
	inner, err := e.state(s)
	if err != nil {
		return nil, err
	}
	next, err := e.billiards.NextState(inner)
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (e innerEngine[P]) Iterate(s State, steps int) ([]P, error) {
	return e.IterateContext(context.Background(), s, steps)
}

func (e innerEngine[P]) IterateContext(ctx context.Context, s State, steps int) ([]P, error) {
	inner, err := e.state(s)
	if err != nil {
		return nil, err
	}
	return e.billiards.IterateContext(ctx, inner, steps)
}

type outerEngine[P geometry.Point[P]] struct {
	billiards OuterBilliards[P]
}

func (e outerEngine[P]) Duality() Duality      { return Outer }
func (e outerEngine[P]) Flavor() Flavor        { return e.billiards.Flavor }
func (e outerEngine[P]) Table() table.Table[P] { return e.billiards.Table }

func (e outerEngine[P]) state(s State) (OuterState[P], error) {
	outer, ok := s.(OuterState[P])
	if !ok {
		return outer, errors.Wrapf(ErrStateMismatch, "outer billiards cannot step %T", s)
	}
	return outer, nil
}

func (e outerEngine[P]) Step(s State) (State, error) {
	outer, err := e.state(s)
	if err != nil {
		return nil, err
	}
	next, err := e.billiards.NextState(outer)
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (e outerEngine[P]) Iterate(s State, steps int) ([]P, error) {
	return e.IterateContext(context.Background(), s, steps)
}

func (e outerEngine[P]) IterateContext(ctx context.Context, s State, steps int) ([]P, error) {
	outer, err := e.state(s)
	if err != nil {
		return nil, err
	}
	return e.billiards.IterateContext(ctx, outer, steps)
}
