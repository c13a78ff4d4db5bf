package billiards

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/osuushi/billiards/dbg"
	"github.com/osuushi/billiards/geometry"
	"github.com/osuushi/billiards/internal/logger"
	"github.com/osuushi/billiards/internal/throw"
	"github.com/osuushi/billiards/table"
)

// fold drives an orbit: it records the point of each state and applies next
// until steps transitions have been made. Invariant violations thrown from the
// table are recovered into an *OrbitError like any other failure.
func fold[P geometry.Point[P], S fmt.Stringer](
	ctx context.Context,
	t table.Table[P],
	s S,
	steps int,
	point func(S) P,
	next func(S) (S, error),
) (points []P, err error) {
	if steps < 0 {
		return nil, errors.Wrapf(ErrInvalidSteps, "%d steps", steps)
	}

	log := logger.Get()
	debug := log.Enabled(ctx, slog.LevelDebug)
	var name string
	if debug {
		name = dbg.Name(t)
	}

	step := 0
	defer func() {
		if recovered := throw.HandlePanicRecover(recover()); recovered != nil {
			points = nil
			err = &OrbitError{Step: step, Err: recovered}
			log.Warn("orbit aborted", slog.Int("step", step), slog.Any("error", recovered))
		}
	}()

	points = make([]P, 0, steps+1)
	points = append(points, point(s))
	for step = 1; step <= steps; step++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &OrbitError{Step: step, Err: ctxErr}
		}
		s, err = next(s)
		if err != nil {
			log.Warn("orbit aborted", slog.Int("step", step), slog.Any("error", err))
			return nil, &OrbitError{Step: step, Err: err}
		}
		p := point(s)
		if debug {
			log.Debug("step",
				slog.String("table", name),
				slog.Int("step", step),
				slog.String("state", s.String()),
				slog.String("point", fmt.Sprint(p)))
		}
		points = append(points, p)
	}
	return points, nil
}
