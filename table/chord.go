package table

import (
	"context"
	"log/slog"
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/billiards/geometry"
	"github.com/osuushi/billiards/internal/logger"
	"github.com/osuushi/billiards/internal/throw"
)

// ChordEnd casts a ray from Point(startTime) and returns the first boundary
// point it reaches. The edge holding the start is skipped, and so is any hit at
// the start itself, which is what a launch from a vertex produces on the
// neighboring edge. Fails with ErrNoIntersection when the ray leaves the table
// without crossing the boundary again.
func (poly *Polygon[P]) ChordEnd(startTime, heading float64) (endTime, endHeading float64, err error) {
	defer func() {
		if recovered := throw.HandlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	startEdge, _ := poly.locate(startTime)
	start := poly.Point(startTime)
	ray := geometry.NewRay(start, heading)

	bestEdge := -1
	bestDistance := math.Inf(1)
	var hit P
	for i := range poly.vertices {
		if i == startEdge {
			continue
		}
		p, ok := ray.Hit(poly.Edge(i))
		if !ok {
			continue
		}
		d := start.DistanceTo(p)
		if d <= geometry.Tolerance || d >= bestDistance {
			continue
		}
		bestEdge, bestDistance, hit = i, d, p
	}
	if bestEdge < 0 {
		return 0, 0, errors.Wrapf(geometry.ErrNoIntersection,
			"chord from time %g with heading %g does not meet the boundary", startTime, heading)
	}

	endTime = poly.timeOn(bestEdge, hit)
	back, err := hit.HeadingTo(start)
	if err != nil {
		return 0, 0, err
	}
	endHeading = geometry.NormalizeAngle(back + math.Pi)

	if log := logger.Get(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("chord",
			slog.Float64("start", startTime),
			slog.Float64("heading", heading),
			slog.Int("edge", bestEdge),
			slog.Float64("end", endTime),
			slog.Float64("length", bestDistance))
	}
	return endTime, endHeading, nil
}
