package geometry

import "github.com/pkg/errors"

// Error kinds. Operations wrap these with context, so test for them with
// errors.Is or errors.Cause rather than comparing directly.
var (
	// A coordinate lies outside the model disk.
	ErrDomain = errors.New("coordinate outside the geometry's domain")
	// Coincident points were given where distinct points are required.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// A tangent was requested from a point that is not external.
	ErrNoTangent = errors.New("no tangent")
	// Two lines that were required to meet do not.
	ErrNoIntersection = errors.New("no intersection")
)
