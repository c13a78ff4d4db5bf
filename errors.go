package billiards

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupported is returned for maps this package does not provide, such
	// as running symplectic outer billiards backwards.
	ErrUnsupported = errors.New("unsupported")

	// ErrStateMismatch is returned when an engine is handed the state of the
	// other duality.
	ErrStateMismatch = errors.New("state does not match engine")

	ErrInvalidSteps = errors.New("step count must not be negative")
)

// OrbitError reports the first step of an orbit that failed. Step 0 is the
// starting state itself.
type OrbitError struct {
	Step int
	Err  error
}

func (e *OrbitError) Error() string {
	return fmt.Sprintf("orbit failed at step %d: %v", e.Step, e.Err)
}

func (e *OrbitError) Unwrap() error { return e.Err }
func (e *OrbitError) Cause() error  { return e.Err }
