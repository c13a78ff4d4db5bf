// Package throw carries invariant violations out of deep geometric code.
//
// Threading an error through every boundary lookup would add noise to the
// code for conditions that only arise from bugs or non-finite input. Instead,
// such code panics with a Fault, and the public API recovers it into an error.
package throw

import "github.com/pkg/errors"

type Fault struct {
	err error
}

func (f Fault) Error() string { return f.err.Error() }
func (f Fault) Unwrap() error { return f.err }
func (f Fault) Cause() error  { return f.err }

// Fatalf panics with a Fault.
func Fatalf(format string, args ...interface{}) {
	panic(Fault{errors.Errorf(format, args...)})
}

// Wrapf panics with a Fault wrapping err, so callers can still match err once
// it has been recovered.
func Wrapf(err error, format string, args ...interface{}) {
	panic(Fault{errors.Wrapf(err, format, args...)})
}

// HandlePanicRecover converts a recovered Fault into an error. Any other panic
// is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if fault, ok := r.(Fault); ok {
			return fault
		}
		panic(r)
	}
	return nil
}
