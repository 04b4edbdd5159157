package panther

import (
	"errors"
	"fmt"
)

// InfrastructureError is a failure of panther itself rather than of app
// logic: a render target that could not be created, a lost surface, a
// window that would not open. The loop cannot continue past one.
type InfrastructureError struct {
	Op  string // Operation that failed, e.g. "render", "pump", "open_window"
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("panther: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("panther: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError wraps err as an InfrastructureError for op.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError reports whether err is, or wraps, an InfrastructureError.
func IsInfrastructureError(err error) bool {
	var ie *InfrastructureError
	return errors.As(err, &ie)
}
