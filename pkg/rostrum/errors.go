package rostrum

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrUnknownPage indicates the route table names a page kind the
	// embedding application did not register a constructor for.
	ErrUnknownPage = errors.New("unknown page kind")
)

type unknownPageError struct {
	kind  string
	route string
}

func (e *unknownPageError) Error() string {
	return fmt.Sprintf("%v %q (route %q)", ErrUnknownPage, e.kind, e.route)
}

func (e *unknownPageError) Unwrap() error {
	return ErrUnknownPage
}

// InfrastructureError represents a framework-level error that indicates
// something is wrong with rostrum itself (configuration unloadable,
// message bundle broken, etc.). These errors are typically fatal or require
// framework-level recovery.
//
// Use this for errors that the consuming application cannot reasonably
// handle or recover from at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_config", "load_messages")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rostrum: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("rostrum: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
