package capture

import (
	"errors"
	"fmt"
)

// ErrCaptureTerminated matches any TerminationError via errors.Is.
var ErrCaptureTerminated = errors.New("key capture terminated")

// TerminationError wraps the failure that stopped the key source.
type TerminationError struct {
	Err error
}

func (e *TerminationError) Error() string {
	return fmt.Sprintf("Keypress listener error: %v", e.Err)
}

func (e *TerminationError) Unwrap() error { return e.Err }

func (e *TerminationError) Is(target error) bool {
	return target == ErrCaptureTerminated
}
