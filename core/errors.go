package core

import (
	"errors"
	"fmt"
)

// ErrEmptyQueue reports a step invoked with nothing pending. It signals an
// orchestration bug in the caller, never a user error, and is always fatal
// to the run rather than silently ignored.
var ErrEmptyQueue = errors.New("pending queue is empty")

// UnknownAgentError reports an identifier with no registered capability.
// It aborts the in-progress run; the partially built log is discarded.
type UnknownAgentError struct {
	ID string
}

func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("unknown agent %q", e.ID)
}

// CapabilityError wraps a failure raised by an invoked capability. The
// orchestrator does not retry or substitute a default reply; retry and
// backoff are the capability's own responsibility.
type CapabilityError struct {
	ID  string
	Err error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("agent %q failed: %v", e.ID, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *CapabilityError) Unwrap() error { return e.Err }
