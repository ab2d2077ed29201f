package app

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrNoModal indicates Commit or Cancel was called while the editor
	// itself was active.
	ErrNoModal = errors.New("no modal context active")

	// ErrClipboardEmpty indicates a paste found nothing to insert.
	ErrClipboardEmpty = errors.New("clipboard empty")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "copy", "paste")
	Target string // Target of the operation (e.g., "clipboard")
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
