package config

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is matched by every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownContext means a [contexts.<name>] table names no input
	// surface.
	ErrUnknownContext = errors.New("unknown context")

	// ErrDecode means the merged sources do not fit the settings types.
	ErrDecode = errors.New("config decode failed")
)

// Reason says which rule a setting broke.
type Reason uint8

const (
	ReasonRange Reason = iota
	ReasonLogLevel
	ReasonColour
	ReasonUnknownContext
)

var reasonNames = [...]string{
	ReasonRange:          "range",
	ReasonLogLevel:       "log_level",
	ReasonColour:         "colour",
	ReasonUnknownContext: "unknown_context",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// ValidationError reports one unusable setting. Validate joins all of
// them, so callers can errors.As each one out of the result.
type ValidationError struct {
	Path   string
	Value  any
	Reason Reason
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Path, e.Value, e.Detail)
}

// Is lets errors.Is match ErrValidationFailed for every failure and
// ErrUnknownContext for unknown context tables.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidationFailed:
		return true
	case ErrUnknownContext:
		return e.Reason == ReasonUnknownContext
	}
	return false
}
