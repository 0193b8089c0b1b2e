package spline

import (
	"errors"
	"fmt"

	"github.com/soypat/spline/involute"
	"github.com/soypat/spline/table"
)

var (
	// ErrInvalidConfiguration is matched by designations or generation
	// parameters which are not accepted, e.g. an unknown machining method.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrOutOfRange is matched by failed standard table lookups.
	ErrOutOfRange = table.ErrOutOfRange
	// ErrDomain is matched by geometrically inconsistent inputs, e.g. a
	// flank radius below the base circle or a fillet that does not fit.
	ErrDomain = involute.ErrDomain
)

// DesignationError describes a rejected designation field. It always
// matches ErrInvalidConfiguration and, when a standard table lookup
// failed, also ErrOutOfRange.
type DesignationError struct {
	Field string // designation field name
	Value string // offending value
	Valid string // valid values, may be empty
	Err   error  // ErrInvalidConfiguration or the failed table lookup
}

func (e *DesignationError) Error() string {
	var lerr *table.LookupError
	if errors.As(e.Err, &lerr) {
		return fmt.Sprintf("spline: %s: %v", e.Field, e.Err)
	}
	if e.Valid == "" {
		return fmt.Sprintf("spline: %s %s: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("spline: %s %s: %v, valid: %s", e.Field, e.Value, e.Err, e.Valid)
}

func (e *DesignationError) Unwrap() []error {
	if e.Err == nil || e.Err == ErrInvalidConfiguration {
		return []error{ErrInvalidConfiguration}
	}
	return []error{ErrInvalidConfiguration, e.Err}
}

func invalid(field, value, valid string) error {
	return &DesignationError{Field: field, Value: value, Valid: valid, Err: ErrInvalidConfiguration}
}

func lookupFailed(field string, err error) error {
	return &DesignationError{Field: field, Err: err}
}
