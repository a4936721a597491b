package validator

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrMissingValidator = errors.New("no validator")
)

// MissingValidatorError is returned when an event identifier has no entry in
// the validator table. VerbID is the statement's verb, kept for diagnostics.
type MissingValidatorError struct {
	EventID string
	VerbID  string
}

func (e *MissingValidatorError) Error() string {
	if e.VerbID == "" {
		return fmt.Sprintf("no validator for event %q", e.EventID)
	}
	return fmt.Sprintf("no validator for %s (event %q)", e.VerbID, e.EventID)
}

// Is matches ErrMissingValidator.
func (e *MissingValidatorError) Is(target error) bool {
	return target == ErrMissingValidator
}
