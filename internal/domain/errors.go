package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three failure classes. Callers match with
// errors.Is or the helpers below; the structured types carry the detail.
var (
	ErrScheduleNotFound = errors.New("tax schedule not found")
	ErrInvalidInput     = errors.New("invalid calculation input")
	ErrInvalidSchedule  = errors.New("invalid tax schedule")
)

// ScheduleNotFoundError signals that a requested tax type has no loaded
// schedule. Distinct from a zero-tax result.
type ScheduleNotFoundError struct {
	TaxType TaxType
}

func (e *ScheduleNotFoundError) Error() string {
	return fmt.Sprintf("no rate schedule loaded for tax type %q", string(e.TaxType))
}

func (e *ScheduleNotFoundError) Unwrap() error { return ErrScheduleNotFound }

// ValidationError reports a rejected calculation input, naming the field.
// Inputs are never clamped or silently corrected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ScheduleValidationError reports a malformed schedule at load time, with
// every problem found. Construction fails fast; there is no fallback.
type ScheduleValidationError struct {
	TaxType  TaxType
	Problems []string
}

func (e *ScheduleValidationError) Error() string {
	return fmt.Sprintf("schedule %q failed validation: %s",
		string(e.TaxType), strings.Join(e.Problems, "; "))
}

func (e *ScheduleValidationError) Unwrap() error { return ErrInvalidSchedule }

// IsScheduleNotFound reports whether err is a schedule-not-found condition.
func IsScheduleNotFound(err error) bool { return errors.Is(err, ErrScheduleNotFound) }

// IsInvalidInput reports whether err is an input validation failure.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsInvalidSchedule reports whether err is a schedule validation failure.
func IsInvalidSchedule(err error) bool { return errors.Is(err, ErrInvalidSchedule) }
