package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// ValidationError names the offending input. Nothing is computed when one is
// returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ParseAmount reads a money amount typed by a user. Blank and non-numeric
// text are validation errors so the caller can re-prompt.
func ParseAmount(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, invalid(field, "required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalid(field, fmt.Sprintf("%q is not a number", raw))
	}
	if err := checkAmount(field, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func checkAmount(field string, v *float64) error {
	switch {
	case v == nil:
		return invalid(field, "required")
	case math.IsNaN(*v) || math.IsInf(*v, 0):
		return invalid(field, "must be a finite number")
	case *v < 0:
		return invalid(field, "must not be negative")
	}
	return nil
}
