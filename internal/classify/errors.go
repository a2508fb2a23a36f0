package classify

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrEmptyInput is returned by prediction when given zero rows.
	ErrEmptyInput = errors.New("empty input: no feature rows")
	// ErrNotFitted is returned when inference is attempted on a model
	// that has no trained parameters.
	ErrNotFitted = errors.New("model has not been fitted")
)

// ConfigError reports an invalid or unsupported configuration value.
// It is always detected before any numeric work begins and is fatal to
// the call that supplied the configuration.
type ConfigError struct {
	Field  string // configuration field at fault
	Reason string // why the value was rejected
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// DimensionError reports inference-time input whose feature count does
// not match the fitted model. It is fatal to that call only; the model
// remains usable for correctly shaped input.
type DimensionError struct {
	Want int // feature count the model was fitted with
	Got  int // feature count of the offending input
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: model was fitted with %d features, input has %d", e.Want, e.Got)
}
