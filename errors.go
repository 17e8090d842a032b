package dcasim

import (
	"errors"
	"fmt"

	"github.com/etnz/dcasim/date"
)

var (
	ErrInvalidAmount   = errors.New("investment per month must be positive")
	ErrInvalidHorizon  = errors.New("invalid simulation horizon")
	ErrZeroHorizon     = errors.New("cannot annualize zero-year horizon")
	ErrWrongKind       = errors.New("wrong dataset kind")
	ErrNotPositioned   = errors.New("cursor is not positioned, call AdvanceTo first")
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrUnknownCurrency = errors.New("unknown currency")
)

// ConfigurationError reports parameters or datasets that cannot be simulated.
// The source has not been consumed when it is returned from Simulate.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return "configuration error: " + e.Reason
	}
	if e.Reason == "" {
		return "configuration error: " + e.Err.Error()
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// AlignmentError reports an observation that is not dated with the month the
// simulation expects. A gap or a reordering in the data is fatal.
type AlignmentError struct {
	Expected date.Month
	Actual   date.Month
	// Exhausted is set when the source ended before Expected was reached.
	Exhausted bool
}

func (e *AlignmentError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("expected date %s, but the dataset ended", e.Expected.First())
	}
	return fmt.Sprintf("expected date %s, but %s found", e.Expected.First(), e.Actual.First())
}

// NotFoundError reports a target month absent from a source.
type NotFoundError struct {
	Target date.Month
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unable to find target date %s: target date unreachable in dataset", e.Target.First())
}
