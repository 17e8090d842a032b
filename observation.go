package dcasim

import (
	"io"

	"github.com/etnz/dcasim/date"
	"github.com/shopspring/decimal"
)

// Observation is one monthly sample of a price series.
type Observation struct {
	Month date.Month
	Price decimal.Decimal
}

// Source is a one-pass, forward only sequence of observations in ascending
// calendar order.
//
// Next returns io.EOF once the source is exhausted. Reading is destructive:
// an observation returned by Next is never returned again.
type Source interface {
	Next() (Observation, error)
}

// SliceSource is an in-memory Source.
type SliceSource struct {
	items []Observation
}

// NewSliceSource returns a Source that yields items in order.
//
// The slice is copied, so that two sources built from the same slice are
// independent.
func NewSliceSource(items ...Observation) *SliceSource {
	return &SliceSource{items: append([]Observation(nil), items...)}
}

// Next implements Source.
func (s *SliceSource) Next() (Observation, error) {
	if len(s.items) == 0 {
		return Observation{}, io.EOF
	}
	o := s.items[0]
	s.items = s.items[1:]
	return o, nil
}

// Len returns the number of observations not yet consumed.
func (s *SliceSource) Len() int { return len(s.items) }
