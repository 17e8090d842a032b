package dcasim

import (
	"errors"
	"fmt"
	"io"

	"github.com/etnz/dcasim/date"
)

// AdvanceTo consumes src until an observation dated target is found, and
// returns it. The match is consumed too: the next read from src yields the
// following observation.
//
// If src is exhausted first, AdvanceTo returns a *NotFoundError.
func AdvanceTo(src Source, target date.Month) (Observation, error) {
	for {
		o, err := src.Next()
		if errors.Is(err, io.EOF) {
			return Observation{}, &NotFoundError{Target: target}
		}
		if err != nil {
			return Observation{}, fmt.Errorf("cannot seek %s: %w", target, err)
		}
		if o.Month == target {
			return o, nil
		}
	}
}

// Cursor reads a Source with a fixed protocol: one AdvanceTo, then any
// number of Next.
type Cursor struct {
	src        Source
	positioned bool
}

// NewCursor returns a Cursor on src. src must not be read by anyone else.
func NewCursor(src Source) *Cursor { return &Cursor{src: src} }

// AdvanceTo positions the cursor on target, see AdvanceTo.
func (c *Cursor) AdvanceTo(target date.Month) (Observation, error) {
	if c.positioned {
		return Observation{}, errors.New("cursor is already positioned")
	}
	o, err := AdvanceTo(c.src, target)
	if err != nil {
		return Observation{}, err
	}
	c.positioned = true
	return o, nil
}

// Next returns the observation following the previous one. It returns io.EOF
// when the source is exhausted.
func (c *Cursor) Next() (Observation, error) {
	if !c.positioned {
		return Observation{}, ErrNotPositioned
	}
	return c.src.Next()
}
