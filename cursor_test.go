package dcasim

import (
	"errors"
	"io"
	"testing"

	"github.com/etnz/dcasim/date"
)

func TestAdvanceTo(t *testing.T) {
	src := NewSliceSource(series("1988-10", 10, 11, 12, 13, 14, 15)...)

	got, err := AdvanceTo(src, month("1989-01"))
	if err != nil {
		t.Fatalf("AdvanceTo() unexpected error: %v", err)
	}
	if want := obs("1989-01", 13); got.Month != want.Month || !got.Price.Equal(want.Price) {
		t.Errorf("AdvanceTo() = %v, want %v", got, want)
	}
	// the match is consumed, next read is the following month.
	next, err := src.Next()
	if err != nil {
		t.Fatalf("Next() unexpected error: %v", err)
	}
	if next.Month != month("1989-02") {
		t.Errorf("Next() = %v, want 1989-02", next.Month)
	}
}

func TestAdvanceToNotFound(t *testing.T) {
	src := NewSliceSource(series("1990-01", 1, 2, 3)...)

	_, err := AdvanceTo(src, month("1989-01"))
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("AdvanceTo() error = %v, want a *NotFoundError", err)
	}
	if notFound.Target != month("1989-01") {
		t.Errorf("NotFoundError.Target = %v, want 1989-01", notFound.Target)
	}
	if src.Len() != 0 {
		t.Errorf("source has %d observations left, want it exhausted", src.Len())
	}
}

// A day-level date and a year-month value of the same month are the same key.
func TestAdvanceToNormalizedKeys(t *testing.T) {
	day, err := date.Normalize(date.New(1989, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	ym, err := date.Normalize("1989-01")
	if err != nil {
		t.Fatal(err)
	}
	src := NewSliceSource(Observation{Month: ym, Price: newDecimal(100)})
	if _, err := AdvanceTo(src, day); err != nil {
		t.Errorf("AdvanceTo(%v) on %v: unexpected error %v", day, ym, err)
	}
}

type failingSource struct{ err error }

func (f failingSource) Next() (Observation, error) { return Observation{}, f.err }

func TestAdvanceToReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := AdvanceTo(failingSource{boom}, month("1989-01"))
	if !errors.Is(err, boom) {
		t.Errorf("AdvanceTo() error = %v, want it to wrap %v", err, boom)
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		t.Errorf("AdvanceTo() error = %v, a read error is not a *NotFoundError", err)
	}
}

func TestCursorProtocol(t *testing.T) {
	c := NewCursor(NewSliceSource(series("1989-01", 1, 2)...))

	if _, err := c.Next(); !errors.Is(err, ErrNotPositioned) {
		t.Errorf("Next() before AdvanceTo error = %v, want %v", err, ErrNotPositioned)
	}
	if _, err := c.AdvanceTo(month("1989-01")); err != nil {
		t.Fatalf("AdvanceTo() unexpected error: %v", err)
	}
	if _, err := c.AdvanceTo(month("1989-02")); err == nil {
		t.Errorf("second AdvanceTo() succeeded, want an error")
	}
	o, err := c.Next()
	if err != nil || o.Month != month("1989-02") {
		t.Errorf("Next() = %v, %v; want 1989-02, nil", o.Month, err)
	}
	if _, err := c.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() on exhausted source error = %v, want io.EOF", err)
	}
}
