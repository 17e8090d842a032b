package date

import (
	"testing"
	"time"
)

// A year-month value and the first day of the same month must be the same key.
func TestNormalizeSameMonth(t *testing.T) {
	want := Month{1989, time.January}
	day := New(1989, time.January, 1)
	inputs := []any{
		want,
		&want,
		day,
		&day,
		time.Date(1989, time.January, 17, 12, 0, 0, 0, time.UTC),
		"1989-01",
		"1989-01-01",
		"1989-1-31",
	}
	for _, in := range inputs {
		got, err := Normalize(in)
		if err != nil {
			t.Errorf("Normalize(%#v) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Normalize(%#v) = %v, want %v", in, got, want)
		}
	}
}

func TestNormalizeRejects(t *testing.T) {
	var nilDate *Date
	inputs := []any{
		42,
		3.14,
		nil,
		nilDate,
		Date{},
		Month{1989, 0},
		"1989",
		"1989/01/01",
		"1989-01-01-01",
	}
	for _, in := range inputs {
		if got, err := Normalize(in); err == nil {
			t.Errorf("Normalize(%#v) = %v, want an error", in, got)
		}
	}
}
