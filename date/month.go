package date

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthFormat is the write format of a Month.
const MonthFormat = "2006-01"

// Month is the canonical (year, month) key of a monthly sample.
//
// Months are comparable with ==.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth returns a normalized Month, so that NewMonth(2000, 13) is January 2001.
func NewMonth(year int, month time.Month) Month {
	return New(year, month, 1).Key()
}

// AddMonths returns the month i months after m (or before if i is negative).
func (m Month) AddMonths(i int) Month { return NewMonth(m.Year, m.Month+time.Month(i)) }

// Next returns the following month.
func (m Month) Next() Month { return m.AddMonths(1) }

// Before reports whether m is before x.
func (m Month) Before(x Month) bool {
	return m.Year < x.Year || (m.Year == x.Year && m.Month < x.Month)
}

// After reports whether m is after x.
func (m Month) After(x Month) bool { return x.Before(m) }

// Since returns the number of months from x to m.
func (m Month) Since(x Month) int {
	return (m.Year-x.Year)*12 + int(m.Month) - int(x.Month)
}

// First returns the first day of the month.
func (m Month) First() Date { return New(m.Year, m.Month, 1) }

// IsValid reports whether the month number is within 1..12.
func (m Month) IsValid() bool { return m.Month >= time.January && m.Month <= time.December }

// String formats the month as "YYYY-MM".
func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)) }

// ParseMonth parses a year-month only value like "1989-01" or "1989-1".
func ParseMonth(str string) (Month, error) {
	y, mo, ok := strings.Cut(strings.TrimSpace(str), "-")
	if !ok {
		return Month{}, fmt.Errorf("invalid month %q want format %q", str, MonthFormat)
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return Month{}, fmt.Errorf("invalid year in month %q: %w", str, err)
	}
	month, err := strconv.Atoi(mo)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month in month %q: %w", str, err)
	}
	m := Month{Year: year, Month: time.Month(month)}
	if !m.IsValid() {
		return Month{}, fmt.Errorf("invalid month in month %q: %d is not in 1..12", str, month)
	}
	return m, nil
}

func (m *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Month) MarshalJSON() ([]byte, error) {
	str := m.String()
	return json.Marshal(&str)
}

// MarshalText lets a Month be used as a TOML or map key.
func (m Month) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
