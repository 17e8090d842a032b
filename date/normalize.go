package date

import (
	"fmt"
	"strings"
	"time"
)

// Normalize converts any supported date representation into its Month key.
//
// Supported values are Date, Month, time.Time (and pointers to them) and
// strings in either the day format "2006-01-02" or the month format "2006-01".
// Anything else is rejected: the caller must not guess.
func Normalize(v any) (Month, error) {
	switch x := v.(type) {
	case Month:
		if !x.IsValid() {
			return Month{}, fmt.Errorf("invalid month %d in %v", x.Month, x.Year)
		}
		return x, nil
	case *Month:
		if x == nil {
			return Month{}, fmt.Errorf("cannot normalize a nil month")
		}
		return Normalize(*x)
	case Date:
		if x.IsZero() {
			return Month{}, fmt.Errorf("cannot normalize a zero date")
		}
		return x.Key(), nil
	case *Date:
		if x == nil {
			return Month{}, fmt.Errorf("cannot normalize a nil date")
		}
		return Normalize(*x)
	case time.Time:
		return Month{Year: x.Year(), Month: x.Month()}, nil
	case string:
		return NormalizeString(x)
	default:
		return Month{}, fmt.Errorf("unsupported date representation %T", v)
	}
}

// NormalizeString normalizes a textual date. The shape decides the parser:
// two components are a year-month, three are a day.
func NormalizeString(str string) (Month, error) {
	str = strings.TrimSpace(str)
	switch strings.Count(str, "-") {
	case 1:
		return ParseMonth(str)
	case 2:
		d, err := Parse(str)
		if err != nil {
			return Month{}, err
		}
		return d.Key(), nil
	default:
		return Month{}, fmt.Errorf("unsupported date shape %q: want %q or %q", str, DateFormat, MonthFormat)
	}
}
