package dcasim

import (
	"github.com/etnz/dcasim/date"
	"github.com/google/go-cmp/cmp"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// month is a helper for test to parse a "YYYY-MM" month.
func month(s string) date.Month {
	m, err := date.ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return m
}

// obs is a helper for test to create an observation.
func obs(m string, price float64) Observation {
	return Observation{Month: month(m), Price: newDecimal(price)}
}

// series returns consecutive monthly observations starting at from.
func series(from string, prices ...float64) []Observation {
	start := month(from)
	items := make([]Observation, 0, len(prices))
	for i, p := range prices {
		items = append(items, Observation{Month: start.AddMonths(i), Price: newDecimal(p)})
	}
	return items
}

// repeat returns n times the price p.
func repeat(n int, p float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = p
	}
	return prices
}

// reportCmp compares money and quantities by value.
var reportCmp = []cmp.Option{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
}
