package dcasim

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestPriceCAGR(t *testing.T) {
	// the price doubles in exactly two years.
	prices := repeat(25, 100)
	prices[24] = 200
	src := NewSliceSource(series("2000-01", append(prices, repeat(11, 200)...)...)...)

	r, err := Simulate(Params{StartYear: 2000, Years: 2, Amount: USD(100)}, src)
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.PriceCAGR()
	if err != nil {
		t.Fatalf("PriceCAGR() unexpected error: %v", err)
	}
	// 35 months from 100 to 200
	want := Percent((math.Pow(2, 12.0/35) - 1) * 100)
	if !got.Equal(want) {
		t.Errorf("PriceCAGR() = %v, want %v", got, want)
	}
}

func TestPriceCAGRSingleMonth(t *testing.T) {
	r := &Report{Start: month("2000-01"), End: month("2000-01"), StartPrice: USD(1), EndingPrice: USD(1)}
	if _, err := r.PriceCAGR(); !errors.Is(err, ErrZeroHorizon) {
		t.Errorf("PriceCAGR() error = %v, want %v", err, ErrZeroHorizon)
	}
}

func TestReportGain(t *testing.T) {
	testCases := []struct {
		name   string
		last   float64 // price of the last month
		want   Money
		profit string
	}{
		// 11 units at 100, then 0.5 unit at 200: 11.5 units worth 2300.
		{"up", 200, USD(1100), "+91.67%"},
		{"flat", 100, USD(0), "-"},
		// 11 units at 100, then 2 units at 50: 13 units worth 650.
		{"down", 50, USD(-550), "-45.83%"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prices := repeat(12, 100)
			prices[11] = tc.last
			r, err := Simulate(Params{StartYear: 1989, Amount: USD(100)}, NewSliceSource(series("1989-01", prices...)...))
			if err != nil {
				t.Fatal(err)
			}
			if got := r.Gain(); !got.Equal(tc.want) {
				t.Errorf("Gain() = %v, want %v", got, tc.want)
			}
			if got := r.Profit.SignedString(); got != tc.profit {
				t.Errorf("Profit.SignedString() = %q, want %q", got, tc.profit)
			}
		})
	}
}

func TestReportJSON(t *testing.T) {
	src := NewSliceSource(series("1989-01", repeat(24, 100)...)...)
	r, err := Simulate(Params{StartYear: 1989, Years: 1, Amount: USD(100), Label: "SP500"}, src)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	got := string(data)
	for _, want := range []string{
		`"label":"SP500"`,
		`"start":"1989-01"`,
		`"end":"1990-12"`,
		`"spent":{"currency":"USD","amount":"2400"}`,
		`"annualizedProfit":"0"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("json.Marshal() = %s, want it to contain %s", got, want)
		}
	}
	if !strings.HasPrefix(got, `{"label":`) {
		t.Errorf("json.Marshal() = %s, want label first", got)
	}
}

func TestReportJSONZeroYears(t *testing.T) {
	src := NewSliceSource(series("1989-01", repeat(12, 100)...)...)
	r, err := Simulate(Params{StartYear: 1989, Amount: USD(100)}, src)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "annualizedProfit") {
		t.Errorf("json.Marshal() = %s, a zero-year report has no annualized profit", data)
	}
}
