package dcasim

import (
	"math"

	"github.com/etnz/dcasim/date"
	"github.com/shopspring/decimal"
)

// Report is the outcome of a successful simulation run.
type Report struct {
	Label  string
	Start  date.Month // first purchase
	End    date.Month // last purchase
	Years  int        // requested number of years
	Months int        // number of monthly purchases

	Amount Money    // invested each month
	Spent  Money    // total invested
	Units  Quantity // units held at the end

	StartPrice  Money // unit price of the first purchase
	EndingPrice Money // unit price of the last purchase
	EndingValue Money // Units * EndingPrice rounded to the unit
	Profit      Percent
}

// AnnualizedProfit returns the total profit divided by the number of years.
//
// A zero-year simulation cannot be annualized and returns a *ConfigurationError.
func (r *Report) AnnualizedProfit() (Percent, error) {
	if r.Years == 0 {
		return 0, &ConfigurationError{Reason: r.Label, Err: ErrZeroHorizon}
	}
	return r.Profit / Percent(r.Years), nil
}

// AverageCost returns the average price paid per unit.
func (r *Report) AverageCost() Money {
	if !r.Units.IsPositive() {
		return M(0, r.Spent.Currency())
	}
	return r.Spent.Div(r.Units)
}

// PriceCAGR returns the compound annual growth rate of the unit price between
// the first and the last purchase.
func (r *Report) PriceCAGR() (Percent, error) {
	elapsed := r.End.Since(r.Start)
	if elapsed <= 0 || !r.StartPrice.IsPositive() {
		return 0, &ConfigurationError{Reason: r.Label, Err: ErrZeroHorizon}
	}
	ratio := r.EndingPrice.Decimal().Div(r.StartPrice.Decimal()).InexactFloat64()
	years := float64(elapsed) / 12
	return Percent((math.Pow(ratio, 1/years) - 1) * 100), nil
}

// Gain returns the ending value minus what was spent.
func (r *Report) Gain() Money { return r.EndingValue.Sub(r.Spent) }

func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("label", r.Label)
	w.Append("start", r.Start)
	w.Append("end", r.End)
	w.Append("years", r.Years)
	w.Append("months", r.Months)
	w.Append("amount", r.Amount)
	w.Append("spent", r.Spent)
	w.Append("units", r.Units.Decimal().Round(8))
	w.Append("startPrice", r.StartPrice)
	w.Append("endingPrice", r.EndingPrice)
	w.Append("endingValue", r.EndingValue)
	w.Append("profit", round2(float64(r.Profit)))
	if p, err := r.AnnualizedProfit(); err == nil {
		w.Append("annualizedProfit", round2(float64(p)))
	}
	w.Append("averageCost", r.AverageCost())
	if p, err := r.PriceCAGR(); err == nil {
		w.Append("priceCAGR", round2(float64(p)))
	}
	return w.MarshalJSON()
}

// round2 rounds a percentage for persistence.
func round2(f float64) decimal.Decimal { return decimal.NewFromFloat(f).Round(2) }
