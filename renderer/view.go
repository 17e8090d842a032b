package renderer

import (
	"github.com/etnz/dcasim"
)

// notAvailable is printed for values that cannot be computed.
const notAvailable = "n/a"

// reportView holds the formatted fields of a report.
type reportView struct {
	Label       string
	Start, End  string
	Years       int
	Months      int
	Amount      string
	Spent       string
	Units       string
	EndingPrice string
	EndingValue string
	Gain        string
	Profit      string
	Signed      string // profit with its sign, for comparisons
	Annualized  string
	AverageCost string
	PriceCAGR   string
}

func newReportView(r *dcasim.Report) reportView {
	v := reportView{
		Label:       r.Label,
		Start:       r.Start.First().String(),
		End:         r.End.First().String(),
		Years:       r.Years,
		Months:      r.Months,
		Amount:      r.Amount.String(),
		Spent:       r.Spent.Whole(),
		Units:       r.Units.Fixed(2),
		EndingPrice: r.EndingPrice.Whole(),
		EndingValue: r.EndingValue.Whole(),
		Gain:        r.Gain().String(),
		Profit:      r.Profit.String(),
		Signed:      r.Profit.SignedString(),
		Annualized:  notAvailable,
		AverageCost: r.AverageCost().String(),
		PriceCAGR:   notAvailable,
	}
	if p, err := r.AnnualizedProfit(); err == nil {
		v.Annualized = p.String()
	}
	if p, err := r.PriceCAGR(); err == nil {
		v.PriceCAGR = p.String()
	}
	return v
}
