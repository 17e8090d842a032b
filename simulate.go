package dcasim

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/etnz/dcasim/date"
)

// Horizon selects how many months a simulation of N years processes.
type Horizon int

const (
	// HorizonInclusive processes N+1 calendar years, from January of the
	// start year to December of start+N. It is the historical behavior of the
	// simulator and the default.
	HorizonInclusive Horizon = iota
	// HorizonExact processes exactly N calendar years.
	HorizonExact
)

func (h Horizon) String() string {
	switch h {
	case HorizonInclusive:
		return "inclusive"
	case HorizonExact:
		return "exact"
	default:
		panic(fmt.Sprintf("unknown horizon %d", h))
	}
}

// ParseHorizon parses a horizon name.
func ParseHorizon(h string) (Horizon, error) {
	switch strings.ToLower(h) {
	case "inclusive", "":
		return HorizonInclusive, nil
	case "exact":
		return HorizonExact, nil
	default:
		return HorizonInclusive, fmt.Errorf("unknown horizon %q", h)
	}
}

// months returns the number of monthly purchases for a number of years.
func (h Horizon) months(years int) int {
	if h == HorizonExact {
		return years * 12
	}
	return (years + 1) * 12
}

// Params are the parameters of a single simulation run.
type Params struct {
	StartYear int
	Years     int
	Amount    Money // invested every month
	Label     string
	Horizon   Horizon

	// Trace, when not nil, receives one line per purchase.
	Trace io.Writer
	// OnStep, when not nil, is called after each purchase.
	OnStep func(Step)
}

// Step is the state of a run right after a monthly purchase.
type Step struct {
	Month  date.Month
	Price  Money
	Bought Quantity
	Spent  Money    // total spent so far
	Units  Quantity // total units held so far
}

func (p Params) label() string {
	if p.Label == "" {
		return "asset"
	}
	return p.Label
}

// Validate checks the parameters before any data is read.
func (p Params) Validate() error {
	if p.Horizon != HorizonInclusive && p.Horizon != HorizonExact {
		return &ConfigurationError{Reason: fmt.Sprintf("horizon %d", int(p.Horizon)), Err: ErrInvalidHorizon}
	}
	if p.Years < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("%d years", p.Years), Err: ErrInvalidHorizon}
	}
	if p.Horizon == HorizonExact && p.Years == 0 {
		return &ConfigurationError{Reason: "an exact horizon needs at least one year", Err: ErrInvalidHorizon}
	}
	if !p.Amount.IsPositive() {
		return &ConfigurationError{Reason: fmt.Sprintf("%s per month", p.Amount.Decimal()), Err: ErrInvalidAmount}
	}
	if err := ValidateCurrency(p.Amount.Currency()); err != nil {
		return &ConfigurationError{Reason: "investment per month", Err: err}
	}
	return nil
}

// state accumulates the purchases of a single run.
type state struct {
	spent  Money
	units  Quantity
	first  Observation
	last   Observation // last matched observation
	months int
}

func (s *state) buy(o Observation, amount Money) Quantity {
	if s.months == 0 {
		s.first = o
	}
	bought := amount.DivPrice(M(o.Price, amount.Currency()))
	s.spent = s.spent.Add(amount)
	s.units = s.units.Add(bought)
	s.last = o
	s.months++
	return bought
}

// Simulate runs a dollar-cost averaging simulation: Amount is invested every
// month, starting in January of StartYear, at the price read from src.
//
// src is consumed: first up to the start month, then one observation per
// month. Every observation must be dated with the expected month, any gap is
// reported as an *AlignmentError. A missing start month is a *NotFoundError,
// and invalid parameters a *ConfigurationError returned before src is read.
func Simulate(p Params, src Source) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	label := p.label()
	cursor := NewCursor(src)

	start := date.NewMonth(p.StartYear, time.January)
	current, err := cursor.AdvanceTo(start)
	if err != nil {
		return nil, err
	}

	s := state{spent: M(0, p.Amount.Currency()), units: Q(0)}
	exhausted := false
	for i, n := 0, p.Horizon.months(p.Years); i < n; i++ {
		expected := start.AddMonths(i)
		if exhausted {
			return nil, &AlignmentError{Expected: expected, Exhausted: true}
		}
		if current.Month != expected {
			return nil, &AlignmentError{Expected: expected, Actual: current.Month}
		}
		if !current.Price.IsPositive() {
			return nil, fmt.Errorf("invalid price %s on %s: %w", current.Price, current.Month, ErrInvalidPrice)
		}

		bought := s.buy(current, p.Amount)
		if p.Trace != nil {
			fmt.Fprintf(p.Trace, "%s spent %s, bought %s %s\n", current.Month.First(), p.Amount, bought.Fixed(6), label)
		}
		if p.OnStep != nil {
			p.OnStep(Step{
				Month:  current.Month,
				Price:  M(current.Price, p.Amount.Currency()),
				Bought: bought,
				Spent:  s.spent,
				Units:  s.units,
			})
		}

		// the next observation is read even after the last month; running out
		// of data there is fine as the ending price is the last matched one.
		current, err = cursor.Next()
		if errors.Is(err, io.EOF) {
			exhausted = true
		} else if err != nil {
			return nil, fmt.Errorf("cannot read observation after %s: %w", expected, err)
		}
	}
	if exhausted {
		log.Printf("%s: dataset ends with the last simulated month %s", label, s.last.Month)
	}
	return s.report(p), nil
}

func (s *state) report(p Params) *Report {
	cur := p.Amount.Currency()
	r := &Report{
		Label:       p.label(),
		Start:       s.first.Month,
		End:         s.last.Month,
		Years:       p.Years,
		Months:      s.months,
		Amount:      p.Amount,
		Spent:       s.spent,
		Units:       s.units,
		StartPrice:  M(s.first.Price, cur),
		EndingPrice: M(s.last.Price, cur),
	}
	r.EndingValue = r.EndingPrice.Mul(r.Units).RoundBank()
	r.Profit = percent(r.EndingValue.Sub(r.Spent).Decimal().Shift(2).Div(r.Spent.Decimal()))
	return r
}
