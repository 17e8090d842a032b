package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dcasim"
	"github.com/google/subcommands"
)

type simulateCmd struct {
	start      int
	years      int
	amount     float64
	horizon    string
	label      string
	pkg        string
	resource   int
	kind       string
	priceField string
	json       bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "simulate monthly purchases of a single asset" }
func (*simulateCmd) Usage() string {
	return `dcasim simulate [-start <year>] [-years <n>] [-amount <amount>] [sp500|gold]
dcasim simulate -package <datapackage.json> [-resource <i>] [-kind <kind>] [-label <label>]

  Invests the same amount every month from January of the start year and
  reports the money spent, the units held and the profit at the end.

  The asset is either a preset found in the -data folder, or any resource
  of a data package.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.start, "start", 1989, "Year of the first purchase, in January")
	f.IntVar(&c.years, "years", 10, "Number of years to simulate")
	f.Float64Var(&c.amount, "amount", 100, "Amount invested every month")
	f.StringVar(&c.horizon, "horizon", dcasim.HorizonInclusive.String(), "inclusive: simulate years+1 calendar years, exact: simulate years calendar years")
	f.StringVar(&c.label, "label", "", "Asset label in the report")
	f.StringVar(&c.pkg, "package", "", "Path or URL of a datapackage.json, overrides the preset")
	f.IntVar(&c.resource, "resource", 0, "Index of the resource in the data package")
	f.StringVar(&c.kind, "kind", "original", "Expected kind of the resource")
	f.StringVar(&c.priceField, "price-field", "", "Name of the price column (defaults to the first number after the date)")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

// asset returns the asset selected by the arguments and flags.
func (c *simulateCmd) asset(args []string) (Asset, error) {
	if len(args) > 1 {
		return Asset{}, fmt.Errorf("too many assets %v", args)
	}
	var a Asset
	if c.pkg != "" {
		if len(args) > 0 {
			return Asset{}, fmt.Errorf("-package and preset %q are exclusive", args[0])
		}
		a = Asset{Label: "asset", Package: c.pkg, Resource: c.resource, Kind: c.kind}
	} else {
		name := "sp500"
		if len(args) > 0 {
			name = args[0]
		}
		var err error
		if a, err = preset(name, *dataDir); err != nil {
			return Asset{}, err
		}
	}
	if c.label != "" {
		a.Label = c.label
	}
	if c.priceField != "" {
		a.PriceField = c.priceField
	}
	return a, nil
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := c.asset(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	plan := &Plan{StartYear: c.start, Years: c.years, Amount: c.amount, Currency: *currency, Horizon: c.horizon, Assets: []Asset{a}}
	if err := plan.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	outcomes := runPlan(plan, trace())
	if err := outcomes[0].Err; err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", a.Label, err)
		return subcommands.ExitFailure
	}
	if err := printOutcomes(stdout, outcomes, c.json); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
