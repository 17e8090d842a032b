package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type compareCmd struct {
	plan string
	json bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "simulate the same monthly investment in several assets" }
func (*compareCmd) Usage() string {
	return `dcasim compare [-plan <plan.toml>] [-json]

  Runs one independent simulation per asset of the plan and compares them.
  Without a plan, 100 per month are invested from 1989 for 10 years in the
  sp500 and gold data packages of the -data folder.

  A failed simulation is reported and does not prevent the others.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "plan", "", "Path to a TOML plan file")
	f.BoolVar(&c.json, "json", false, "Print the reports as JSON")
}

// loadPlan returns the plan file, or the default plan.
func loadPlan(path string) (*Plan, error) {
	if path == "" {
		return DefaultPlan(*dataDir), nil
	}
	return LoadPlan(path)
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := loadPlan(c.plan)
	if err == nil {
		err = plan.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	outcomes := runPlan(plan, trace())
	if err := printOutcomes(stdout, outcomes, c.json); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if failed(outcomes) {
		for _, o := range outcomes {
			if o.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", o.Label, o.Err)
			}
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
