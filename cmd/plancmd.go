package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type planCmd struct {
	plan string
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "print the effective simulation plan" }
func (*planCmd) Usage() string {
	return `dcasim plan [-plan <plan.toml>]

  Prints the plan used by compare as TOML. The output of this command is a
  good starting point for a custom plan file.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "plan", "", "Path to a TOML plan file")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := loadPlan(c.plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	data, err := plan.Encode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	stdout.Write(data)
	return subcommands.ExitSuccess
}
