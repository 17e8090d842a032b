package cmd

import (
	"io"

	"github.com/etnz/dcasim"
	"github.com/etnz/dcasim/datapackage"
	"github.com/etnz/dcasim/renderer"
	"golang.org/x/sync/errgroup"
)

// runAsset opens the asset dataset and simulates it.
//
// Parameters are checked before the dataset is opened.
func runAsset(p dcasim.Params, ref datapackage.Ref) (*dcasim.Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d, err := datapackage.Open(ref)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return dcasim.Simulate(p, d)
}

// runPlan simulates every asset of the plan. Simulations are independent: they
// run concurrently, and a failed one does not stop the others. Outcomes are
// in plan order.
func runPlan(plan *Plan, trace io.Writer) []renderer.Outcome {
	outcomes := make([]renderer.Outcome, len(plan.Assets))
	var g errgroup.Group
	if trace != nil {
		g.SetLimit(1) // keep traces readable
	}
	for i, a := range plan.Assets {
		i, a := i, a
		g.Go(func() error {
			o := renderer.Outcome{Label: a.Label}
			p, err := plan.Params(a)
			if err == nil {
				p.Trace = trace
				o.Report, err = runAsset(p, a.Ref())
			}
			o.Err = err
			outcomes[i] = o
			return nil
		})
	}
	g.Wait()
	return outcomes
}

// failed reports whether any outcome is an error.
func failed(outcomes []renderer.Outcome) bool {
	for _, o := range outcomes {
		if o.Err != nil {
			return true
		}
	}
	return false
}

// printOutcomes prints outcomes as markdown or JSON.
func printOutcomes(w io.Writer, outcomes []renderer.Outcome, asJSON bool) error {
	if asJSON {
		return renderer.JSON(w, outcomes)
	}
	return renderer.Print(w, renderer.Outcomes(outcomes), *style)
}
