package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the command line.
func Completion() *complete.Command {
	presetNames := predict.Set{"sp500", "gold"}
	planFile := predict.Files("*.toml")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":     predict.Dirs("*"),
			"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
			"v":        predict.Nothing,
			"style":    predict.Set{"auto", "dark", "light", "notty", "plain"},
		},
		Sub: map[string]*complete.Command{
			"simulate": {
				Args: presetNames,
				Flags: map[string]complete.Predictor{
					"start":       predict.Something,
					"years":       predict.Something,
					"amount":      predict.Something,
					"horizon":     predict.Set{"inclusive", "exact"},
					"label":       predict.Something,
					"package":     predict.Files("*.json"),
					"resource":    predict.Something,
					"kind":        predict.Something,
					"price-field": predict.Something,
					"json":        predict.Nothing,
				},
			},
			"compare": {
				Flags: map[string]complete.Predictor{
					"plan": planFile,
					"json": predict.Nothing,
				},
			},
			"plan": {
				Flags: map[string]complete.Predictor{
					"plan": planFile,
				},
			},
		},
	}
}
