package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/dcasim"
	"github.com/etnz/dcasim/datapackage"
	toml "github.com/pelletier/go-toml/v2"
)

// Plan describes a set of independent simulations sharing their parameters.
type Plan struct {
	StartYear int     `toml:"start_year"`
	Years     int     `toml:"years"`
	Amount    float64 `toml:"amount"`             // invested every month
	Currency  string  `toml:"currency,omitempty"` // defaults to the -currency flag
	Horizon   string  `toml:"horizon,omitempty"`  // inclusive (default) or exact
	Assets    []Asset `toml:"asset"`
}

// Asset is a price series to simulate.
type Asset struct {
	Label      string `toml:"label"`
	Package    string `toml:"package"`
	Resource   int    `toml:"resource"`
	Kind       string `toml:"kind"`
	PriceField string `toml:"price_field,omitempty"`
}

// Ref returns the dataset reference of the asset.
func (a Asset) Ref() datapackage.Ref {
	return datapackage.Ref{Package: a.Package, Resource: a.Resource, Kind: a.Kind, PriceField: a.PriceField}
}

// presets are the historical series shipped with the simulator, relative to the data folder.
var presets = map[string]Asset{
	"sp500": {Label: "SP500", Package: filepath.Join("sp500", "datapackage.json"), Resource: 0, Kind: "original"},
	"gold":  {Label: "Gold(troy ounces, oz)", Package: filepath.Join("gold", "datapackage.json"), Resource: 1, Kind: "original"},
}

// preset returns a preset asset located in the data folder dir.
func preset(name, dir string) (Asset, error) {
	a, ok := presets[strings.ToLower(name)]
	if !ok {
		return Asset{}, fmt.Errorf("unknown asset %q, want sp500 or gold", name)
	}
	a.Package = filepath.Join(dir, a.Package)
	return a, nil
}

// DefaultPlan returns the historical plan: 100 per month from 1989, for 10 years, in SP500 and gold.
func DefaultPlan(dir string) *Plan {
	sp500, _ := preset("sp500", dir)
	gold, _ := preset("gold", dir)
	return &Plan{
		StartYear: 1989,
		Years:     10,
		Amount:    100,
		Currency:  dcasim.DefaultCurrency,
		Horizon:   dcasim.HorizonInclusive.String(),
		Assets:    []Asset{sp500, gold},
	}
}

// LoadPlan decodes a TOML plan file. Relative packages are resolved from the plan folder.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read plan: %w", err)
	}
	plan := new(Plan)
	if err := toml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("invalid plan %q: %w", path, err)
	}
	for i, a := range plan.Assets {
		if a.Package != "" && !filepath.IsAbs(a.Package) && !strings.Contains(a.Package, "://") {
			plan.Assets[i].Package = filepath.Join(filepath.Dir(path), a.Package)
		}
	}
	return plan, nil
}

// Validate checks the plan parameters that are not checked by a simulation.
func (p *Plan) Validate() error {
	var errs error
	if len(p.Assets) == 0 {
		errs = errors.Join(errs, errors.New("plan has no asset"))
	}
	if _, err := dcasim.ParseHorizon(p.Horizon); err != nil {
		errs = errors.Join(errs, err)
	}
	for i, a := range p.Assets {
		if a.Label == "" {
			errs = errors.Join(errs, fmt.Errorf("asset %d has no label", i))
		}
		if a.Package == "" {
			errs = errors.Join(errs, fmt.Errorf("asset %q has no package", a.Label))
		}
	}
	return errs
}

// Params returns the simulation parameters for asset a.
func (p *Plan) Params(a Asset) (dcasim.Params, error) {
	h, err := dcasim.ParseHorizon(p.Horizon)
	if err != nil {
		return dcasim.Params{}, &dcasim.ConfigurationError{Err: err}
	}
	cur := p.Currency
	if cur == "" {
		cur = *currency
	}
	if cur == "" {
		cur = dcasim.DefaultCurrency
	}
	return dcasim.Params{
		StartYear: p.StartYear,
		Years:     p.Years,
		Amount:    dcasim.M(p.Amount, cur),
		Label:     a.Label,
		Horizon:   h,
	}, nil
}

// Encode returns the TOML encoding of the plan.
func (p *Plan) Encode() ([]byte, error) { return toml.Marshal(p) }
