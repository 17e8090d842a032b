// Package cmd implements the CLI application to simulate dollar-cost averaging.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/dcasim"
	"github.com/etnz/dcasim/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&simulateCmd{}, "simulation")
	c.Register(&compareCmd{}, "simulation")
	c.Register(&planCmd{}, "simulation")
}

const (
	EnvData     = "DCASIM_DATA"
	EnvCurrency = "DCASIM_CURRENCY"
	EnvVerbose  = "DCASIM_VERBOSE"
	EnvStyle    = "DCASIM_STYLE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "data", "Path to the folder holding the sp500 and gold data packages")
var currency = flag.String("currency", dcasim.DefaultCurrency, "Currency of the invested amounts")
var Verbose = flag.Bool("v", false, "Print every monthly purchase")
var style = flag.String("style", renderer.StyleAuto, "Report style: auto, dark, light, notty or plain")

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// envFlags maps environment variables to the global flag they set.
var envFlags = map[string]string{
	EnvData:     "data",
	EnvCurrency: "currency",
	EnvVerbose:  "v",
	EnvStyle:    "style",
}

// LoadEnv loads the optional dotenv files (".env" by default) and uses the
// DCASIM_* variables as global flag values. It must be called before
// flag.Parse so that command line flags still win.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load environment: %w", err)
	}
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		if err := flag.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// trace returns the writer for per month traces, if verbose.
func trace() io.Writer {
	if *Verbose {
		return os.Stderr
	}
	return nil
}
