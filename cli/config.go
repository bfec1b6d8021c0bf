package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/amp-labs/amp-numeric/bgworker"
	"github.com/amp-labs/amp-numeric/bitops"
	"github.com/amp-labs/amp-numeric/envutil"
	amperrors "github.com/amp-labs/amp-numeric/errors"
	"github.com/amp-labs/amp-numeric/xform"
	"github.com/spf13/pflag"
)

const (
	EnvWorkers = "NUMTOOL_WORKERS"
	EnvBackend = "NUMTOOL_BACKEND"
	EnvOutput  = "NUMTOOL_OUTPUT"
)

// Config holds the settings shared by every command. Each one can come from
// the environment or from a flag; a flag that is set explicitly wins.
type Config struct {
	Workers int
	Backend string
	Output  string
}

var outputFormats = []string{OutputText, OutputYAML} //nolint:gochecknoglobals

func backendNames() []string {
	return slices.Sorted(maps.Keys(bitops.Backends()))
}

// DefaultConfig is the configuration used when neither the environment nor
// the flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Workers: bgworker.DefaultWorkerCount,
		Backend: bitops.Intrinsic().Name(),
		Output:  OutputText,
	}
}

// LoadConfig reads the configuration from the environment. Every malformed
// variable is reported, not just the first.
func LoadConfig() (Config, error) {
	dfl := DefaultConfig()

	var errs amperrors.Collection

	workers, err := envutil.Number(EnvWorkers,
		envutil.Default(dfl.Workers),
		envutil.Transform(xform.Positive[int])).Value()
	errs.Add(err)

	backend, err := envutil.OneOf(EnvBackend, backendNames(), envutil.Default(dfl.Backend)).Value()
	errs.Add(err)

	output, err := envutil.OneOf(EnvOutput, outputFormats, envutil.Default(dfl.Output)).Value()
	errs.Add(err)

	return Config{Workers: workers, Backend: backend, Output: output}, errs.GetError()
}

// resolve fills every field whose flag was not set explicitly from env and
// validates the result.
func (c *Config) resolve(flags *pflag.FlagSet, env Config) error {
	if !flags.Changed("workers") {
		c.Workers = env.Workers
	}

	if !flags.Changed("backend") {
		c.Backend = env.Backend
	}

	if !flags.Changed("output") {
		c.Output = env.Output
	}

	var errs amperrors.Collection

	if _, err := xform.Positive(c.Workers); err != nil {
		errs.Add(fmt.Errorf("--workers: %w", err))
	}

	if _, err := xform.OneOf(backendNames()...)(c.Backend); err != nil {
		errs.Add(fmt.Errorf("--backend: %w", err))
	}

	if _, err := xform.OneOf(outputFormats...)(c.Output); err != nil {
		errs.Add(fmt.Errorf("--output: %w", err))
	}

	return errs.GetError()
}

func (c *Config) backend() bitops.Backend {
	backend, ok := bitops.Backends()[c.Backend]
	if !ok {
		return bitops.Intrinsic()
	}

	return backend
}
