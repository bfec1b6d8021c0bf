// Package cli implements numtool, a command line front end for the numeric
// packages: it reports type limits, swaps byte order, rotates bits,
// classifies values and hashes them, for any supported primitive by name.
package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/amp-labs/amp-numeric/bgworker"
	"github.com/amp-labs/amp-numeric/build"
	amperrors "github.com/amp-labs/amp-numeric/errors"
	"github.com/amp-labs/amp-numeric/hashing"
	"github.com/amp-labs/amp-numeric/logger"
	"github.com/amp-labs/amp-numeric/xform"
	"github.com/spf13/cobra"
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

var hashAlgorithms = map[string]hashing.HashFunc{ //nolint:gochecknoglobals
	"xxh3":     hashing.XXH3,
	"xxhash64": hashing.XXHash64,
	"sha256":   hashing.Sha256,
	"sha512":   hashing.Sha512,
	"sha1":     hashing.Sha1,
	"md5":      hashing.Md5,
}

func lookupAlgorithm(name string) (hashing.HashFunc, error) {
	fn, ok := hashAlgorithms[strings.ToLower(name)]
	if !ok {
		known := slices.Sorted(maps.Keys(hashAlgorithms))

		return nil, fmt.Errorf("%w: %q (known algorithms: %s)", ErrUnknownAlgorithm, name, strings.Join(known, ", "))
	}

	return fn, nil
}

// NewRootCommand builds the numtool command tree. Every call returns an
// independent tree with its own configuration.
func NewRootCommand() *cobra.Command {
	cfg := DefaultConfig()

	root := &cobra.Command{
		Use:           "numtool",
		Short:         "Inspect, convert and hash numeric primitives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			env, err := LoadConfig()
			if err != nil {
				return err
			}

			return cfg.resolve(cmd.Flags(), env)
		},
	}

	flags := root.PersistentFlags()
	flags.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers,
		"number of values evaluated concurrently (env "+EnvWorkers+")")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output,
		"output format: text or yaml (env "+EnvOutput+")")
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend,
		"bit operation backend: intrinsic or portable (env "+EnvBackend+")")

	root.AddCommand(
		newTypesCommand(),
		newVersionCommand(&cfg),
		newLimitsCommand(&cfg),
		newSwapCommand(&cfg),
		newRotateCommand(&cfg, "rotl", rotateLeft),
		newRotateCommand(&cfg, "rotr", rotateRight),
		newClassifyCommand(&cfg),
		newHashCommand(&cfg),
	)

	return root
}

// valueCommand returns a command whose positional arguments are a type name
// followed by values. Flag parsing stops at the first positional argument,
// so negative values are never mistaken for flags.
func valueCommand(use, short string, minArgs int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(minArgs),
	}

	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the accepted type names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(TypeNames(), "\n"))

			return err
		},
	}
}

func newVersionCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := build.Current()
			if cfg.Output == OutputYAML {
				return writeYAML(cmd.OutOrStdout(), info)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", info.Module, info.Version, info.GoVersion)

			return err
		},
	}
}

func newLimitsCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "limits <type>",
		Short: "Show the range and special values of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := lookupType(args[0])
			if err != nil {
				return err
			}

			return writeLimits(cmd.OutOrStdout(), cfg.Output, typ.Limits())
		},
	}
}

func newSwapCommand(cfg *Config) *cobra.Command {
	cmd := valueCommand("swap <type> <value>...", "Reverse the byte order of integer values", 2) //nolint:mnd

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		typ, err := lookupType(args[0])
		if err != nil {
			return err
		}

		backend := cfg.backend()

		return runBatch(cmd, cfg, typ, args[1:], func(raw string) (Result, error) {
			return typ.Swap(backend, raw)
		})
	}

	return cmd
}

func newRotateCommand(cfg *Config, name string, dir direction) *cobra.Command {
	short := "Rotate integer values left by a number of bits"
	if dir == rotateRight {
		short = "Rotate integer values right by a number of bits"
	}

	cmd := valueCommand(name+" <type> <bits> <value>...", short, 3) //nolint:mnd

	strict := cmd.Flags().Bool("strict", false,
		"reject bit counts outside (0, width) instead of reducing them modulo the width")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		typ, err := lookupType(args[0])
		if err != nil {
			return err
		}

		count, err := xform.Number[int](args[1])
		if err != nil {
			return fmt.Errorf("%w: bit count: %w", ErrParse, err)
		}

		backend := cfg.backend()

		return runBatch(cmd, cfg, typ, args[2:], func(raw string) (Result, error) {
			return typ.Rotate(backend, raw, count, dir, *strict)
		})
	}

	return cmd
}

func newClassifyCommand(cfg *Config) *cobra.Command {
	cmd := valueCommand("classify <type> <value>...", "Report whether values are finite, infinite or NaN", 2) //nolint:mnd

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		typ, err := lookupType(args[0])
		if err != nil {
			return err
		}

		return runBatch(cmd, cfg, typ, args[1:], typ.Classify)
	}

	return cmd
}

func newHashCommand(cfg *Config) *cobra.Command {
	cmd := valueCommand("hash <type> <value>...", "Hash values the way a wrapped numeric value hashes", 2) //nolint:mnd

	algo := cmd.Flags().String("algo", "xxh3", "hash algorithm: xxh3, xxhash64, sha256, sha512, sha1 or md5")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		typ, err := lookupType(args[0])
		if err != nil {
			return err
		}

		fn, err := lookupAlgorithm(*algo)
		if err != nil {
			return err
		}

		return runBatch(cmd, cfg, typ, args[1:], func(raw string) (Result, error) {
			return typ.Hash(fn, raw)
		})
	}

	return cmd
}

type outcome struct {
	result Result
	err    error
}

// runBatch evaluates every input on the worker pool and writes the results
// that succeeded in input order. Failures are logged one by one and returned
// together.
func runBatch(
	cmd *cobra.Command,
	cfg *Config,
	typ numberType,
	inputs []string,
	eval func(raw string) (Result, error),
) error {
	ctx := logger.With(cmd.Context(), "command", cmd.Name(), "type", typ.Name())

	logger.Get(ctx).Debug("evaluating values",
		"count", len(inputs), "backend", cfg.Backend, "workers", cfg.Workers)

	outcomes, err := bgworker.Map(ctx, cfg.Workers, inputs, func(_ context.Context, _ int, raw string) outcome {
		result, err := eval(raw)

		return outcome{result: result, err: err}
	})
	if err != nil {
		return err
	}

	var (
		results []Result
		errs    amperrors.Collection
	)

	for i, out := range outcomes {
		if out.err != nil {
			failure := logger.AnnotateError(
				fmt.Errorf("value %d (%q): %w", i+1, inputs[i], out.err),
				"index", i, "input", inputs[i])

			logger.Get(ctx).Error("value failed", "error", failure)
			errs.Add(failure)

			continue
		}

		results = append(results, out.result)
	}

	if err := writeResults(cmd.OutOrStdout(), cfg.Output, results); err != nil {
		return err
	}

	return errs.GetError()
}
