package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/config"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Populated by the root PersistentPreRunE.
	Config  *config.Config
	TraceID string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the advent CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "advent",
		Short: "Deterministic puzzle solvers and extension packaging",
		Long: `Advent bundles a set of small deterministic solvers - a circular
dial zero-hit counter and two invalid-ID range scanners - together
with a packager that builds the Flux editor extension into a .vsix
archive.

Each solver reads an input file and prints a single integer, so
identical input always produces identical output.`,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We handle error printing ourselves
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return NewExitError(ExitUsageError, err.Error())
			}
			opts.Config = cfg

			// Flags beat config file values.
			if !c.Root().PersistentFlags().Changed("format") && cfg.Format != "" {
				opts.Format = cfg.Format
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitUsageError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			opts.TraceID = uuid.Must(uuid.NewV7()).String()

			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
			slog.Debug("invocation", "trace_id", opts.TraceID)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (default .advent.yaml)")

	// Flag mistakes are usage errors, exit code 2.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitUsageError, "invalid usage", err)
	})

	// Add subcommands
	cmd.AddCommand(NewDialCommand(opts))
	cmd.AddCommand(NewIDsCommand(opts))
	cmd.AddCommand(NewPackCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// exactArgs is cobra.ExactArgs with argument-count mistakes mapped to
// exit code 2.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitUsageError, "usage: "+cmd.UseLine(), err)
		}
		return nil
	}
}

// cfg returns the loaded config, falling back to built-in defaults
// when the root pre-run has not populated it (direct command
// execution in tests).
func (o *RootOptions) cfg() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}
