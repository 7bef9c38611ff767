package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/ids"
)

// IDsOptions holds flags for the ids command.
type IDsOptions struct {
	*RootOptions
	Rule string // "doubled" | "repeated"
}

// ValidRules defines the allowed invalid-ID rules.
var ValidRules = []string{"doubled", "repeated"}

// NewIDsCommand creates the ids command.
func NewIDsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IDsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ids <input-file>",
		Short: "Sum invalid IDs inside the given ranges",
		Long: `Scan closed integer ranges for invalid IDs and print their sum.

The input is a comma-separated list of start-end tokens; whitespace
around tokens is ignored. Two rules exist:

  doubled   an ID is a seed's digit pattern written twice (1212).
            Candidates are generated sparsely from seeds.
  repeated  an ID is any shorter digit chunk repeated (121212).
            Every value in every range is tested, so cost grows with
            range width - keep ranges small.

Example:
  advent ids input.txt
  advent ids --rule repeated input.txt`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIDs(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Rule, "rule", "doubled", "invalid-ID rule (doubled|repeated)")

	return cmd
}

func runIDs(opts *IDsOptions, inputPath string, cmd *cobra.Command) error {
	if !isValidRule(opts.Rule) {
		return NewExitError(ExitUsageError,
			fmt.Sprintf("invalid rule %q: must be one of %v", opts.Rule, ValidRules))
	}

	formatter := newFormatter(opts.RootOptions, cmd)

	data, err := readInputFile(inputPath)
	if err != nil {
		return failLoad(formatter, err)
	}

	ranges, err := ids.ParseRanges(string(data))
	if err != nil {
		return commandError(formatter, ExitFailure, ErrCodeBadInput, err.Error())
	}
	formatter.VerboseLog("parsed %d range(s) from %s", len(ranges), inputPath)

	var sum uint64
	if opts.Rule == "repeated" {
		sum = ids.SumRepeated(ranges)
	} else {
		sum = ids.SumDoubled(ranges)
	}

	return formatter.Success(sum)
}

func isValidRule(rule string) bool {
	for _, r := range ValidRules {
		if r == rule {
			return true
		}
	}
	return false
}
