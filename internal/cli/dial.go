package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/dial"
)

// DialOptions holds flags for the dial command.
type DialOptions struct {
	*RootOptions
	Crossings bool
}

// NewDialCommand creates the dial command.
func NewDialCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DialOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dial <input-file>",
		Short: "Count zero hits for a dial rotation script",
		Long: `Run a rotation script against a 100-position dial starting at 50
and count the hits on position zero.

The input holds one command per line in the form <L|R><distance>;
blank lines are ignored. By default only rotations that end exactly
on zero count. With --crossings every pass through zero during a
rotation counts, computed in closed form.

Example:
  advent dial input.txt
  advent dial --crossings input.txt`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDial(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Crossings, "crossings", false, "count every pass through zero, not just landings")

	return cmd
}

func runDial(opts *DialOptions, inputPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	data, err := readInputFile(inputPath)
	if err != nil {
		return failLoad(formatter, err)
	}

	rots, err := dial.ParseScript(bytes.NewReader(data))
	if err != nil {
		return commandError(formatter, ExitFailure, ErrCodeBadInput, err.Error())
	}
	formatter.VerboseLog("parsed %d rotation(s) from %s", len(rots), inputPath)

	hits := dial.CountLandings(rots)
	if opts.Crossings {
		hits = dial.CountCrossings(rots)
	}

	return formatter.Success(hits)
}
