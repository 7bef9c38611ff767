package cli

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/bench"
	"github.com/roach88/advent/internal/dial"
	"github.com/roach88/advent/internal/ids"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	*RootOptions
	Runs     int
	Database string
}

// benchSolvers lists the solver names accepted by the bench command.
var benchSolvers = []string{"dial", "dial-crossings", "ids-doubled", "ids-repeated"}

// BenchReport is the bench command's result payload.
type BenchReport struct {
	Solver        string  `json:"solver"`
	Answer        string  `json:"answer"`
	Runs          int     `json:"runs"`
	MeanNs        int64   `json:"mean_ns"`
	HasBaseline   bool    `json:"has_baseline"`
	BaselineNs    int64   `json:"baseline_ns,omitempty"`
	ChangePercent float64 `json:"change_percent,omitempty"`
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "bench <solver> <input-file>",
		Short: "Time a solver and track run history",
		Long: `Measure a solver's mean wall-clock time over repeated runs.

Solvers: dial, dial-crossings, ids-doubled, ids-repeated.

With --db (or a configured database) every measurement is appended to
a local SQLite history keyed by solver name and input digest, and the
report includes the change against the earliest recorded baseline.

Example:
  advent bench dial input.txt
  advent bench --runs 20 --db bench.db ids-repeated ranges.txt`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Runs, "runs", 0, "number of measured runs (default from config, 5)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to history database (default from config)")

	return cmd
}

func runBench(opts *BenchOptions, solverName, inputPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	solve, err := solverFor(solverName)
	if err != nil {
		return NewExitError(ExitUsageError, err.Error())
	}

	data, err := readInputFile(inputPath)
	if err != nil {
		return failLoad(formatter, err)
	}
	digest := sha256.Sum256(data)
	inputSHA := hex.EncodeToString(digest[:])

	runs := opts.Runs
	if runs <= 0 {
		runs = opts.cfg().Bench.Runs
	}
	dbPath := opts.Database
	if dbPath == "" {
		dbPath = opts.cfg().Bench.Database
	}

	var answer string
	stats, err := bench.Measure(runs, func() error {
		a, err := solve(data)
		if err != nil {
			return err
		}
		answer = a
		return nil
	})
	if err != nil {
		return commandError(formatter, ExitFailure, ErrCodeBadInput, err.Error())
	}
	slog.Debug("measured solver",
		"solver", solverName, "runs", stats.Runs, "mean", stats.Mean)

	report := &BenchReport{
		Solver: solverName,
		Answer: answer,
		Runs:   stats.Runs,
		MeanNs: stats.Mean.Nanoseconds(),
	}

	if dbPath != "" {
		st, err := bench.Open(dbPath)
		if err != nil {
			return commandError(formatter, ExitFailure, ErrCodeStoreFailed, err.Error())
		}
		defer st.Close()

		baseline, err := st.Baseline(solverName, inputSHA)
		if err != nil {
			return commandError(formatter, ExitFailure, ErrCodeStoreFailed, err.Error())
		}
		if baseline != nil {
			report.HasBaseline = true
			report.BaselineNs = baseline.Mean.Nanoseconds()
			report.ChangePercent = bench.ChangePercent(baseline.Mean, stats.Mean)
		}

		if _, err := st.Record(bench.Run{
			Solver:     solverName,
			InputSHA:   inputSHA,
			Answer:     answer,
			Runs:       stats.Runs,
			Mean:       stats.Mean,
			RecordedAt: time.Now(),
		}); err != nil {
			return commandError(formatter, ExitFailure, ErrCodeStoreFailed, err.Error())
		}
	}

	return outputBenchReport(formatter, report)
}

func outputBenchReport(f *OutputFormatter, r *BenchReport) error {
	if f.Format == "json" {
		return f.Success(r)
	}

	fmt.Fprintf(f.Writer, "%s: answer %s\n", r.Solver, r.Answer)
	fmt.Fprintf(f.Writer, "  runs %d, mean %s\n", r.Runs, time.Duration(r.MeanNs))
	if r.HasBaseline {
		fmt.Fprintf(f.Writer, "  baseline %s, change %+.1f%%\n",
			time.Duration(r.BaselineNs), r.ChangePercent)
	}
	return nil
}

// solverFor maps a bench solver name to its computation. The solver
// returns the printed answer so it can be recorded next to timings.
func solverFor(name string) (func([]byte) (string, error), error) {
	switch name {
	case "dial":
		return func(input []byte) (string, error) {
			rots, err := dial.ParseScript(bytes.NewReader(input))
			if err != nil {
				return "", err
			}
			return strconv.Itoa(dial.CountLandings(rots)), nil
		}, nil
	case "dial-crossings":
		return func(input []byte) (string, error) {
			rots, err := dial.ParseScript(bytes.NewReader(input))
			if err != nil {
				return "", err
			}
			return strconv.Itoa(dial.CountCrossings(rots)), nil
		}, nil
	case "ids-doubled":
		return func(input []byte) (string, error) {
			ranges, err := ids.ParseRanges(string(input))
			if err != nil {
				return "", err
			}
			return strconv.FormatUint(ids.SumDoubled(ranges), 10), nil
		}, nil
	case "ids-repeated":
		return func(input []byte) (string, error) {
			ranges, err := ids.ParseRanges(string(input))
			if err != nil {
				return "", err
			}
			return strconv.FormatUint(ids.SumRepeated(ranges), 10), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q: must be one of %v", name, benchSolvers)
	}
}
