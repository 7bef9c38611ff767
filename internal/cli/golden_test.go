package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// Golden files pin the exact command output bytes, text and JSON.
// Regenerate with:
//
//	go test ./internal/cli -update

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func captureOutput(t *testing.T, cmd *cobra.Command, args ...string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.Bytes()
}

func TestDialOutputGolden(t *testing.T) {
	input := writeInput(t, "R50\n")

	t.Run("text", func(t *testing.T) {
		out := captureOutput(t, NewDialCommand(&RootOptions{Format: "text"}), input)
		newGoldie(t).Assert(t, "dial_landings_text", out)
	})

	t.Run("json", func(t *testing.T) {
		out := captureOutput(t, NewDialCommand(&RootOptions{Format: "json"}), input)
		newGoldie(t).Assert(t, "dial_landings_json", out)
	})
}

func TestDialCrossingsOutputGolden(t *testing.T) {
	input := writeInput(t, "R1000\n")

	out := captureOutput(t, NewDialCommand(&RootOptions{Format: "text"}), "--crossings", input)
	newGoldie(t).Assert(t, "dial_crossings_text", out)
}

func TestIDsOutputGolden(t *testing.T) {
	input := writeInput(t, "11-99\n")

	t.Run("text", func(t *testing.T) {
		out := captureOutput(t, NewIDsCommand(&RootOptions{Format: "text"}), input)
		newGoldie(t).Assert(t, "ids_doubled_text", out)
	})

	t.Run("json", func(t *testing.T) {
		out := captureOutput(t, NewIDsCommand(&RootOptions{Format: "json"}), input)
		newGoldie(t).Assert(t, "ids_doubled_json", out)
	})
}

func TestErrorOutputGolden(t *testing.T) {
	input := writeInput(t, "X10\n")

	buf := &bytes.Buffer{}
	cmd := NewDialCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{input})
	require.Error(t, cmd.Execute())

	newGoldie(t).Assert(t, "dial_bad_input_json", buf.Bytes())
}
