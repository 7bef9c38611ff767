package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialLandings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"no hits", "L10\nR50\n", "0\n"},
		{"single landing", "R50\n", "1\n"},
		{"empty input", "", "0\n"},
		{"blank lines ignored", "\nR50\n\n", "1\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := writeInput(t, tc.input)

			buf := &bytes.Buffer{}
			rootOpts := &RootOptions{Format: "text"}
			cmd := NewDialCommand(rootOpts)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{input})

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestDialCrossings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"no crossings", "L10\nR50\n", "0\n"},
		{"exact landing", "R50\n", "1\n"},
		{"ten revolutions", "R1000\n", "10\n"},
		{"pass through", "R60\n", "1\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := writeInput(t, tc.input)

			buf := &bytes.Buffer{}
			rootOpts := &RootOptions{Format: "text"}
			cmd := NewDialCommand(rootOpts)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{"--crossings", input})

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestDialJSONOutput(t *testing.T) {
	input := writeInput(t, "R50\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewDialCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{input})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, float64(1), resp.Data)
	assert.Nil(t, resp.Error)
}

func TestDialJSONCarriesTraceToken(t *testing.T) {
	input := writeInput(t, "R50\n")

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dial", input, "--format", "json"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.NotEmpty(t, resp.TraceID)
	_, err := uuid.Parse(resp.TraceID)
	assert.NoError(t, err)
}

func TestDialMalformedInput(t *testing.T) {
	input := writeInput(t, "L5\nX10\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDialCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{input})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "E002")
	assert.Contains(t, buf.String(), "Error [E002]")
	assert.Contains(t, buf.String(), "line 2")
}

func TestDialMissingInputFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDialCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{missing})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "E003")
	assert.Contains(t, buf.String(), "input file not found")
}

func TestDialIdempotent(t *testing.T) {
	input := writeInput(t, "R50\nL30\nR80\n")

	run := func() string {
		buf := &bytes.Buffer{}
		rootOpts := &RootOptions{Format: "text"}
		cmd := NewDialCommand(rootOpts)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{input})
		require.NoError(t, cmd.Execute())
		return buf.String()
	}

	first := run()
	assert.Equal(t, first, run())
}
