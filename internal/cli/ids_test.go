package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runIDsCommand(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewIDsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestIDsDoubled(t *testing.T) {
	// Seeds 1..9 double into 11..99, all inside the range: 11*45 = 495.
	input := writeInput(t, "11-99\n")

	buf, err := runIDsCommand(t, input)
	require.NoError(t, err)
	assert.Equal(t, "495\n", buf.String())
}

func TestIDsDoubledNoMatches(t *testing.T) {
	input := writeInput(t, "100-999\n")

	buf, err := runIDsCommand(t, input)
	require.NoError(t, err)
	assert.Equal(t, "0\n", buf.String())
}

func TestIDsRepeated(t *testing.T) {
	// [1,50]: 11,22,33,44. [100,200]: 111. Total 221.
	input := writeInput(t, "1-50, 100-200\n")

	buf, err := runIDsCommand(t, "--rule", "repeated", input)
	require.NoError(t, err)
	assert.Equal(t, "221\n", buf.String())
}

func TestIDsEmptyInput(t *testing.T) {
	input := writeInput(t, "")

	for _, rule := range ValidRules {
		buf, err := runIDsCommand(t, "--rule", rule, input)
		require.NoError(t, err)
		assert.Equal(t, "0\n", buf.String())
	}
}

func TestIDsJSONOutput(t *testing.T) {
	input := writeInput(t, "11-99\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewIDsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{input})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, float64(495), resp.Data)
}

func TestIDsInvalidRule(t *testing.T) {
	input := writeInput(t, "11-99\n")

	_, err := runIDsCommand(t, "--rule", "palindrome", input)
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid rule "palindrome"`)
}

func TestIDsMalformedRange(t *testing.T) {
	input := writeInput(t, "11-99,banana\n")

	buf, err := runIDsCommand(t, input)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "E002")
	assert.Contains(t, buf.String(), `"banana"`)
}
