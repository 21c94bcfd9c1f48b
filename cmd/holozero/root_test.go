package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true // keep asserted output free of escape codes
}

// execute runs the command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_Identity(t *testing.T) {
	out, err := execute(t, "-F", "identity", "--", "-1", "1", "-1", "1", "-1", "1", "-1", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// One zero line followed by the summary.
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, 8, len(strings.Split(lines[0], "; ")), "zero line must carry eight endpoints")
	assert.Contains(t, out, "Zeros found: 1")
	assert.Contains(t, out, "Number of bisections: 0")
	assert.NotContains(t, out, "Maximum number of steps reached")
}

func TestRun_Verbose(t *testing.T) {
	out, err := execute(t, "-v", "-F", "identity", "--", "-1", "1", "-1", "1", "-1", "1", "-1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 0")
	assert.Contains(t, out, "Parts done: 1, parts left: 0")
	assert.Contains(t, out, "Parts discarded from enclosure: 0")
}

func TestRun_FinalIntervals(t *testing.T) {
	// highdegree stays undecided on the unit box; with -s 0 and -f the
	// untouched input box must come back verbatim.
	out, err := execute(t, "-f", "-s", "0", "-F", "highdegree",
		"--", "-1", "1", "-1", "1", "-1", "1", "-1", "1")
	require.NoError(t, err)
	assert.Equal(t, "-1; 1; -1; 1; -1; 1; -1; 1", strings.TrimSpace(out))
}

func TestRun_StepCapSummary(t *testing.T) {
	out, err := execute(t, "-s", "2", "-F", "highdegree",
		"--", "-1", "1", "-1", "1", "-1", "1", "-1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Maximum number of steps reached")
	assert.Contains(t, out, "Parts left: 4")
	assert.Contains(t, out, "Percentage of original domain: 0.5")
}

func TestRun_ParameterFlags(t *testing.T) {
	out, err := execute(t, "-F", "shifted", "-p", "0.3",
		"--", "0.1", "0.45", "-0.12", "0.1", "-0.13", "0.1", "-0.1", "0.09")
	require.NoError(t, err)
	assert.Contains(t, out, "Zeros found: 1")

	out, err = execute(t, "-F", "shifted", "-p", "5",
		"--", "0.1", "0.45", "-0.12", "0.1", "-0.13", "0.1", "-0.1", "0.09")
	require.NoError(t, err)
	assert.Contains(t, out, "Zeros found: 0")
}

func TestRun_ArgumentErrors(t *testing.T) {
	_, err := execute(t, "--", "-1", "1", "-1", "1", "-1", "1", "-1")
	assert.Error(t, err, "seven endpoints must be rejected")

	_, err = execute(t, "-F", "no-such-map", "--", "-1", "1", "-1", "1", "-1", "1", "-1", "1")
	assert.Error(t, err)

	_, err = execute(t, "--", "-1", "1", "-1", "1", "-1", "1", "-1", "nope")
	assert.Error(t, err, "malformed endpoint must be rejected")

	_, err = execute(t, "-p", "huh", "--", "-1", "1", "-1", "1", "-1", "1", "-1", "1")
	assert.Error(t, err, "malformed parameter must be rejected")
}

func TestRun_WorkersFlag(t *testing.T) {
	out, err := execute(t, "-j", "4", "-F", "identity",
		"--", "-1", "1", "-1", "1", "-1", "1", "-1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Zeros found: 1")
}
