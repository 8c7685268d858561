/*
File    : beeline/beeline/beeline_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package beeline

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCaptured runs a program through the full pipeline with print output
// captured.
func runCaptured(t *testing.T, src string) (string, error) {
	t.Helper()
	interpreter := New(zerolog.Nop())
	var buf bytes.Buffer
	interpreter.SetWriter(&buf)
	err := interpreter.Run(src)
	return buf.String(), err
}

// TestRun_Scenarios verifies the whole pipeline on complete programs
func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print "hello"`, "hello"},
		{"var x = 1 + 2\nprint x + \" items\"", "3 items"},
		{"{ var x = 1\n { var x = 2\n print x + \"\" } \n print x + \"\" }", "21"},
		{"var i = 0\nwhile (i < 3) { print i + \"\" \n i = i + 1 }", "012"},
		{"if (true) print \"y\" else print \"n\"", "y"},
		{"", ""},
		{" \t\r\n", ""},
		{"// comment only\n", ""},
	}
	for _, tt := range tests {
		output, err := runCaptured(t, tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, output, "input %q", tt.input)
	}
}

// TestRun_FatalOutcomes verifies every specific error kind collapses into
// the generic BeelineError at the driver boundary
func TestRun_FatalOutcomes(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{`"unterminated`, "BeelineLexingError"},
		{"$", "unexpected character"},
		{"(1 + 2\n", "BeelineParseError"},
		{"(a+b) = 1\n", "left-hand side of assignment must be a variable"},
		{"print 1 / 0", "division by zero"},
		{"print 1 / 0", "BeelineRuntimeError"},
		{"var x = 1\nvar x = 2", "variable 'x' is already defined"},
	}
	for _, tt := range tests {
		_, err := runCaptured(t, tt.input)
		require.Error(t, err, "input %q", tt.input)
		var generic *BeelineError
		require.ErrorAs(t, err, &generic, "input %q", tt.input)
		assert.Contains(t, err.Error(), "BeelineError: ", "input %q", tt.input)
		assert.Contains(t, err.Error(), tt.contains, "input %q", tt.input)
	}
}

// TestRun_ReportsEveryParseFault verifies recovery lets one run surface
// multiple parse faults
func TestRun_ReportsEveryParseFault(t *testing.T) {
	_, err := runCaptured(t, "+\n)\nvar x = 1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected expression at 1:1-1")
	assert.Contains(t, err.Error(), "expected expression at 2:1-1")
}

// TestRun_NothingAfterFault verifies no statement after a faulting one runs
func TestRun_NothingAfterFault(t *testing.T) {
	output, err := runCaptured(t, "print \"a\"\nprint null\nprint \"b\"")
	require.Error(t, err)
	assert.Equal(t, "a", output)
}
