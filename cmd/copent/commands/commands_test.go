package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "copent dev")
}

func TestCECommand_JSONSummary(t *testing.T) {
	out, err := execute(t, "ce", "-n", "200", "--trials", "3", "-o", "json")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "ce", r.Command)
	require.NotNil(t, r.Summary)
	assert.Equal(t, 3, r.Summary.Trials)
	assert.LessOrEqual(t, r.Summary.Min, r.Summary.Median)
	assert.LessOrEqual(t, r.Summary.Median, r.Summary.Max)
}

func TestTSTCommand_YAML(t *testing.T) {
	out, err := execute(t, "tst", "-n", "40", "--shift", "3", "-o", "yaml")
	require.NoError(t, err)

	var r map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "tst", r["command"])
	assert.NotContains(t, r, "summary", "single trial has no summary")
}

func TestMVNTCommand_SampleCorrelation(t *testing.T) {
	out, err := execute(t, "mvnt", "-n", "300", "--rho", "0.8", "-o", "json")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "mvnt", r.Command)
	var found bool
	for _, f := range r.Fields {
		if f.Name != "sample correlation" {
			continue
		}
		found = true
		v, ok := f.Value.(float64)
		require.True(t, ok, "%T", f.Value)
		assert.InDelta(t, 0.8, v, 0.1)
	}
	assert.True(t, found, "sample correlation field missing")
}

func TestMCPDCommand_Table(t *testing.T) {
	out, err := execute(t, "mcpd", "--blocks", "2", "--block-size", "20", "--shift", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "positions")
	assert.Contains(t, out, "true boundaries")
}

func TestRootCommand_Errors(t *testing.T) {
	_, err := execute(t, "ce", "-o", "xml")
	assert.ErrorIs(t, err, ErrUnknownOutput)

	_, err = execute(t, "ce", "--trials", "0")
	assert.Error(t, err)

	_, err = execute(t, "ce", "--log-level", "loud")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s, err := summarize([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Trials)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.InDelta(t, 1.2910, s.StdDev, 1e-4)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)

	one, err := summarize([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, one.StdDev)

	_, err = summarize(nil)
	assert.Error(t, err)
}
