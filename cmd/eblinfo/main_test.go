package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSingleJob(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-model", "1", "-z", "0.05", "-energies", "0.126,1", "-flux", "2", "-horizon"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Franceschini2008 (1), z = 0.05")
	assert.Contains(t, out, "0.49067")
	assert.Contains(t, out, "absorbed")
	assert.Contains(t, out, "horizon energy: 4.906 TeV")
	assert.Empty(t, stderr.String())
}

func TestRunWarnsOutsideGrid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-model", "franceschini2008", "-z", "0.1", "-energies", "1000"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "+Inf")
	assert.Contains(t, stderr.String(), "level=WARN")
}

func TestRunUnknownModel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-model", "99"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "unknown model")
}

func TestRunMissingTable(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-model", "gilmore2012", "-tables", t.TempDir()}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Gilmore2012")
}

func TestRunBadEnergies(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-energies", "1,x"}, &stdout, &stderr))
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-list"}, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[2], "Franceschini2008")
	assert.Contains(t, lines[2], "yes")
	assert.Contains(t, lines[8], "INOUEetal_2013.dat")
	assert.Contains(t, lines[8], "GeV")
	assert.Contains(t, lines[8], "no")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	content := `
tolerance: 0.01
jobs:
  - model: Franceschini2008
    redshift: 0.05
    energies: [1]
    horizon: true
  - model: "1"
    redshift: 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-config", path}, &stdout, &stderr), stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "Franceschini2008 (Franceschini2008), z = 0.05")
	assert.Contains(t, out, "horizon energy: 4.906 TeV")
	assert.Contains(t, out, "Franceschini2008 (1), z = 0.3")
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 0.1, 1,10 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 1, 10}, got)

	got, err = parseFloats("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseFloats("1,,2")
	assert.Error(t, err)
}
