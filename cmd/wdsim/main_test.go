package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/withdrawal-simulator/internal/config"
	"github.com/rpgo/withdrawal-simulator/internal/output"
)

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSimulate_DefaultsToExample(t *testing.T) {
	stdout, _, err := runCLI(t, "simulate", "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, stdout, "C0=$1,000,000 W1=$40,000 r=7.00% g=3.00% Years=50")
	assert.Contains(t, stdout, "Terminal=$851,250")
}

func TestSimulate_FlagOverrides(t *testing.T) {
	stdout, _, err := runCLI(t, "simulate",
		"--capital", "$500,000",
		"--withdrawal", "30,000",
		"--rate", "5%",
		"--inflation", "0.02",
		"--years", "10",
		"--format", "csv",
	)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "0,500000,0,0", lines[1])
	assert.Equal(t, "1,495000,30000,30000", lines[2])
}

func TestSimulate_Errors(t *testing.T) {
	_, _, err := runCLI(t, "simulate", "--years", "0")
	assert.ErrorIs(t, err, config.ErrInvalidHorizon)

	_, _, err = runCLI(t, "simulate", "--years", "501")
	assert.ErrorIs(t, err, config.ErrInvalidHorizon)

	_, _, err = runCLI(t, "simulate", "--format", "xml")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, _, err = runCLI(t, "simulate", "--rate", "high")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --rate")

	_, _, err = runCLI(t, "simulate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestSimulate_WarnsOnUnusualInput(t *testing.T) {
	_, stderr, err := runCLI(t, "simulate", "--format", "console-lite", "--rate", "35%", "--years", "5")
	require.NoError(t, err)
	assert.Contains(t, stderr, "annual rate is outside 0-20%")
	assert.Contains(t, stderr, "horizon is outside 10-100 years")
}

func TestSimulate_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := runCLI(t, "simulate", "--format", "pdf", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Report written to")

	matches, err := filepath.Glob(filepath.Join(dir, "withdrawal_projection_*.pdf"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	allDir := filepath.Join(dir, "all")
	_, _, err = runCLI(t, "simulate", "--format", "all", "--out", allDir)
	require.NoError(t, err)
	entries, err := os.ReadDir(allDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestExampleConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	stdout, _, err := runCLI(t, "example-config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, path)

	stdout, _, err = runCLI(t, "--config", path, "simulate", "--format", "json", "--years", "10")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"horizon_years": 10`)
	assert.Contains(t, stdout, `"perpetual_min_capital": "1000000"`)
}

func TestExampleConfig_Stdout(t *testing.T) {
	stdout, _, err := runCLI(t, "example-config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "simulation:")
	assert.Contains(t, stdout, "horizon_years: 50")
}

func TestFormatsAndVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pdf")
	assert.Contains(t, stdout, "verbose")

	stdout, _, err = runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "wdsim version "+version+"\n", stdout)
}
