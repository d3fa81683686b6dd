package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/solver"
)

// execute runs the command line and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// fixture writes a small instance set and its references into a temp dir.
func fixture(t *testing.T, extra ...string) (problems, refs string) {
	t.Helper()
	dir := t.TempDir()
	problems = filepath.Join(dir, "problems.dat")
	refs = filepath.Join(dir, "reference.dat")
	args := append([]string{"generate", "--count", "8", "--size", "10", "--seed", "3",
		"-o", problems, "--reference", refs}, extra...)
	_, _, err := execute(t, args...)
	require.NoError(t, err)

	return problems, refs
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := execute(t, "generate", "--count", "3", "--size", "4", "--decision")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		p, err := instance.ParseProblem(l)
		require.NoError(t, err)
		assert.True(t, p.HasThreshold)
		assert.Len(t, p.Items, 4)
	}
}

func TestSolve_WithReference(t *testing.T) {
	problems, refs := fixture(t)
	for _, m := range []string{"naive", "pruning", "dynamic-cost", "redux"} {
		out, _, err := execute(t, "solve", problems, refs, "--method", m, "--verify", "--strict")
		require.NoError(t, err, m)
		assert.Contains(t, out, "Maximum time:")
		assert.NotContains(t, out, "mismatch")
	}

	out, _, err := execute(t, "solve", problems, refs, "-m", "ftpas", "--precision", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "max possible:")
}

func TestSolve_ConfigErrorsComeFirst(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.dat")

	_, errOut, err := execute(t, "solve", missing, "--method", "ftpas")
	assert.ErrorIs(t, err, solver.ErrMissingParameter)
	assert.Contains(t, errOut, "precision")

	_, _, err = execute(t, "solve", missing, "--method", "tabu-search", "--memory-size", "4")
	assert.ErrorIs(t, err, solver.ErrMissingParameter)

	_, _, err = execute(t, "solve", missing, "--method", "simplex")
	assert.ErrorIs(t, err, solver.ErrUnknownMethod)

	_, _, err = execute(t, "solve", missing, "--format", "yaml")
	assert.Error(t, err)

	_, _, err = execute(t, "solve", missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolve_Environment(t *testing.T) {
	problems, _ := fixture(t)
	t.Setenv("KNAPSACK_METHOD", "tabu-search")
	t.Setenv("KNAPSACK_MEMORY_SIZE", "3")
	t.Setenv("KNAPSACK_ITERATIONS", "20")

	out, _, err := execute(t, "solve", problems, "--format", "table", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "tabu-search")
}

func TestSolve_ConfigFile(t *testing.T) {
	problems, refs := fixture(t)
	cfg := filepath.Join(t.TempDir(), "knapsack.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("method: approx-pruning\nprecision: 4\nworkers: 3\n"), 0o600))

	out, _, err := execute(t, "solve", problems, refs, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "errors: ratio:")
}

func TestSolve_OutputFiles(t *testing.T) {
	problems, _ := fixture(t, "--decision")
	dir := t.TempDir()
	durations := filepath.Join(dir, "durations.txt")
	metrics := filepath.Join(dir, "metrics.prom")

	_, _, err := execute(t, "solve", problems, "--save-durations", durations, "--metrics-file", metrics, "--debug")
	require.NoError(t, err)

	b, err := os.ReadFile(durations)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(b)), "\n"), 8)

	b, err = os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(b), `knapsack_instances_total{method="pruning",mode="decision"`)
}

func TestMethods(t *testing.T) {
	out, _, err := execute(t, "methods")
	require.NoError(t, err)
	for _, m := range solver.Methods() {
		assert.Contains(t, out, m.String())
	}
	assert.Contains(t, out, "--memory-size --iterations")
}
