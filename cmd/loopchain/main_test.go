package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/loopchain/pareto"
)

const scenarioFile = "../../testdata/scenario.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd, flush := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	require.NoError(t, flush())

	return out.String(), err
}

func TestValidate_ReportsModelSize(t *testing.T) {
	out, err := execute(t, "validate", scenarioFile)
	require.NoError(t, err)
	assert.Contains(t, out, "OK (base, 21 vars, 3 binaries, 18 rows)")

	out, err = execute(t, "validate", "--features", "refurbish-waste", scenarioFile)
	require.NoError(t, err)
	assert.Contains(t, out, "OK (refurbish-waste, 22 vars, 3 binaries, 19 rows)")
}

func TestValidate_FailsPerFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	out, err := execute(t, "validate", scenarioFile, missing)
	require.Error(t, err)
	assert.Contains(t, out, scenarioFile+": OK")
	assert.Contains(t, out, missing+": FAILED")

	_, err = execute(t, "validate")
	assert.ErrorIs(t, err, errNoParams)
}

func TestSolve_PrintsBreakdown(t *testing.T) {
	out, err := execute(t, "solve", scenarioFile)
	require.NoError(t, err)
	assert.Contains(t, out, "optimal")
	assert.Contains(t, out, "environmental")

	_, err = execute(t, "solve", "--objective", "water", scenarioFile)
	assert.Error(t, err)

	_, err = execute(t, "solve", "--objective", "env", "--epsilon=-1", scenarioFile)
	assert.Error(t, err, "a negative cost cap cannot be met")
}

func TestSweep_WritesYAMLFrontier(t *testing.T) {
	out, err := execute(t, "sweep", "--points", "4", "--format", "yaml", scenarioFile)
	require.NoError(t, err)

	var f pareto.Frontier
	require.NoError(t, yaml.Unmarshal([]byte(out), &f))
	assert.Greater(t, f.Payoff.CostAtEnvMin, f.Payoff.CostMin)
	assert.NotEmpty(t, f.CostCurve.Points)
	assert.Equal(t, pareto.EnvCurve, f.EnvCurve.Kind)
}

func TestSweep_WritesCSVPerScenario(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(t.TempDir(), "second.yaml")
	body, err := os.ReadFile(scenarioFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(second, body, 0o600))

	_, err = execute(t, "sweep", "--points", "3", "--parallel", "2", "--out", dir, scenarioFile, second)
	require.NoError(t, err)

	for _, name := range []string{"scenario", "second"} {
		files, err := filepath.Glob(filepath.Join(dir, name, "*_curve_cost_min.csv"))
		require.NoError(t, err)
		assert.Len(t, files, 1, name)
	}
}
