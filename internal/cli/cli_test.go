package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/piecewise/internal/parallel"
	"github.com/born-ml/piecewise/internal/piecewise"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "functions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "piecewise "+version+"\n", out)
}

func TestTable_StepPreset(t *testing.T) {
	out, err := execute(t, "table", "--preset", "step", "--from", "-1", "--to", "1", "--steps", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"x", "value", "derivative"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"-1", "0", "0.419974342"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0", "0", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"1", "1", "0.419974342"}, strings.Fields(lines[3]))
}

func TestTable_Config(t *testing.T) {
	path := writeConfig(t, `
functions:
  - name: relu
    split: 1
    left:  {kind: constant, value: 0}
    right: {kind: linear, slope: 1, offset: -1}
`)
	out, err := execute(t, "table", "--config", path, "--name", "relu", "--from", "0", "--to", "2", "--steps", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"1", "0", "0.5"}, strings.Fields(lines[2]))
	assert.Equal(t, "1", strings.Fields(lines[3])[1])
}

func TestTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no source", []string{"table"}, "--preset or --config"},
		{"unknown preset", []string{"table", "--preset", "ramp"}, `unknown preset "ramp"`},
		{"bad width", []string{"table", "--preset", "step", "--b1", "0"}, "invalid parameter"},
		{"few steps", []string{"table", "--preset", "step", "--steps", "1"}, "steps must be at least 2"},
		{"empty range", []string{"table", "--preset", "step", "--from", "1", "--to", "1"}, "empty range"},
		{"config without name", []string{"table", "--config", "x.yaml"}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheck_Hinge(t *testing.T) {
	out, err := execute(t, "check", "--preset", "hinge", "--split", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "points=")
	assert.Contains(t, out, "skipped=")
}

func TestCheck_AllSkipped(t *testing.T) {
	_, err := execute(t, "check", "--preset", "step", "--from", "-1", "--to", "1", "--steps", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inside the smoothing region")
}

func TestCompare_SkipsSmoothingRegion(t *testing.T) {
	p, err := piecewise.Hinge(0.0)
	require.NoError(t, err)

	res := compare(p, []float64{-30, -1, 0, 1, 30}, 20, parallel.Sequential())
	assert.Equal(t, 2, res.points)
	assert.Equal(t, 3, res.skipped)
	assert.Less(t, res.maxErr, 1e-6)
}

func TestGrid(t *testing.T) {
	xs, err := grid(-1, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, xs)
}

func TestBuildPreset_Options(t *testing.T) {
	f := functionFlags{preset: presetStep, b1: 2, b2: 0.5, split: 0, low: 1, high: 3, centered: true}
	p, err := f.buildPreset()
	require.NoError(t, err)

	assert.Equal(t, 2.0, p.Amplitude())
	assert.Equal(t, 0.5, p.BetaAmplitude())
	assert.Equal(t, 2.0, p.BetaDiff())
	assert.True(t, p.Centered())
}

func TestTable_WorkersMatchSequential(t *testing.T) {
	seq, err := execute(t, "table", "--preset", "hinge", "--split", "0.5", "--steps", "41", "--workers", "1")
	require.NoError(t, err)
	par, err := execute(t, "table", "--preset", "hinge", "--split", "0.5", "--steps", "41", "--workers", "4")
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestWorkerConfig(t *testing.T) {
	assert.False(t, workerConfig(1).Enabled)
	assert.Equal(t, 3, workerConfig(3).NumWorkers)
	assert.Equal(t, parallel.DefaultConfig(), workerConfig(0))
}
