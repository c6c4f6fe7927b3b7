// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quick is a small, pause-free run.
var quick = []string{"run", "--samples", "200", "--pause", "0", "--reservoir-size", "20"}

func TestRunCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	run, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)

	want := map[string]string{
		"reservoir-size":  "100",
		"spectral-radius": "0.9",
		"input-scaling":   "0.1",
		"leaking-rate":    "0.3",
		"seed":            "42",
		"data-seed":       "1",
		"samples":         "1000",
		"signal":          "sine",
		"pause":           "100ms",
		"config":          "",
	}
	for name, def := range want {
		f := run.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, def, f.DefValue, name)
	}
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, context.Background(), append(quick, "--format", "json")...)
	require.NoError(t, err)

	resp := decode(t, out)
	require.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 376.0, data["steps"])
	assert.Equal(t, 160.0, data["split"])
	assert.Equal(t, "sine", data["signal"])
	assert.InDelta(t, 1.88, data["memory_capacity"], 1e-12)
	assert.NotEmpty(t, data["run_id"])
}

func TestRunText(t *testing.T) {
	out, stderr, err := execute(t, context.Background(), append(quick, "--signal", "pulse", "-v")...)
	require.NoError(t, err)

	assert.Contains(t, out, "pulse, 200 samples, split 160")
	assert.Contains(t, out, "Reservoir Size")
	assert.Contains(t, out, "memory capacity")
	assert.Contains(t, out, "(376 steps)")
	assert.Contains(t, stderr, "msg=progress")
	assert.Contains(t, stderr, `msg="run finished"`)
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
parameters:
  reservoir_size: 500
  spectral_radius: 1.1
run:
  samples: 120
  pause: 0s
`), 0o644))

	out, _, err := execute(t, context.Background(),
		"run", "--config", path, "--reservoir-size", "30", "--samples", "150", "--format", "json")
	require.NoError(t, err)

	data := decode(t, out).Data.(map[string]interface{})
	assert.Equal(t, 150.0, data["samples"])
	params := data["parameters"].([]interface{})
	assert.Equal(t, 30.0, params[0].(map[string]interface{})["value"])
	assert.Equal(t, 1.1, params[1].(map[string]interface{})["value"])
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"unknown signal", []string{"--signal", "square"}, ExitCommandError, "E001"},
		{"size out of range", []string{"--reservoir-size", "5"}, ExitCommandError, "E001"},
		{"zero leaking rate", []string{"--leaking-rate", "0"}, ExitCommandError, "E002"},
		{"too few samples", []string{"--samples", "1"}, ExitCommandError, "E001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, context.Background(), append(append([]string{}, quick...), tc.args...)...)
			require.Error(t, err)
			assert.Equal(t, tc.code, GetExitCode(err))
			assert.Contains(t, out, "Error ["+tc.want+"]")
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, _, err := execute(t, ctx, append(quick, "--format", "json")...)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decode(t, out)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeCancelled, resp.Error.Code)
}
