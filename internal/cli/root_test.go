// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}

// decode parses a JSON envelope.
func decode(t *testing.T, out string) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)

	return resp
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "esn", cmd.Use)

	for _, name := range []string{"run", "params"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, context.Background(), "params", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	quiet := (&RootOptions{}).NewLogger(&buf)
	assert.Equal(t, logrus.InfoLevel, quiet.GetLevel())

	loud := (&RootOptions{Verbose: true}).NewLogger(&buf)
	assert.Equal(t, logrus.DebugLevel, loud.GetLevel())
	loud.WithField("k", 1).Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=1")
}
