package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/abiforge/internal/app"
	"github.com/vk/abiforge/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"frobnicate"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	abiPath := filepath.Join(dir, "WXDAI.json")
	require.NoError(t, os.WriteFile(abiPath, []byte(`[
	  {"name":"transfer","type":"function","stateMutability":"nonpayable",
	   "inputs":[{"name":"dst","type":"address"},{"name":"wad","type":"uint256"}],
	   "outputs":[{"name":"","type":"bool"}]}
	]`), 0o644))

	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"generate", "-abi", abiPath, "-root", dir}))

	configPath := filepath.Join(dir, "agents.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
profiles:
  user:
    available_actions:
      - action: wxdai_Transfer
`), 0o644))

	err := run(out, []string{"actions", "-protocols", dir, "-config", configPath})
	require.ErrorIs(t, err, app.ErrValidationFailed)
	require.Contains(t, out.String(), "missing required parameter: dst")
}
