package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wxdaiABI = `[
  {"name":"transfer","type":"function","stateMutability":"nonpayable",
   "inputs":[{"name":"dst","type":"address"},{"name":"wad","type":"uint256"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"name":"balanceOf","type":"function","stateMutability":"view",
   "inputs":[{"name":"guy","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]}
]`

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()
	config, err := NewConfig(cfg)
	require.NoError(t, err)
	var out bytes.Buffer
	return NewApp(&out, os.Stderr, config), &out
}

func generateWXDAI(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	abiPath := filepath.Join(root, "WXDAI.json")
	require.NoError(t, os.WriteFile(abiPath, []byte(wxdaiABI), 0o644))

	forge, _ := newTestApp(t, Config{
		Command: CommandGenerate,
		ABIPath: abiPath,
		Root:    root,
	})
	require.NoError(t, forge.Run(context.Background()))
	return root
}

func TestGenerateSingleABI(t *testing.T) {
	root := generateWXDAI(t)

	dir := filepath.Join(root, "interfaces", "wxdai")
	for _, name := range []string{"wxdai_client.go", "wxdai_handler.go", "actions.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s", name)
	}
}

func TestGenerateMissingABIFails(t *testing.T) {
	forge, _ := newTestApp(t, Config{
		Command: CommandGenerate,
		ABIPath: filepath.Join(t.TempDir(), "missing.json"),
		Root:    t.TempDir(),
	})
	assert.Error(t, forge.Run(context.Background()))
}

func TestGenerateProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "WXDAI.json"), []byte(wxdaiABI), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abiforge.hcl"), []byte(`
contract "WXDAI" {
  abi = "WXDAI.json"
}
`), 0o644))

	forge, _ := newTestApp(t, Config{
		Command:     CommandGenerate,
		ProjectPath: filepath.Join(dir, "abiforge.hcl"),
	})
	require.NoError(t, forge.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "interfaces", "wxdai", "wxdai_client.go"))
	assert.NoError(t, err)
}

func TestActionsEndToEnd(t *testing.T) {
	root := generateWXDAI(t)

	configPath := filepath.Join(root, "agents.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
profiles:
  user:
    available_actions:
      - action: wxdai_Transfer
        dst: "0xabc"
        wad: 100
`), 0o644))

	forge, out := newTestApp(t, Config{
		Command:      CommandActions,
		ProtocolsDir: root,
		ConfigPath:   configPath,
	})
	require.NoError(t, forge.Run(context.Background()))
	assert.Contains(t, out.String(), "valid")

	catalogue, err := os.ReadFile(filepath.Join(root, "actions_catalogue.go"))
	require.NoError(t, err)
	assert.Contains(t, string(catalogue), `"wxdai_Transfer"`)
}

func TestActionsValidationFailure(t *testing.T) {
	root := generateWXDAI(t)

	configPath := filepath.Join(root, "agents.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
profiles:
  user:
    available_actions:
      - action: wxdai_Transfer
        dst: "0xabc"
      - action: fjord_Swap
`), 0o644))

	forge, out := newTestApp(t, Config{
		Command:      CommandActions,
		ProtocolsDir: root,
		ConfigPath:   configPath,
	})
	err := forge.Run(context.Background())
	require.ErrorIs(t, err, ErrValidationFailed)

	report := out.String()
	assert.Contains(t, report, "unknown action: fjord_Swap")
	assert.Contains(t, report, "missing required parameter: wad")
	assert.Contains(t, report, "2 validation errors")
}

func TestActionsMissingRootIsFatal(t *testing.T) {
	forge, _ := newTestApp(t, Config{
		Command:      CommandActions,
		ProtocolsDir: filepath.Join(t.TempDir(), "nope"),
	})
	assert.Error(t, forge.Run(context.Background()))
}

func TestNewConfigValidation(t *testing.T) {
	_, err := NewConfig(Config{Command: CommandGenerate})
	assert.Error(t, err)

	_, err = NewConfig(Config{Command: CommandActions})
	assert.Error(t, err)

	_, err = NewConfig(Config{Command: "deploy"})
	assert.Error(t, err)

	cfg, err := NewConfig(Config{Command: CommandActions, ProtocolsDir: "x"})
	require.NoError(t, err)
	assert.Equal(t, "actions", cfg.CataloguePkg)
}
