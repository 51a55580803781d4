package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
profiles:
  circles_user:
    available_actions:
      - action: wxdai_Transfer
        dst: "0x42cEDde51198D1773590311E2A340DC06B24cB37"
        wad: 100
      - action: ringshub_PersonalMint
        constraints:
          max_mint_amount: 50
  whale:
    available_actions:
      - action: wxdai_Deposit
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	require.NoError(t, err)
	require.Len(t, doc.Profiles, 2)

	user := doc.Profiles["circles_user"]
	require.Len(t, user.AvailableActions, 2)

	transfer := user.AvailableActions[0]
	assert.Equal(t, "wxdai_Transfer", transfer.Action)
	assert.True(t, transfer.HasParam("dst"))
	assert.True(t, transfer.HasParam("wad"))
	assert.Empty(t, transfer.Constraints)

	mint := user.AvailableActions[1]
	assert.Equal(t, "ringshub_PersonalMint", mint.Action)
	require.Contains(t, mint.Constraints, "max_mint_amount")
	assert.False(t, mint.HasParam("constraints"), "constraints is not a parameter")
}

func TestParseStructuralErrors(t *testing.T) {
	t.Run("missing action key", func(t *testing.T) {
		_, err := Parse([]byte(`
profiles:
  p:
    available_actions:
      - dst: "0xabc"
`))
		assert.ErrorContains(t, err, "malformed")
	})

	t.Run("available_actions not a list", func(t *testing.T) {
		_, err := Parse([]byte(`
profiles:
  p:
    available_actions: wxdai_Transfer
`))
		assert.ErrorContains(t, err, "malformed")
	})

	t.Run("missing profiles key", func(t *testing.T) {
		_, err := Parse([]byte(`accounts: {}`))
		assert.ErrorContains(t, err, "malformed")
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := Parse([]byte("\t{{"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Profiles, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
