package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/abiforge/internal/registry"
)

func TestWriteCatalogue(t *testing.T) {
	reg := registry.New()
	reg.Register(registry.ActionMetadata{ActionID: "wxdai_Transfer", Handler: "TransferHandler"})
	reg.Register(registry.ActionMetadata{ActionID: "ringshub_PersonalMint", Handler: "PersonalMintHandler"})
	reg.Register(registry.ActionMetadata{ActionID: "wxdai_Deposit", Handler: "DepositHandler"})

	renderer, err := NewRenderer("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "actions_catalogue.go")
	require.NoError(t, renderer.WriteCatalogue(context.Background(), path, "actions", reg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "package actions")
	// gofmt aligns the const block, so match name and value separately.
	for _, want := range []string{
		"ActionRingshubPersonalMint", `"ringshub_PersonalMint"`,
		"ActionWxdaiDeposit", `"wxdai_Deposit"`,
		"ActionWxdaiTransfer", `"wxdai_Transfer"`,
	} {
		assert.Contains(t, text, want)
	}

	// Entries are sorted by action id.
	assert.Less(t, strings.Index(text, "ringshub_PersonalMint"), strings.Index(text, "wxdai_Deposit"))
	assert.Less(t, strings.Index(text, "wxdai_Deposit"), strings.Index(text, "wxdai_Transfer"))
}

func TestWriteCatalogueEmptyRegistry(t *testing.T) {
	renderer, err := NewRenderer("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "actions_catalogue.go")
	require.NoError(t, renderer.WriteCatalogue(context.Background(), path, "actions", registry.New()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "var AllActions = []ActionType{}")
}

func TestConstName(t *testing.T) {
	assert.Equal(t, "WxdaiTransfer", constName("wxdai_Transfer"))
	assert.Equal(t, "RingshubPersonalMint", constName("ringshub_PersonalMint"))
}
