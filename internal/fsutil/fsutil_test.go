package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContractDirs(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"wxdai", "ringshub", "_private", ".hidden"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.json"), []byte("{}"), 0o644))

	dirs, err := ListContractDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"ringshub", "wxdai"}, dirs)
}

func TestListContractDirsMissingRoot(t *testing.T) {
	_, err := ListContractDirs(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
