package gen

import (
	"context"
	"go/format"
	"os"
	"path/filepath"

	"github.com/vk/abiforge/internal/ctxlog"
)

// WriteGoFile persists rendered Go source at path, applying a best-effort
// gofmt pass first. A formatting failure is logged and the unformatted text
// is written anyway: a readable artifact beats no artifact.
func WriteGoFile(ctx context.Context, path string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("formatting failed, writing unformatted output",
			"path", path, "error", err)
		formatted = src
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, formatted, 0o644)
}
