package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vk/abiforge/internal/ctxlog"
	"github.com/vk/abiforge/internal/fsutil"
	"github.com/vk/abiforge/internal/gen"
	"github.com/vk/abiforge/internal/manifest"
	"github.com/vk/abiforge/internal/registry"
)

// Scan builds a fresh Registry from the generated contract modules under
// root. Root may be a protocols directory containing an "interfaces"
// subdirectory, or the interfaces directory itself. Subdirectories whose name
// starts with an underscore are private and skipped.
//
// Modules are scanned concurrently; registry insertion is serialized. A
// failure inside one module is logged and that module skipped.
func Scan(ctx context.Context, root string) (*registry.Registry, error) {
	logger := ctxlog.FromContext(ctx)

	dir := root
	if nested := filepath.Join(root, gen.InterfacesDir); isDir(nested) {
		dir = nested
	}

	contractDirs, err := fsutil.ListContractDirs(dir)
	if err != nil {
		return nil, fmt.Errorf("discovery root %s: %w", dir, err)
	}

	reg := registry.New()
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, name := range contractDirs {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			metas, err := scanModule(filepath.Join(dir, name))
			if err != nil {
				logger.Warn("skipping contract module", "module", name, "error", err)
				return
			}
			mu.Lock()
			for _, meta := range metas {
				reg.Register(meta)
				logger.Debug("registered action", "action", meta.ActionID, "handler", meta.Handler)
			}
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	logger.Info("discovery complete", "modules", len(contractDirs), "actions", reg.Len())
	return reg, nil
}

// scanModule extracts the action metadata for one contract module directory.
func scanModule(dir string) ([]registry.ActionMetadata, error) {
	m, err := manifest.Read(dir)
	if err != nil {
		return nil, err
	}

	handlerPath := filepath.Join(dir, m.Contract+"_handler.go")
	annotated := map[string][]string{}
	if _, statErr := os.Stat(handlerPath); statErr == nil {
		// Annotation scanning is best-effort: a handler file that fails to
		// parse loses its extra constraints but keeps its manifest metadata.
		annotated, err = scanConstraints(handlerPath)
		if err != nil {
			annotated = map[string][]string{}
		}
	} else {
		handlerPath = filepath.Join(dir, manifest.Filename)
	}

	metas := make([]registry.ActionMetadata, 0, len(m.Actions))
	for _, action := range m.Actions {
		constraints := append([]string{}, action.Constraints...)
		for _, c := range annotated[action.Handler] {
			if !contains(constraints, c) {
				constraints = append(constraints, c)
			}
		}
		metas = append(metas, registry.ActionMetadata{
			ActionID:       action.ID,
			Handler:        action.Handler,
			Source:         handlerPath,
			Constraints:    constraints,
			RequiredParams: append([]string{}, action.RequiredParams...),
		})
	}
	return metas, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
