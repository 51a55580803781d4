// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"sort"
	"strings"
)

// ListContractDirs returns the names of the immediate subdirectories of root,
// sorted, excluding private directories (leading underscore) and hidden ones.
func ListContractDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}
		dirs = append(dirs, name)
	}

	sort.Strings(dirs)
	return dirs, nil
}
