// Package manifest defines the structured per-contract action manifest that
// generation writes alongside each handler artifact and discovery reads back.
//
// The manifest exists so that discovery never has to re-derive metadata by
// introspecting generated source: everything the registry needs (action ids,
// handler unit names, constraints, required parameters) is stated explicitly,
// computed at generation time from the descriptors the renderer already held.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Filename is the conventional manifest file name inside a contract's
// generated directory.
const Filename = "actions.json"

// Action describes one generated handler unit.
type Action struct {
	ID             string   `json:"id"`
	Handler        string   `json:"handler"`
	Constraints    []string `json:"constraints"`
	RequiredParams []string `json:"required_params"`
}

// Manifest enumerates a contract's handler units in declaration order.
type Manifest struct {
	Contract string   `json:"contract"`
	Actions  []Action `json:"actions"`
}

// Write persists the manifest into dir under the conventional name.
func Write(dir string, m *Manifest) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest for %s: %w", m.Contract, err)
	}
	raw = append(raw, '\n')
	return os.WriteFile(filepath.Join(dir, Filename), raw, 0o644)
}

// Read loads the manifest from dir.
func Read(dir string) (*Manifest, error) {
	raw, err := os.ReadFile(filepath.Join(dir, Filename))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("manifest in %s: %w", dir, err)
	}
	if m.Contract == "" {
		return nil, fmt.Errorf("manifest in %s: missing contract name", dir)
	}
	return &m, nil
}
