// Package registry holds the in-memory mapping of action identifiers to
// their metadata for one discovery run.
//
// A Registry is an explicit value, built once by the discovery scanner and
// read-only afterwards. A fresh discovery run builds a fresh Registry and the
// caller swaps the whole value, so no reader ever observes a partial rebuild.
package registry

import "sort"

// ActionMetadata describes one discovered action.
type ActionMetadata struct {
	// ActionID is the globally unique action identifier,
	// <contractDir>_<FunctionCamel>.
	ActionID string
	// Handler is the generated handler unit name (TransferHandler).
	Handler string
	// Source is the path of the artifact the metadata was extracted from.
	Source string
	// Constraints are the constraint names the handler declares.
	Constraints []string
	// RequiredParams are the parameter names configuration must supply.
	RequiredParams []string
}

// HasConstraint reports whether the handler declares the named constraint.
func (m *ActionMetadata) HasConstraint(name string) bool {
	for _, c := range m.Constraints {
		if c == name {
			return true
		}
	}
	return false
}

// Registry maps action ids to metadata.
type Registry struct {
	actions map[string]ActionMetadata
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{actions: make(map[string]ActionMetadata)}
}

// Register inserts metadata, overwriting any previous entry with the same id.
func (r *Registry) Register(meta ActionMetadata) {
	r.actions[meta.ActionID] = meta
}

// Get returns the metadata for an action id.
func (r *Registry) Get(actionID string) (ActionMetadata, bool) {
	meta, ok := r.actions[actionID]
	return meta, ok
}

// All returns the full mapping. Callers must not mutate it.
func (r *Registry) All() map[string]ActionMetadata {
	return r.actions
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	return len(r.actions)
}

// IDs returns all action ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
