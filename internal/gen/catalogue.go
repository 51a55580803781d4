package gen

import (
	"context"
	"strings"

	"github.com/vk/abiforge/internal/ir"
	"github.com/vk/abiforge/internal/registry"
)

// catalogueModel feeds the catalogue template.
type catalogueModel struct {
	Package string
	Actions []catalogueEntry
}

type catalogueEntry struct {
	ID        string
	ConstName string
}

// WriteCatalogue renders the action catalogue source file from the registry
// and writes it at path: one constant per discovered action id, sorted.
func (r *Renderer) WriteCatalogue(ctx context.Context, path, pkg string, reg *registry.Registry) error {
	model := catalogueModel{Package: pkg}
	for _, id := range reg.IDs() {
		model.Actions = append(model.Actions, catalogueEntry{
			ID:        id,
			ConstName: constName(id),
		})
	}

	src, err := r.render("catalogue.go.tmpl", model)
	if err != nil {
		return err
	}
	return WriteGoFile(ctx, path, src)
}

// constName turns an action id into an exported identifier:
// wxdai_Transfer -> WxdaiTransfer.
func constName(actionID string) string {
	var b strings.Builder
	for _, part := range strings.Split(actionID, "_") {
		b.WriteString(ir.CamelCase(part))
	}
	return b.String()
}
