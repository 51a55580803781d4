package gen

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/abiforge/internal/ctxlog"
	"github.com/vk/abiforge/internal/ir"
	"github.com/vk/abiforge/internal/manifest"
)

// InterfacesDir is the subdirectory of the project root that receives
// generated contract modules, one directory per contract.
const InterfacesDir = "interfaces"

// Generator produces all artifacts for contracts under one project root.
type Generator struct {
	renderer *Renderer
	root     string
}

// NewGenerator returns a Generator writing under root.
func NewGenerator(renderer *Renderer, root string) *Generator {
	return &Generator{renderer: renderer, root: root}
}

// OutputDir is the directory that receives one contract's artifacts.
func (g *Generator) OutputDir(contract *ir.ContractDescriptor) string {
	return filepath.Join(g.root, InterfacesDir, contract.DirName())
}

// Generate renders and writes the three artifacts for one contract: client,
// handler, and action manifest. A rendering failure aborts this contract only;
// the caller decides what it means for the run.
func (g *Generator) Generate(ctx context.Context, contract *ir.ContractDescriptor, source string) error {
	logger := ctxlog.FromContext(ctx)
	dir := g.OutputDir(contract)

	client, err := g.renderer.RenderClient(contract, source)
	if err != nil {
		return fmt.Errorf("contract %s: %w", contract.Name, err)
	}
	handler, err := g.renderer.RenderHandler(contract, source)
	if err != nil {
		return fmt.Errorf("contract %s: %w", contract.Name, err)
	}

	clientPath := filepath.Join(dir, contract.DirName()+"_client.go")
	if err := WriteGoFile(ctx, clientPath, client); err != nil {
		return fmt.Errorf("contract %s: %w", contract.Name, err)
	}
	logger.Info("generated artifact", "path", clientPath)

	handlerPath := filepath.Join(dir, contract.DirName()+"_handler.go")
	if err := WriteGoFile(ctx, handlerPath, handler); err != nil {
		return fmt.Errorf("contract %s: %w", contract.Name, err)
	}
	logger.Info("generated artifact", "path", handlerPath)

	m := BuildManifest(contract)
	if err := manifest.Write(dir, m); err != nil {
		return fmt.Errorf("contract %s: %w", contract.Name, err)
	}
	logger.Info("generated artifact", "path", filepath.Join(dir, manifest.Filename), "actions", len(m.Actions))

	return nil
}

// BuildManifest computes the structured action manifest directly from the
// descriptor, in declaration order. Generated handlers declare no
// constraints; hand-annotated ones add theirs via doc-comment markers picked
// up at discovery time.
func BuildManifest(contract *ir.ContractDescriptor) *manifest.Manifest {
	m := &manifest.Manifest{Contract: contract.DirName()}
	for _, fn := range contract.Actions() {
		m.Actions = append(m.Actions, manifest.Action{
			ID:             contract.DirName() + "_" + fn.CamelName(),
			Handler:        fn.HandlerName(),
			Constraints:    []string{},
			RequiredParams: fn.RequiredParams(),
		})
	}
	return m
}
