package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vk/abiforge/internal/ctxlog"
	"github.com/vk/abiforge/internal/gen"
	"github.com/vk/abiforge/internal/ir"
	"github.com/vk/abiforge/internal/project"
	"github.com/vk/abiforge/internal/schema"
)

// target is one contract queued for generation.
type target struct {
	name    string // canonical name, empty to derive from the path
	abiPath string
}

// runGenerate executes one generation run: every target contract renders and
// writes into its own output subdirectory, concurrently. A failure in one
// contract never touches another, but any failure makes the run fail.
func (a *App) runGenerate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	targets, root, templatesDir, err := a.generationPlan()
	if err != nil {
		return err
	}

	renderer, err := gen.NewRenderer(templatesDir)
	if err != nil {
		return err
	}
	generator := gen.NewGenerator(renderer, root)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
	)
	for _, tgt := range targets {
		wg.Add(1)
		go func(tgt target) {
			defer wg.Done()
			if err := a.generateOne(ctx, generator, tgt); err != nil {
				logger.Error("contract generation failed", "contract", tgt.abiPath, "error", err)
				mu.Lock()
				failed = append(failed, tgt.abiPath)
				mu.Unlock()
			}
		}(tgt)
	}
	wg.Wait()

	if len(failed) > 0 {
		return fmt.Errorf("generation failed for: %s", strings.Join(failed, ", "))
	}
	logger.Info("generation complete", "contracts", len(targets), "root", root)
	return nil
}

// generationPlan resolves the run's targets from either the single interface
// file or the project configuration.
func (a *App) generationPlan() ([]target, string, string, error) {
	if a.config.ProjectPath == "" {
		root := a.config.Root
		if root == "" {
			root = "."
		}
		return []target{{abiPath: a.config.ABIPath}}, root, a.config.TemplatesDir, nil
	}

	proj, err := project.Load(a.config.ProjectPath)
	if err != nil {
		return nil, "", "", err
	}
	root := a.config.Root
	if root == "" {
		root = proj.Root
	}
	templatesDir := a.config.TemplatesDir
	if templatesDir == "" {
		templatesDir = proj.Templates
	}

	targets := make([]target, 0, len(proj.Contracts))
	for _, c := range proj.Contracts {
		targets = append(targets, target{name: c.Name, abiPath: c.ABI})
	}
	return targets, root, templatesDir, nil
}

func (a *App) generateOne(ctx context.Context, generator *gen.Generator, tgt target) error {
	entries, err := schema.Load(tgt.abiPath)
	if err != nil {
		return err
	}

	var contract *ir.ContractDescriptor
	if tgt.name != "" {
		contract = ir.BuildNamed(tgt.name, entries)
	} else {
		contract = ir.Build(tgt.abiPath, entries)
	}

	return generator.Generate(ctx, contract, tgt.abiPath)
}
