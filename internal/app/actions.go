package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vk/abiforge/internal/ctxlog"
	"github.com/vk/abiforge/internal/discovery"
	"github.com/vk/abiforge/internal/gen"
	"github.com/vk/abiforge/internal/profiles"
)

// ErrValidationFailed is the terminal outcome of an actions run whose profile
// document accumulated validation errors.
var ErrValidationFailed = errors.New("profile validation failed")

// runActions executes one discovery run: scan the generated contract modules,
// emit the action catalogue, and validate the profile document when one was
// supplied.
func (a *App) runActions(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	reg, err := discovery.Scan(ctx, a.config.ProtocolsDir)
	if err != nil {
		return err
	}

	cataloguePath := a.config.CataloguePath
	if cataloguePath == "" {
		cataloguePath = filepath.Join(a.config.ProtocolsDir, "actions_catalogue.go")
	}
	renderer, err := gen.NewRenderer(a.config.TemplatesDir)
	if err != nil {
		return err
	}
	if err := renderer.WriteCatalogue(ctx, cataloguePath, a.config.CataloguePkg, reg); err != nil {
		return err
	}
	logger.Info("catalogue written", "path", cataloguePath, "actions", reg.Len())

	if a.config.ConfigPath == "" {
		return nil
	}

	doc, err := profiles.Load(a.config.ConfigPath)
	if err != nil {
		return err
	}
	report := profiles.Validate(reg, doc)
	if report.Empty() {
		fmt.Fprintf(a.outW, "profile configuration valid: %d profiles checked\n", len(doc.Profiles))
		return nil
	}

	fmt.Fprint(a.outW, report.String())
	fmt.Fprintf(a.outW, "%d validation errors\n", report.ErrorCount())
	return ErrValidationFailed
}
