package profiles

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var documentSchema string

// Load reads, structurally validates, and decodes a profile configuration
// document from path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML profile document, checking its shape against the
// embedded JSON schema first so malformed documents fail with structural
// messages instead of half-decoded values.
func Parse(raw []byte) (*Document, error) {
	var generic map[string]any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("profile config: %w", err)
	}

	if err := checkShape(generic); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("profile config: %w", err)
	}
	return &doc, nil
}

func checkShape(doc map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("profile config schema check: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("profile config is malformed: %s", strings.Join(errs, "; "))
}
