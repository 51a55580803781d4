// Package project loads the HCL project configuration that drives batch
// generation: which contract interfaces to generate, where the artifacts go,
// and which template set to use.
package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Contract is one contract interface the project generates code for.
type Contract struct {
	Name string
	ABI  string // interface description path, resolved against the project file
}

// Project is the decoded project configuration.
type Project struct {
	Root      string // project root receiving interfaces/<contract>/
	Templates string // optional template override directory
	Contracts []Contract
}

type varsOnly struct {
	Vars   *varsBlock `hcl:"vars,block"`
	Remain hcl.Body   `hcl:",remain"`
}

type varsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type fileRoot struct {
	Vars      *varsBlock       `hcl:"vars,block"`
	Root      string           `hcl:"root,optional"`
	Templates string           `hcl:"templates,optional"`
	Contracts []*contractBlock `hcl:"contract,block"`
}

type contractBlock struct {
	Name string `hcl:"name,label"`
	ABI  string `hcl:"abi"`
}

// Load parses a project file. Expressions in the file may reference values
// from its vars block as vars.<name>. Relative paths are resolved against
// the project file's directory.
func Load(path string) (*Project, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse project file %s: %w", path, diags)
	}

	evalCtx, err := varsContext(file.Body)
	if err != nil {
		return nil, fmt.Errorf("project file %s: %w", path, err)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decode project file %s: %w", path, diags)
	}

	baseDir := filepath.Dir(path)
	proj := &Project{
		Root:      resolve(baseDir, root.Root),
		Templates: resolve(baseDir, root.Templates),
	}
	if root.Root == "" {
		proj.Root = baseDir
	}

	seen := make(map[string]string)
	for _, block := range root.Contracts {
		lower := strings.ToLower(block.Name)
		if prev, dup := seen[lower]; dup {
			// Colliding output directories are a configuration error, not
			// something to resolve automatically.
			return nil, fmt.Errorf("project file %s: contracts %q and %q map to the same output directory %q",
				path, prev, block.Name, lower)
		}
		seen[lower] = block.Name
		proj.Contracts = append(proj.Contracts, Contract{
			Name: block.Name,
			ABI:  resolve(baseDir, block.ABI),
		})
	}
	if len(proj.Contracts) == 0 {
		return nil, fmt.Errorf("project file %s: no contract blocks", path)
	}
	return proj, nil
}

// varsContext evaluates the vars block (if any) into an EvalContext exposing
// its attributes as vars.<name>.
func varsContext(body hcl.Body) (*hcl.EvalContext, error) {
	var head varsOnly
	if diags := gohcl.DecodeBody(body, nil, &head); diags.HasErrors() {
		return nil, diags
	}

	vals := make(map[string]cty.Value)
	if head.Vars != nil {
		attrs, diags := head.Vars.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			vals[name] = val
		}
	}

	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	if len(vals) > 0 {
		evalCtx.Variables["vars"] = cty.ObjectVal(vals)
	}
	return evalCtx, nil
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
