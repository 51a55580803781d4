package gen

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/vk/abiforge/internal/ir"
)

//go:embed templates/*.go.tmpl
var builtinTemplates embed.FS

// templateFuncs are the helpers available inside generation templates.
var templateFuncs = template.FuncMap{
	"lower":    strings.ToLower,
	"camel":    ir.CamelCase,
	"zero":     zeroValue,
	"accessor": paramAccessor,
}

// Renderer turns descriptors into artifact text. The zero value is not
// usable; use NewRenderer.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the built-in templates, or the *.go.tmpl files under
// templatesDir when it is non-empty, so projects can override the generated
// shape without rebuilding the tool.
func NewRenderer(templatesDir string) (*Renderer, error) {
	tmpl := template.New("gen").Funcs(templateFuncs)

	var err error
	if templatesDir != "" {
		tmpl, err = tmpl.ParseGlob(filepath.Join(templatesDir, "*.go.tmpl"))
	} else {
		tmpl, err = tmpl.ParseFS(builtinTemplates, "templates/*.go.tmpl")
	}
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// contractModel is the view model shared by the client and handler templates.
type contractModel struct {
	Contract *ir.ContractDescriptor
	Source   string
}

// NeedsBig reports whether the client artifact references math/big: any
// mutating function does (the value parameter), as does any view signature
// carrying an integer type.
func (m contractModel) NeedsBig() bool {
	for _, fn := range m.Contract.Functions {
		if !fn.IsView() {
			return true
		}
		for _, in := range fn.Inputs {
			if strings.Contains(in.GoType, "*big.Int") {
				return true
			}
		}
		for _, out := range fn.Outputs {
			if strings.Contains(out, "*big.Int") {
				return true
			}
		}
	}
	return false
}

// Actions returns the contract's non-view functions.
func (m contractModel) Actions() []ir.FunctionDescriptor {
	return m.Contract.Actions()
}

// RenderClient renders the client artifact for a contract.
func (r *Renderer) RenderClient(contract *ir.ContractDescriptor, source string) ([]byte, error) {
	return r.render("client.go.tmpl", contractModel{Contract: contract, Source: source})
}

// RenderHandler renders the handler artifact: one unit per non-view function.
func (r *Renderer) RenderHandler(contract *ir.ContractDescriptor, source string) ([]byte, error) {
	return r.render("handler.go.tmpl", contractModel{Contract: contract, Source: source})
}

func (r *Renderer) render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// zeroValue is the Go zero-value expression for a mapped type, used in
// generated error returns.
func zeroValue(goType string) string {
	switch goType {
	case "string":
		return `""`
	case "bool":
		return "false"
	default:
		// Pointers, slices, and 'any' all zero to nil.
		return "nil"
	}
}

// paramAccessor is the expression a generated handler uses to pull one
// declared input out of its parameter map.
func paramAccessor(p ir.Param) string {
	switch p.GoType {
	case "string":
		return fmt.Sprintf("params.Str(%q)", p.SafeName)
	case "*big.Int":
		return fmt.Sprintf("params.Big(%q)", p.SafeName)
	case "[]byte":
		return fmt.Sprintf("params.Bytes(%q)", p.SafeName)
	case "bool":
		return fmt.Sprintf("params.Bool(%q)", p.SafeName)
	case "any":
		return fmt.Sprintf("params.Any(%q)", p.SafeName)
	default:
		return fmt.Sprintf("chain.As[%s](params, %q)", p.GoType, p.SafeName)
	}
}
