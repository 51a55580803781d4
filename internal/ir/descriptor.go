package ir

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/abiforge/internal/schema"
)

// Param is one resolved input parameter of a function.
type Param struct {
	// Name is the declared parameter name, possibly empty in the source
	// document.
	Name string
	// SafeName is the resolved identifier used in generated code. Unique
	// within the function and never one of the transaction-metadata names.
	SafeName string
	// WireType is the declared ABI type, verbatim.
	WireType string
	// GoType is the mapped Go type.
	GoType string
}

// FunctionDescriptor is the canonical representation of one function entry.
type FunctionDescriptor struct {
	Name       string
	Inputs     []Param
	Outputs    []string // mapped Go types, declaration order
	Mutability string
}

// IsView reports whether the function is read-only (view or pure). View
// functions take no transaction metadata and never become actions.
func (f FunctionDescriptor) IsView() bool {
	return f.Mutability == schema.MutabilityPure || f.Mutability == schema.MutabilityView
}

// IsPayable reports whether the function accepts a value transfer.
func (f FunctionDescriptor) IsPayable() bool {
	return f.Mutability == schema.MutabilityPayable
}

// CamelName is the function name in canonical CamelCase form, used for the
// generated method, handler unit, and action id.
func (f FunctionDescriptor) CamelName() string {
	return CamelCase(f.Name)
}

// HandlerName is the generated handler unit name for a non-view function.
func (f FunctionDescriptor) HandlerName() string {
	return f.CamelName() + "Handler"
}

// RequiredParams lists the resolved names of the declared inputs, in
// declaration order. The transaction-metadata parameters are not included:
// they are supplied by the execution environment, not by configuration.
func (f FunctionDescriptor) RequiredParams() []string {
	params := make([]string, 0, len(f.Inputs))
	for _, in := range f.Inputs {
		params = append(params, in.SafeName)
	}
	return params
}

// ContractDescriptor is the canonical representation of one contract
// interface: its CamelCase name and all functions in declaration order.
type ContractDescriptor struct {
	Name      string
	Functions []FunctionDescriptor
}

// DirName is the lower-cased output directory (and action-id prefix) for the
// contract.
func (c *ContractDescriptor) DirName() string {
	return strings.ToLower(c.Name)
}

// Actions returns the non-view functions, in declaration order. These are the
// functions that participate in handler and manifest generation.
func (c *ContractDescriptor) Actions() []FunctionDescriptor {
	var actions []FunctionDescriptor
	for _, fn := range c.Functions {
		if !fn.IsView() {
			actions = append(actions, fn)
		}
	}
	return actions
}

// Build constructs the ContractDescriptor for an interface file at abiPath
// containing the given entries, deriving the contract name from the file.
func Build(abiPath string, entries []schema.Entry) *ContractDescriptor {
	stem := strings.TrimSuffix(filepath.Base(abiPath), filepath.Ext(abiPath))
	dir := filepath.Base(filepath.Dir(abiPath))
	return BuildNamed(ContractName(stem, dir), entries)
}

// BuildNamed constructs the ContractDescriptor under an explicit canonical
// name (project files name their contracts). Non-function entries are
// ignored; no function entry is ever dropped.
func BuildNamed(name string, entries []schema.Entry) *ContractDescriptor {
	contract := &ContractDescriptor{Name: name}
	for _, entry := range entries {
		if !entry.IsFunction() {
			continue
		}
		contract.Functions = append(contract.Functions, buildFunction(entry))
	}
	return contract
}

func buildFunction(entry schema.Entry) FunctionDescriptor {
	fn := FunctionDescriptor{
		Name:       entry.Name,
		Mutability: entry.StateMutability,
	}

	// Resolved names must be unique within the function: a renamed input can
	// land on a name another input declares outright (sender alongside
	// senderAccount, an unnamed input alongside a literal param0). The first
	// input in declaration order keeps the resolved name; later ones get a
	// numeric suffix. "ctx" is taken because every generated method binds it.
	seen := map[string]bool{"ctx": true}
	for i, in := range entry.Inputs {
		name := SafeName(in.Name, i)
		for n := 2; seen[name]; n++ {
			name = fmt.Sprintf("%s_%d", SafeName(in.Name, i), n)
		}
		seen[name] = true
		fn.Inputs = append(fn.Inputs, Param{
			Name:     in.Name,
			SafeName: name,
			WireType: in.Type,
			GoType:   GoType(in.Type),
		})
	}

	// Zero-output functions report success as a boolean.
	if len(entry.Outputs) == 0 {
		fn.Outputs = []string{"bool"}
		return fn
	}
	for _, out := range entry.Outputs {
		fn.Outputs = append(fn.Outputs, GoType(out.Type))
	}
	return fn
}
