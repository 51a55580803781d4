package discovery

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// Doc-comment markers recognized on handler declarations.
const (
	constraintMarker = "@constraint"
	constraintsLabel = "constraints:"
)

// handlerSuffix is the naming convention discovery keys on: a top-level type
// whose name ends with it is a handler unit.
const handlerSuffix = "Handler"

// scanConstraints syntactically parses one handler source file and returns,
// per handler unit name, the constraints annotated in its doc comments.
//
// Two conventions are honored: "@constraint <name>" lines on the handler type
// declaration, and "constraints: <name>" lines on the unit's Params method.
func scanConstraints(path string) (map[string][]string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	constraints := make(map[string][]string)

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !strings.HasSuffix(ts.Name.Name, handlerSuffix) {
					continue
				}
				doc := ts.Doc
				if doc == nil {
					doc = d.Doc
				}
				for _, c := range markedLines(doc, constraintMarker) {
					constraints[ts.Name.Name] = append(constraints[ts.Name.Name], c)
				}
			}
		case *ast.FuncDecl:
			if d.Name.Name != "Params" || d.Recv == nil {
				continue
			}
			recv := receiverType(d)
			if !strings.HasSuffix(recv, handlerSuffix) {
				continue
			}
			for _, c := range markedLines(d.Doc, constraintsLabel) {
				constraints[recv] = append(constraints[recv], c)
			}
		}
	}
	return constraints, nil
}

// markedLines returns the trimmed text following marker on each doc line that
// carries it.
func markedLines(doc *ast.CommentGroup, marker string) []string {
	if doc == nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if _, after, found := strings.Cut(line, marker); found {
			if v := strings.TrimSpace(after); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// receiverType returns the bare receiver type name of a method declaration.
func receiverType(fn *ast.FuncDecl) string {
	if len(fn.Recv.List) == 0 {
		return ""
	}
	expr := fn.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}
