// Package typetable builds the type-name to defining-file map consumed by
// the dependency resolver (component G, spec.md 4.G).
package typetable

import (
	"fmt"

	"github.com/viant/xdepend/scope"
)

// namedKinds is the set of scope kinds that introduce a type name by
// virtue of the scope itself (as opposed to a Declaration inside it).
var namedKinds = map[scope.NodeKind]bool{
	scope.KindClass:     true,
	scope.KindStruct:    true,
	scope.KindInterface: true,
}

// Table maps a type name to the file that defines it.
type Table struct {
	byName map[string]string
}

// NewTable creates an empty Table.
func NewTable() *Table { return &Table{byName: map[string]string{}} }

// Lookup returns the defining file for name, and whether it was found.
func (t *Table) Lookup(name string) (string, bool) {
	f, ok := t.byName[name]
	return f, ok
}

// Build walks root, recording every non-anonymous class/struct/interface
// node and every typedef/using/enum Declaration as a type introduction.
// Collisions (the same type name defined in two files) keep the
// last-writer-wins value (AST walk order, i.e. parse order: headers before
// implementation files) and are
// reported as non-fatal diagnostics, never failing the build.
func Build(root *scope.ASTNode) (*Table, []error) {
	t := NewTable()
	var diags []error

	root.Walk(func(n, _ *scope.ASTNode) {
		if namedKinds[n.Type] && n.Name != "" {
			t.record(n.Name, n.Package, &diags)
		}
		for _, d := range n.Decl {
			if name := d.IntroducedTypeName(); name != "" {
				t.record(name, d.Package, &diags)
			}
		}
	})

	return t, diags
}

func (t *Table) record(name, file string, diags *[]error) {
	if prev, ok := t.byName[name]; ok && prev != file {
		*diags = append(*diags, fmt.Errorf(
			"type %q redefined: %s overrides %s", name, file, prev))
	}
	t.byName[name] = file
}
