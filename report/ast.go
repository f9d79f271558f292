package report

import (
	"io"

	"github.com/viant/xdepend/scope"
	"gopkg.in/yaml.v3"
)

// astDump mirrors scope.ASTNode for YAML serialization, grouped per file
// the way the teacher's graph.Document grouping presents per-package
// output: one top-level entry per file, each holding its own node tree.
type astDump struct {
	Name       string    `yaml:"name"`
	Type       string    `yaml:"type"`
	Lines      [2]int    `yaml:"lines"`
	Complexity int       `yaml:"complexity"`
	Children   []astDump `yaml:"children,omitempty"`
}

func toDump(n *scope.ASTNode) astDump {
	d := astDump{
		Name:       n.Name,
		Type:       string(n.Type),
		Lines:      [2]int{n.StartLineCount, n.EndLineCount},
		Complexity: n.Complexity,
	}
	for _, c := range n.Children {
		d.Children = append(d.Children, toDump(c))
	}
	return d
}

// fileGroup is one file's top-level scopes, grouped the way documents are
// grouped by path before being flattened for output.
type fileGroup struct {
	File   string    `yaml:"file"`
	Scopes []astDump `yaml:"scopes"`
}

// WriteASTDump renders the whole corpus AST as YAML, grouped by the file
// each top-level (non-root) scope belongs to (the /a option, spec.md 6).
func WriteASTDump(w io.Writer, root *scope.ASTNode) error {
	order := []string{}
	byFile := map[string][]astDump{}
	for _, child := range root.Children {
		if _, ok := byFile[child.Package]; !ok {
			order = append(order, child.Package)
		}
		byFile[child.Package] = append(byFile[child.Package], toDump(child))
	}

	var groups []fileGroup
	for _, f := range order {
		groups = append(groups, fileGroup{File: f, Scopes: byFile[f]})
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(groups)
}
