package scope

import "fmt"

// ASTNode is a named program scope: a namespace, class, struct, interface,
// function, lambda, control block, or anonymous block. Nodes do not carry a
// parent back-reference (spec.md 4.E / 9): walkers that need parent context
// pass it down explicitly, which keeps the tree acyclic.
type ASTNode struct {
	Name           string
	Type           NodeKind
	ParentType     NodeKind
	Package        string
	Path           string
	StartLineCount int
	EndLineCount   int
	Complexity     int
	Children       []*ASTNode
	Decl           []Declaration
}

// NewNode creates a node opened at startLine, belonging to the scope kind
// parentKind, sourced from the given file package/path.
func NewNode(name string, kind, parentKind NodeKind, pkg, path string, startLine int) *ASTNode {
	return &ASTNode{
		Name:           name,
		Type:           kind,
		ParentType:     parentKind,
		Package:        pkg,
		Path:           path,
		StartLineCount: startLine,
		EndLineCount:   startLine,
		Complexity:     1,
	}
}

// AddChild appends child to n's children in textual order.
func (n *ASTNode) AddChild(child *ASTNode) {
	n.Children = append(n.Children, child)
}

// AddDeclaration records a Declaration directly inside n.
func (n *ASTNode) AddDeclaration(d Declaration) {
	n.Decl = append(n.Decl, d)
}

// Show renders a one-line summary of the node:
// (type, name, lines [start-end], complexity). The YAML AST dump
// (report.WriteASTDump) does not use it.
func (n *ASTNode) Show() string {
	return fmt.Sprintf("(%s, %s, lines [%d-%d], complexity %d)",
		n.Type, n.Name, n.StartLineCount, n.EndLineCount, n.Complexity)
}

// Walk calls fn for n and every descendant, pre-order, passing the lexical
// parent of each node (nil for the root).
func (n *ASTNode) Walk(fn func(node, parent *ASTNode)) {
	n.walk(nil, fn)
}

func (n *ASTNode) walk(parent *ASTNode, fn func(node, parent *ASTNode)) {
	fn(n, parent)
	for _, c := range n.Children {
		c.walk(n, fn)
	}
}

// NewRoot creates the process-wide root node, named "Global Namespace" per
// spec.md's ASTNode data model.
func NewRoot() *ASTNode {
	return &ASTNode{
		Name:       "Global Namespace",
		Type:       KindNamespace,
		Complexity: 1,
	}
}
