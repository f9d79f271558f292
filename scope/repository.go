package scope

// Repository is the process-wide parsing state described in spec.md 4.D: a
// single global AST root, an explicit scope stack (top = currently open
// scope), the active language/file, and accumulated diagnostics. It is
// mutated by exactly one writer — the active parsing pass — and is
// read-only to every analysis that runs after parsing completes (spec.md 5).
type Repository struct {
	Root        *ASTNode
	stack       []*ASTNode
	accessStack []Access
	// relocateTo is stack-aligned: a non-nil entry overrides which node an
	// about-to-be-popped scope attaches to, used by the C++ out-of-line
	// member relocation rule (spec.md 4.C) instead of the lexical parent.
	relocateTo []*ASTNode

	Language    Language
	CurrentFile string // basename of the file currently being parsed
	CurrentPath string // directory of that file

	Diagnostics []error
	seenDiags   map[uint64]bool
}

// NewRepository creates a Repository with only the root scope on the stack.
func NewRepository() *Repository {
	root := NewRoot()
	return &Repository{
		Root:        root,
		stack:       []*ASTNode{root},
		accessStack: []Access{Public},
		relocateTo:  []*ASTNode{nil},
	}
}

// Current returns the top of the scope stack (never nil: the root is always
// present).
func (r *Repository) Current() *ASTNode {
	return r.stack[len(r.stack)-1]
}

// Depth reports how many scopes are currently open, root included.
func (r *Repository) Depth() int { return len(r.stack) }

// Push opens a new scope as a child of the current top, named by node, and
// makes it the new top.
func (r *Repository) Push(node *ASTNode) {
	r.stack = append(r.stack, node)
	r.accessStack = append(r.accessStack, DefaultAccess(node.Type))
	r.relocateTo = append(r.relocateTo, nil)
}

// PushRelocated opens node like Push, but records that it must attach to
// target (rather than to its lexical parent) once popped.
func (r *Repository) PushRelocated(node *ASTNode, target *ASTNode) {
	r.stack = append(r.stack, node)
	r.accessStack = append(r.accessStack, DefaultAccess(node.Type))
	r.relocateTo = append(r.relocateTo, target)
}

// Pop closes the current top scope, records its end line, attaches it to
// its lexical parent's children (or its relocation target, if one was
// recorded by PushRelocated), and returns it. Popping the root is an
// InternalError (unmatched '}') and is refused; callers should check Depth
// first via CanPop.
func (r *Repository) Pop(endLine int) *ASTNode {
	if len(r.stack) <= 1 {
		return nil
	}
	node := r.stack[len(r.stack)-1]
	node.EndLineCount = endLine
	target := r.relocateTo[len(r.relocateTo)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.accessStack = r.accessStack[:len(r.accessStack)-1]
	r.relocateTo = r.relocateTo[:len(r.relocateTo)-1]
	parent := target
	if parent == nil {
		parent = r.stack[len(r.stack)-1]
	}
	parent.AddChild(node)
	recomputeComplexity(parent)
	return node
}

// CanPop reports whether a standalone '}' would close a real scope (i.e.
// the stack holds more than just the root).
func (r *Repository) CanPop() bool { return len(r.stack) > 1 }

// CurrentAccess returns the access mode in effect for the current scope.
func (r *Repository) CurrentAccess() Access {
	return r.accessStack[len(r.accessStack)-1]
}

// SetAccess updates the access mode of the current class/struct scope, in
// response to a semi-expression that begins with "public:"/"protected:"/
// "private:".
func (r *Repository) SetAccess(a Access) {
	r.accessStack[len(r.accessStack)-1] = a
}

// Reset restores the scope stack to just the root, per spec.md 7's
// InternalError recovery policy: the current file's parse stops but the AST
// built so far remains usable.
func (r *Repository) Reset() {
	r.stack = r.stack[:1]
	r.accessStack = r.accessStack[:1]
	r.relocateTo = r.relocateTo[:1]
}

// Diagnose records a non-fatal diagnostic (ParseWarning/InternalError),
// deduplicating by a content hash of its location and message so a
// re-run of the same corpus yields byte-identical diagnostic output
// (spec.md 8's idempotence property) instead of accumulating duplicates
// across repeated calls.
func (r *Repository) Diagnose(err error) {
	path, line, what := diagnosticFields(err)
	key := hashDiagnostic(path, line, what)
	if r.seenDiags == nil {
		r.seenDiags = map[uint64]bool{}
	}
	if r.seenDiags[key] {
		return
	}
	r.seenDiags[key] = true
	r.Diagnostics = append(r.Diagnostics, err)
}

func diagnosticFields(err error) (path string, line int, what string) {
	switch e := err.(type) {
	case *ParseWarning:
		return e.Path, e.Line, e.What
	case *InternalError:
		return e.Path, e.Line, e.What
	case *IoError:
		return e.Path, 0, e.Error()
	default:
		return "", 0, err.Error()
	}
}

// recomputeComplexity recomputes a single node's complexity from its direct
// children. The full bottom-up recomputation across the whole tree is done
// once by the metrics walker (component F); this incremental update just
// keeps Pop's immediate parent consistent enough for partial/intermediate
// inspection (e.g. mid-parse diagnostics).
func recomputeComplexity(n *ASTNode) {
	sum := 1
	for _, c := range n.Children {
		sum += c.Complexity
	}
	n.Complexity = sum
}

// FindScopeChild searches n's direct children for one with the given name
// and kind.
func FindScopeChild(n *ASTNode, name string, kinds ...NodeKind) *ASTNode {
	for _, c := range n.Children {
		if c.Name != name {
			continue
		}
		if len(kinds) == 0 {
			return c
		}
		for _, k := range kinds {
			if c.Type == k {
				return c
			}
		}
	}
	return nil
}

// ResolveQualifiedScope walks a dotted/"::"-separated qualified name
// left-to-right from root, used by the C++ member out-of-line relocation
// rule (spec.md 4.C) to find the existing class/struct/namespace node a
// method body belongs to.
func ResolveQualifiedScope(root *ASTNode, parts []string) *ASTNode {
	cur := root
	for _, p := range parts {
		next := FindScopeChild(cur, p, KindClass, KindStruct, KindNamespace, KindInterface)
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
