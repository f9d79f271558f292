package depend

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xdepend/scope"
	"github.com/viant/xdepend/typetable"
)

type memOpener map[string]string

func (m memOpener) Open(path string) (io.ReadCloser, error) {
	content, ok := m[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func TestResolve_CrossFileReference(t *testing.T) {
	// S2 — Cross-file reference.
	opener := memOpener{
		"/src/B.h":   "class B { } ;",
		"/src/C.cpp": "B b ;",
	}
	files := []scope.SourceFile{
		scope.NewSourceFile("/src/B.h"),
		scope.NewSourceFile("/src/C.cpp"),
	}

	types, _ := typetable.Build(buildRootFor(t, "B", scope.KindClass, "B.h"))

	table, diags := Resolve(files, opener, types)
	assert.Empty(t, diags)
	assert.Equal(t, []string{"B.h"}, table.DependenciesOf("C.cpp"))
	assert.Empty(t, table.DependenciesOf("B.h"))
}

func TestResolve_SelfExclusion(t *testing.T) {
	// S3 — Self-exclusion.
	opener := memOpener{
		"/src/D.cpp": "class D { } ; D d ;",
	}
	files := []scope.SourceFile{scope.NewSourceFile("/src/D.cpp")}

	types, _ := typetable.Build(buildRootFor(t, "D", scope.KindClass, "D.cpp"))

	table, diags := Resolve(files, opener, types)
	assert.Empty(t, diags)
	assert.Empty(t, table.DependenciesOf("D.cpp"))
}

func TestResolve_UnreadableFileSkipped(t *testing.T) {
	opener := memOpener{}
	files := []scope.SourceFile{scope.NewSourceFile("/src/Missing.cpp")}
	types, _ := typetable.Build(buildRootFor(t, "X", scope.KindClass, "X.h"))

	table, diags := Resolve(files, opener, types)
	require.Len(t, diags, 1)
	assert.Empty(t, table.DependenciesOf("Missing.cpp"))
}

func buildRootFor(t *testing.T, name string, kind scope.NodeKind, file string) *scope.ASTNode {
	t.Helper()
	root := scope.NewRoot()
	root.AddChild(scope.NewNode(name, kind, scope.KindNamespace, file, "", 1))
	return root
}
