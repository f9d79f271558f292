package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_PushPopAttachesToLexicalParent(t *testing.T) {
	repo := NewRepository()
	ns := NewNode("N", KindNamespace, KindNamespace, "f.h", "", 1)
	repo.Push(ns)
	fn := NewNode("f", KindFunction, KindNamespace, "f.h", "", 2)
	repo.Push(fn)

	popped := repo.Pop(3)
	assert.Same(t, fn, popped)
	assert.Equal(t, 3, fn.EndLineCount)
	require.Len(t, ns.Children, 1)
	assert.Same(t, fn, ns.Children[0])

	repo.Pop(4)
	require.Len(t, repo.Root.Children, 1)
	assert.Same(t, ns, repo.Root.Children[0])
}

func TestRepository_PopRootRefused(t *testing.T) {
	repo := NewRepository()
	assert.False(t, repo.CanPop())
	assert.Nil(t, repo.Pop(1))
	assert.Equal(t, 1, repo.Depth())
}

func TestRepository_PushRelocatedAttachesToTarget(t *testing.T) {
	repo := NewRepository()
	class := NewNode("A", KindClass, KindNamespace, "A.h", "", 1)
	repo.Push(class)
	repo.Pop(1) // A now a child of root, stack back to [root]

	method := NewNode("f", KindFunction, KindClass, "A.cpp", "", 5)
	repo.PushRelocated(method, class)
	repo.Pop(6)

	require.Len(t, class.Children, 1)
	assert.Same(t, method, class.Children[0])
	assert.Empty(t, repo.Root.Children[0].Children[0].Children)
}

func TestResolveQualifiedScope(t *testing.T) {
	root := NewRoot()
	outer := NewNode("A", KindNamespace, KindNamespace, "x.h", "", 1)
	inner := NewNode("B", KindClass, KindNamespace, "x.h", "", 2)
	outer.AddChild(inner)
	root.AddChild(outer)

	found := ResolveQualifiedScope(root, []string{"A", "B"})
	assert.Same(t, inner, found)

	assert.Nil(t, ResolveQualifiedScope(root, []string{"A", "Missing"}))
}
