package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xdepend/scope"
)

func TestWalk_ComplexityAndFiltering(t *testing.T) {
	root := scope.NewRoot()
	fn := scope.NewNode("f", scope.KindFunction, scope.KindNamespace, "f.cpp", "", 1)
	ctrl := scope.NewNode("if", scope.KindControl, scope.KindFunction, "f.cpp", "", 2)
	anon := scope.NewNode("", scope.KindAnonymous, scope.KindControl, "f.cpp", "", 3)
	ctrl.AddChild(anon)
	fn.AddChild(ctrl)
	root.AddChild(fn)
	fn.EndLineCount = 4

	rows := Walk(root)

	require.Len(t, rows, 1) // only "f" is reportable; control/anonymous are not
	assert.Equal(t, "f", rows[0].Name)
	assert.Equal(t, 3, rows[0].Complexity) // f + if + anonymous
}

func TestSort_StemAscendingExtensionDescending(t *testing.T) {
	rows := []Row{
		{Package: "A.cpp", Name: "f", StartLine: 1},
		{Package: "A.h", Name: "g", StartLine: 1},
		{Package: "B.h", Name: "h", StartLine: 1},
	}
	Sort(rows)

	var order []string
	for _, r := range rows {
		order = append(order, r.Package)
	}
	assert.Equal(t, []string{"A.h", "A.cpp", "B.h"}, order)
}

func TestSort_StartLineAscendingWithinSameFile(t *testing.T) {
	rows := []Row{
		{Package: "A.cpp", Name: "second", StartLine: 10},
		{Package: "A.cpp", Name: "first", StartLine: 2},
	}
	Sort(rows)
	assert.Equal(t, "first", rows[0].Name)
	assert.Equal(t, "second", rows[1].Name)
}
