package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/viant/xdepend/depend"
	"github.com/viant/xdepend/scope"
)

// WriteDependencyTable renders one "file -> [dep1, dep2, ...]" record per
// file, in file-discovery order; each dependency set is sorted ascending
// by path (spec.md 6). Files with no recorded dependencies still print,
// mapping to an empty list.
func WriteDependencyTable(w io.Writer, files []scope.SourceFile, table *depend.Table) {
	for _, f := range files {
		deps := table.DependenciesOf(f.Name)
		fmt.Fprintf(w, "%s -> [%s]\n", f.Name, strings.Join(deps, ", "))
	}
}
