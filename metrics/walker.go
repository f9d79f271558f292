// Package metrics computes per-scope complexity and produces the flat,
// sorted listing consumed by the metrics report (component F).
package metrics

import (
	"sort"
	"strings"

	"github.com/viant/xdepend/scope"
)

// Row is one reportable line of the metrics table: a single ASTNode
// together with the file it came from.
type Row struct {
	Package    string
	Type       scope.NodeKind
	Name       string
	StartLine  int
	Size       int // line count, end - start + 1
	Complexity int
}

// reportableKinds is the set of scope kinds that appear in the metrics
// table; control blocks and anonymous blocks are counted toward their
// enclosing scope's complexity but never listed on their own line.
var reportableKinds = map[scope.NodeKind]bool{
	scope.KindNamespace: true,
	scope.KindFunction:  true,
	scope.KindClass:     true,
	scope.KindInterface: true,
	scope.KindStruct:    true,
	scope.KindLambda:    true,
}

// Walk recomputes every node's complexity bottom-up (complexity = 1 plus
// the sum of direct children's complexity, spec.md 4.F) and returns the
// flat list of reportable rows.
func Walk(root *scope.ASTNode) []Row {
	recompute(root)
	var rows []Row
	root.Walk(func(n, _ *scope.ASTNode) {
		if n == root || !reportableKinds[n.Type] {
			return
		}
		rows = append(rows, Row{
			Package:    n.Package,
			Type:       n.Type,
			Name:       n.Name,
			StartLine:  n.StartLineCount,
			Size:       n.EndLineCount - n.StartLineCount + 1,
			Complexity: n.Complexity,
		})
	})
	Sort(rows)
	return rows
}

// recompute does a post-order pass, setting each node's Complexity to
// 1 + sum(children.Complexity) (spec.md 4.F's cyclomatic-like metric).
func recompute(n *scope.ASTNode) int {
	sum := 1
	for _, c := range n.Children {
		sum += recompute(c)
	}
	n.Complexity = sum
	return sum
}

// Sort orders rows the way the metrics table groups them: primarily by
// filename stem ascending, then by extension descending (so a header and
// its implementation land adjacent with the header first), then by
// starting line ascending within a file (spec.md 4.F / 6).
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		si, ei := stemExt(rows[i].Package)
		sj, ej := stemExt(rows[j].Package)
		if si != sj {
			return si < sj
		}
		if ei != ej {
			return ei > ej
		}
		return rows[i].StartLine < rows[j].StartLine
	})
}

func stemExt(filename string) (stem, ext string) {
	if idx := strings.LastIndexByte(filename, '.'); idx >= 0 {
		return filename[:idx], filename[idx:]
	}
	return filename, ""
}
