package report

import (
	"fmt"
	"io"

	"github.com/viant/xdepend/metrics"
)

// column widths fixed per spec.md 6, right-justified.
const (
	colFile       = 25
	colType       = 12
	colName       = 35
	colStartLine  = 8
	colSize       = 8
	colComplexity = 8
)

// WriteMetricsTable renders rows in the order produced by metrics.Walk,
// repeating the header whenever the file name changes.
func WriteMetricsTable(w io.Writer, rows []metrics.Row) {
	lastFile := ""
	for _, r := range rows {
		if r.Package != lastFile {
			writeMetricsHeader(w)
			lastFile = r.Package
		}
		fmt.Fprintf(w, "%*s%*s%*s%*d%*d%*d\n",
			colFile, r.Package,
			colType, string(r.Type),
			colName, r.Name,
			colStartLine, r.StartLine,
			colSize, r.Size,
			colComplexity, r.Complexity,
		)
	}
}

func writeMetricsHeader(w io.Writer) {
	fmt.Fprintf(w, "%*s%*s%*s%*s%*s%*s\n",
		colFile, "file",
		colType, "type",
		colName, "name",
		colStartLine, "start",
		colSize, "size",
		colComplexity, "complexity",
	)
}

// SLOCRow is a single per-file source-line count (the /s option).
type SLOCRow struct {
	Package string
	Lines   int
}

// WriteSLOC renders one "<file> <lines>" line per entry, in the order
// given.
func WriteSLOC(w io.Writer, rows []SLOCRow) {
	for _, r := range rows {
		fmt.Fprintf(w, "%*s%*d\n", colFile, r.Package, colSize, r.Lines)
	}
}
