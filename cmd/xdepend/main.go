// Command xdepend performs type-based dependency analysis over a corpus of
// C++/C# source files: discover, parse into a shared AST, compute metrics,
// build a type table, resolve file-to-file dependencies, and report.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/xdepend/config"
	"github.com/viant/xdepend/depend"
	"github.com/viant/xdepend/discovery"
	"github.com/viant/xdepend/internal/xerrors"
	"github.com/viant/xdepend/metrics"
	"github.com/viant/xdepend/report"
	"github.com/viant/xdepend/scope"
	"github.com/viant/xdepend/typetable"
)

type options struct {
	root     string
	patterns []string

	metrics bool
	sloc    bool
	ast     bool
	result  bool
	demo    bool
	debug   bool
	toFile  bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseArgs(argv []string) (*options, error) {
	var positional []string
	opts := &options{}

	for _, a := range argv {
		if strings.HasPrefix(a, "/") {
			applyFlag(opts, a[1:])
			continue
		}
		positional = append(positional, a)
	}

	if len(positional) < 1 {
		return nil, &xerrors.UsageError{Message: "root directory is required"}
	}
	if len(positional) < 2 {
		return nil, &xerrors.UsageError{Message: "at least one file pattern is required"}
	}

	root, err := filepath.Abs(positional[0])
	if err != nil {
		return nil, &xerrors.UsageError{Message: err.Error()}
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, &xerrors.PathError{Path: root}
	}

	opts.root = root
	opts.patterns = positional[1:]

	cfgPath := filepath.Join(root, ".xdependrc.yaml")
	if cfg, err := config.Load(cfgPath); err == nil {
		opts.patterns = cfg.Merge(opts.patterns)
		opts.metrics = opts.metrics || cfg.Metrics
		opts.sloc = opts.sloc || cfg.SLOC
		opts.ast = opts.ast || cfg.AST
		opts.result = opts.result || cfg.Result
		opts.demo = opts.demo || cfg.Demo
		opts.debug = opts.debug || cfg.Debug
		opts.toFile = opts.toFile || cfg.ToFile
	}

	return opts, nil
}

func applyFlag(opts *options, flag string) {
	switch flag {
	case "m":
		opts.metrics = true
	case "s":
		opts.sloc = true
	case "a":
		opts.ast = true
	case "r":
		opts.result = true
	case "d":
		opts.demo = true
	case "b":
		opts.debug = true
	case "f":
		opts.toFile = true
	}
}

func run(opts *options) error {
	ctx := context.Background()

	sinks, err := report.NewSinks(opts.result, opts.demo, opts.debug, opts.toFile, opts.root)
	if err != nil {
		return err
	}
	defer sinks.Close()

	project := discovery.DetectProject(opts.root)
	if sinks.Result != nil && project.RootPath != "" {
		sinks.Result.Info("detected project root", "path", project.RootPath, "marker", project.Marker)
	}

	driver := discovery.New(opts.patterns)
	files, stats, err := driver.Discover(ctx, opts.root)
	if err != nil {
		return err
	}
	if sinks.Result != nil {
		sinks.Result.Info("discovery complete",
			"filesVisited", stats.FilesVisited,
			"dirsVisited", stats.DirsVisited,
			"filesMatched", stats.FilesMatched,
		)
	}

	opener := discovery.NewFileOpener(ctx)

	parser := scope.NewParser(opener)
	parser.ParseAll(files)
	for _, d := range parser.Repo.Diagnostics {
		sinks.Diagnose(d, isDebugDiagnostic(d))
	}

	types, typeDiags := typetable.Build(parser.Repo.Root)
	for _, d := range typeDiags {
		sinks.Diagnose(d, true)
	}

	depTable, depDiags := depend.Resolve(files, opener, types)
	for _, d := range depDiags {
		sinks.Diagnose(d, isDebugDiagnostic(d))
	}

	if opts.metrics {
		rows := metrics.Walk(parser.Repo.Root)
		report.WriteMetricsTable(os.Stdout, rows)
	}
	if opts.sloc {
		report.WriteSLOC(os.Stdout, slocRows(files, parser.Repo.Root))
	}
	if opts.ast {
		if err := report.WriteASTDump(os.Stdout, parser.Repo.Root); err != nil {
			return err
		}
	}
	report.WriteDependencyTable(os.Stdout, files, depTable)

	return nil
}

// isDebugDiagnostic reports whether err belongs on the debug sink
// (ParseWarning, InternalError) rather than the result sink (everything
// else, chiefly IoError), matching spec.md 7's sink assignment.
func isDebugDiagnostic(err error) bool {
	switch err.(type) {
	case *xerrors.ParseWarning, *xerrors.InternalError:
		return true
	default:
		return false
	}
}

// slocRows derives a per-file line count from the largest end line among
// all scopes belonging to each file (nested and relocated ones included); a
// file with no scopes reports 0.
func slocRows(files []scope.SourceFile, root *scope.ASTNode) []report.SLOCRow {
	maxLine := map[string]int{}
	root.Walk(func(n, _ *scope.ASTNode) {
		if n == root {
			return
		}
		if n.EndLineCount > maxLine[n.Package] {
			maxLine[n.Package] = n.EndLineCount
		}
	})
	rows := make([]report.SLOCRow, 0, len(files))
	for _, f := range files {
		rows = append(rows, report.SLOCRow{Package: f.Name, Lines: maxLine[f.Name]})
	}
	return rows
}
