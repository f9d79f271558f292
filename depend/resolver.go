// Package depend resolves inter-file type dependencies by re-scanning each
// source file's identifiers against the type table (component H, spec.md
// 4.H). Resolution is two-phase: the type table must already be complete
// (every file's scopes parsed) before any file's identifiers are scanned,
// so a dependency on a type defined later in the corpus still resolves.
package depend

import (
	"sort"

	"github.com/viant/xdepend/scope"
	"github.com/viant/xdepend/typetable"
)

// Table is file -> set of files it depends on, keyed by basename (the same
// identity the scope/typetable packages use).
type Table struct {
	edges map[string]map[string]bool
}

// NewTable creates an empty Table.
func NewTable() *Table { return &Table{edges: map[string]map[string]bool{}} }

// Add records that from depends on to. Self-edges are ignored.
func (t *Table) Add(from, to string) {
	if from == to {
		return
	}
	if t.edges[from] == nil {
		t.edges[from] = map[string]bool{}
	}
	t.edges[from][to] = true
}

// DependenciesOf returns the files from depends on, sorted ascending by
// path (spec.md 6's dependency-table output order).
func (t *Table) DependenciesOf(from string) []string {
	set := t.edges[from]
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Resolve re-tokenizes every file and records an edge file -> definingFile
// for every identifier that names a known type and is not a self-reference.
// Files given in file-discovery order; the resulting Table's DependenciesOf
// output is sorted independently of that order. IoErrors are recovered per
// file exactly as during initial parsing.
func Resolve(files []scope.SourceFile, opener scope.Opener, types *typetable.Table) (*Table, []error) {
	t := NewTable()
	var diags []error

	for _, f := range files {
		rc, err := opener.Open(f.Path)
		if err != nil {
			diags = append(diags, &scope.IoError{Path: f.Name, Err: err})
			continue
		}
		toks, err := scope.TokenizeAll(rc)
		rc.Close()
		if err != nil {
			diags = append(diags, &scope.IoError{Path: f.Name, Err: err})
			continue
		}

		seen := map[string]bool{}
		for _, tok := range toks {
			if !tok.IsIdent() {
				continue
			}
			if seen[tok.Lexeme] {
				continue
			}
			seen[tok.Lexeme] = true
			definingFile, ok := types.Lookup(tok.Lexeme)
			if !ok {
				continue
			}
			t.Add(f.Name, definingFile)
		}
	}

	return t, diags
}
