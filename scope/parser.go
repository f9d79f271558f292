package scope

import (
	"io"
	"path/filepath"
	"strings"
)

// SourceFile is a single discovered input file, as produced by the
// discovery driver (component I).
type SourceFile struct {
	Path string // full path, as returned by discovery
	Name string // basename
	Dir  string // containing directory
	Ext  string // lowercased extension, including the leading dot
}

// IsHeader reports whether the file is a C/C++ header, which must be
// parsed before any implementation file (spec.md 4.C, 5).
func (f SourceFile) IsHeader() bool {
	switch f.Ext {
	case ".h", ".hpp", ".hh", ".hxx":
		return true
	}
	return false
}

// Open opens a file for reading. Wraps whatever opening strategy the
// caller supplies (disk, afs download, etc.) behind a small interface so
// Parser does not depend on any particular storage layer.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// Parser drives the Tokenizer/Collector/rule-engine pipeline (components
// A through E) over a corpus of SourceFiles into a single shared
// Repository, honoring the headers-before-implementations ordering that
// out-of-line C++ member relocation depends on (spec.md 4.C, 5).
type Parser struct {
	Repo   *Repository
	Opener Opener
}

// NewParser creates a Parser writing into a fresh Repository.
func NewParser(opener Opener) *Parser {
	return &Parser{Repo: NewRepository(), Opener: opener}
}

// ParseAll parses every file in files, headers first then implementations,
// each group in the order given. IoErrors are recovered per file (the file
// is skipped, a diagnostic recorded) so the rest of the corpus still
// parses.
func (p *Parser) ParseAll(files []SourceFile) {
	var headers, impls []SourceFile
	for _, f := range files {
		if f.IsHeader() {
			headers = append(headers, f)
		} else {
			impls = append(impls, f)
		}
	}
	for _, f := range headers {
		p.parseFile(f)
	}
	for _, f := range impls {
		p.parseFile(f)
	}
}

func (p *Parser) parseFile(f SourceFile) {
	rc, err := p.Opener.Open(f.Path)
	if err != nil {
		p.Repo.Diagnose(&IoError{Path: f.Name, Err: err})
		return
	}
	defer rc.Close()

	p.Repo.CurrentFile = f.Name
	p.Repo.CurrentPath = f.Dir
	p.Repo.Language = LanguageFor(f.Ext)
	p.Repo.Reset()

	tz := NewTokenizer(rc)
	col := NewCollector(tz)
	for col.HasMore() {
		se := col.Next()
		before := len(p.Repo.Diagnostics)
		Apply(p.Repo, se)
		if len(p.Repo.Diagnostics) > before {
			if _, ok := p.Repo.Diagnostics[len(p.Repo.Diagnostics)-1].(*InternalError); ok {
				// an unmatched '}' ends this file's parse; the stack is already at the root
				break
			}
		}
	}
	if p.Repo.Depth() > 1 {
		p.Repo.Diagnose(&ParseWarning{
			Path: f.Name,
			Line: tz.CurrentLine(),
			What: "end of file with unclosed scopes",
		})
		p.Repo.Reset()
	}
}

// NewSourceFile builds a SourceFile from a full path.
func NewSourceFile(path string) SourceFile {
	name := filepath.Base(path)
	return SourceFile{
		Path: path,
		Name: name,
		Dir:  filepath.Dir(path),
		Ext:  strings.ToLower(filepath.Ext(name)),
	}
}
