// Package config loads the optional .xdependrc.yaml default-options file
// (SPEC_FULL.md's ambient configuration layer), mirroring the teacher's
// struct-based config idiom while using a real marshalling library for the
// on-disk form.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// File is the decoded shape of .xdependrc.yaml. Every field is optional;
// CLI flags always override whatever this file sets.
type File struct {
	Patterns []string `yaml:"patterns"`
	Metrics  bool     `yaml:"metrics"`
	SLOC     bool     `yaml:"sloc"`
	AST      bool     `yaml:"ast"`
	Result   bool     `yaml:"result"`
	Demo     bool     `yaml:"demo"`
	Debug    bool     `yaml:"debug"`
	ToFile   bool     `yaml:"toFile"`
}

// Load reads and decodes path. A missing file is not an error: it returns
// a zero-value File so callers fall back entirely to CLI flags.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Merge overlays CLI-supplied patterns on top of the config file's
// defaults: CLI patterns, if any, win outright.
func (f *File) Merge(cliPatterns []string) []string {
	if len(cliPatterns) > 0 {
		return cliPatterns
	}
	return f.Patterns
}
