package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsZeroValue(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Empty(t, f.Patterns)
}

func TestLoad_DecodesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".xdependrc.yaml")
	content := "patterns:\n  - \"*.h\"\n  - \"*.cpp\"\nmetrics: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.h", "*.cpp"}, f.Patterns)
	assert.True(t, f.Metrics)
	assert.False(t, f.SLOC)
}

func TestMerge_CLIPatternsWinOverConfig(t *testing.T) {
	f := &File{Patterns: []string{"*.h"}}
	assert.Equal(t, []string{"*.cs"}, f.Merge([]string{"*.cs"}))
	assert.Equal(t, []string{"*.h"}, f.Merge(nil))
}
