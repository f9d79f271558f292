package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectProject_FindsCMakeMarker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "CMakeLists.txt"), []byte("project(x)"), 0o644))

	sub := filepath.Join(root, "src", "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	p := DetectProject(sub)
	assert.Equal(t, root, p.RootPath)
	assert.Equal(t, "CMakeLists.txt", p.Marker)
}

func TestDetectProject_FindsSolutionGlobMarker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "App.sln"), []byte(""), 0o644))

	p := DetectProject(root)
	assert.Equal(t, root, p.RootPath)
	assert.Equal(t, "App.sln", p.Marker)
}

func TestDetectProject_NoMarkerFound(t *testing.T) {
	root := t.TempDir()
	p := DetectProject(root)
	assert.Empty(t, p.RootPath)
}
