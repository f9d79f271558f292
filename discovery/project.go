package discovery

import (
	"os"
	"path/filepath"
)

// projectMarkers are the root-marker files the detector looks for, chosen
// for the C++/C# domain in place of the teacher's go.mod/pom.xml/etc. set.
var projectMarkers = []string{
	"CMakeLists.txt",
	".git",
}

// globMarkers are markers matched by extension rather than exact name.
var globMarkers = []string{"*.sln", "*.vcxproj", "*.csproj"}

// Project describes the repository root detected above the analyzed
// directory, used only for an informational line on the result sink; it
// never influences file discovery or parsing.
type Project struct {
	RootPath string
	Marker   string
}

// DetectProject searches upward from dir for the first matching marker,
// returning a zero-value Project if none is found by the filesystem root.
func DetectProject(dir string) Project {
	cur := dir
	for {
		if m := findMarker(cur); m != "" {
			return Project{RootPath: cur, Marker: m}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return Project{}
		}
		cur = parent
	}
}

func findMarker(dir string) string {
	for _, marker := range projectMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return marker
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, pat := range globMarkers {
			if ok, _ := filepath.Match(pat, e.Name()); ok {
				return e.Name()
			}
		}
	}
	return ""
}
