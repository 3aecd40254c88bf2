package menudef

import (
	"os"
	"path/filepath"
)

// Default file names probed by Discover, in priority order.
var defaultNames = []string{"treemenu.yaml", "treemenu.yml", "treemenu.json", ".treemenu.yaml"}

// Discover finds a menu definition near the current directory, so
// `treemenu` works without -file inside a project that ships one.
func Discover() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return findDefinition(dir)
}

// findDefinition walks up from dir probing the default file names at
// each level. The walk stops at the filesystem root and never climbs
// above the home directory.
func findDefinition(dir string) (string, bool) {
	home, _ := os.UserHomeDir()

	for {
		for _, name := range defaultNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		if home != "" && dir == home {
			break
		}
		dir = parent
	}
	return "", false
}
