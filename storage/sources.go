package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListSources returns the names of the regular files in dir, sorted.
// Hidden files are skipped; unsupported extensions are listed anyway and
// rejected when loaded.
func ListSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("sources: list %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ResolveSource joins name onto dir, refusing names that escape dir.
func ResolveSource(dir, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("sources: invalid file name %q", name)
	}
	return filepath.Join(dir, name), nil
}
