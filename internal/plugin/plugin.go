// Package plugin locates engine extensions on an ordered search path.
package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no search directory contains the plugin.
var ErrNotFound = errors.New("plugin not found")

// SearchPath is an ordered list of directories, searched front to back; the
// first directory containing the named plugin wins, so earlier entries
// shadow later ones.
type SearchPath []string

// Find returns the path of the named plugin, which may be a file or a
// package directory inside one of the search directories.
func (s SearchPath) Find(root, name string) (string, error) {
	for _, dir := range s {
		candidate := filepath.Join(root, dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %d directories)", ErrNotFound, name, len(s))
}

// Dirs returns the search directories that actually exist under root, in
// search order. Missing directories are skipped rather than failing: a
// project typically lists optional plugin locations it may not have checked
// out.
func (s SearchPath) Dirs(root string) []string {
	var dirs []string
	for _, dir := range s {
		full := filepath.Join(root, dir)
		if fi, err := os.Stat(full); err == nil && fi.IsDir() {
			dirs = append(dirs, full)
		}
	}
	return dirs
}
