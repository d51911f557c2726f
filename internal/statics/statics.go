// Package statics describes the verbatim-copy asset mappings the generation
// engine applies. This layer only resolves destinations and verifies the
// sources exist; the copying itself is the engine's job.
package statics

import (
	"fmt"
	"os"
	"path/filepath"
)

// Path maps one static source path, relative to the project root, to its
// destination in the output tree. An empty SaveAs keeps the source's own
// relative path, so `images` lands at `images` and `extra/CNAME` at
// `extra/CNAME` unless renamed.
type Path struct {
	Source string `mapstructure:"source" yaml:"source"`
	SaveAs string `mapstructure:"saveAs" yaml:"saveAs,omitempty"`
}

// Dest returns the output-relative destination for this mapping.
func (p Path) Dest() string {
	if p.SaveAs != "" {
		return p.SaveAs
	}
	return p.Source
}

// Check stats the source under root.
func (p Path) Check(root string) error {
	if p.Source == "" {
		return fmt.Errorf("static path with empty source")
	}
	full := filepath.Join(root, p.Source)
	if _, err := os.Stat(full); err != nil {
		return fmt.Errorf("static path %q: %w", p.Source, err)
	}
	return nil
}

// CheckAll verifies every mapping's source exists under root. The first
// missing source fails the whole check, matching the engine's build-time
// behavior.
func CheckAll(root string, paths []Path) error {
	for _, p := range paths {
		if err := p.Check(root); err != nil {
			return err
		}
	}
	return nil
}
