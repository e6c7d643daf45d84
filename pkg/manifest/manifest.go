// Package manifest loads flat package lists from YAML manifest files.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pkgforge/depscope/pkg/types"
)

// Manifest is the on-disk shape of a package list.
type Manifest struct {
	Packages []*types.Package `yaml:"packages"`
}

// Load reads and validates a package manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses and validates manifest bytes. Every package identifier and
// every declared dependency must have the full four-part shape.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest YAML: %w", err)
	}
	if len(m.Packages) == 0 {
		return nil, fmt.Errorf("manifest contains no packages")
	}

	seen := make(map[string]int, len(m.Packages))
	for i, pkg := range m.Packages {
		if pkg == nil {
			return nil, fmt.Errorf("package %d: empty entry", i)
		}
		if _, err := types.ParseIdent(pkg.Ident); err != nil {
			return nil, fmt.Errorf("package %d: %w", i, err)
		}
		if prev, dup := seen[pkg.Ident]; dup {
			return nil, fmt.Errorf("package %d: duplicate identifier %s (first at %d)", i, pkg.Ident, prev)
		}
		seen[pkg.Ident] = i

		for _, dep := range pkg.Deps {
			if _, err := types.ParseIdent(dep); err != nil {
				return nil, fmt.Errorf("package %s: dependency: %w", pkg.Ident, err)
			}
		}
		for _, dep := range pkg.BuildDeps {
			if _, err := types.ParseIdent(dep); err != nil {
				return nil, fmt.Errorf("package %s: build dependency: %w", pkg.Ident, err)
			}
		}
	}
	return &m, nil
}
