package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `
packages:
  - ident: core/app/1.0.0/20200101000000
    deps:
      - core/lib/1.0.0/20200101000000
    build_deps:
      - core/make/4.2/20200101000000
  - ident: core/lib/1.0.0/20200101000000
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	require.NoError(t, err)
	require.Len(t, m.Packages, 2)

	assert.Equal(t, "core/app/1.0.0/20200101000000", m.Packages[0].Ident)
	assert.Equal(t, []string{"core/lib/1.0.0/20200101000000"}, m.Packages[0].Deps)
	assert.Equal(t, []string{"core/make/4.2/20200101000000"}, m.Packages[0].BuildDeps)
	assert.Empty(t, m.Packages[1].Deps)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not yaml", ":\t{"},
		{"empty list", "packages: []"},
		{"no packages key", "other: true"},
		{"bad ident", "packages:\n  - ident: core/app"},
		{"bad dep", "packages:\n  - ident: core/app/1.0/1\n    deps: [core/lib]"},
		{"bad build dep", "packages:\n  - ident: core/app/1.0/1\n    build_deps: [broken]"},
		{"duplicate ident", "packages:\n  - ident: core/app/1.0/1\n  - ident: core/app/1.0/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Packages, 2)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
