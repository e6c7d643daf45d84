package types

// Package is a flat package record as ingested from a manifest: one
// published version of a package together with its declared dependencies.
type Package struct {
	// Ident is the fully-qualified identifier of this package version.
	Ident string `json:"ident" yaml:"ident"`

	// Deps are the declared runtime dependencies, each a fully-qualified
	// identifier, in manifest order.
	Deps []string `json:"deps,omitempty" yaml:"deps,omitempty"`

	// BuildDeps are the declared build-time dependencies. They only
	// participate in graph construction and dependency fetches when the
	// BUILDDEPS feature is enabled.
	BuildDeps []string `json:"build_deps,omitempty" yaml:"build_deps,omitempty"`
}

// AllDeps returns the declared dependencies, optionally including build
// dependencies, preserving declaration order (runtime first).
func (p *Package) AllDeps(includeBuild bool) []string {
	if !includeBuild || len(p.BuildDeps) == 0 {
		return p.Deps
	}
	deps := make([]string, 0, len(p.Deps)+len(p.BuildDeps))
	deps = append(deps, p.Deps...)
	deps = append(deps, p.BuildDeps...)
	return deps
}
