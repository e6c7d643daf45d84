// Package check implements the transitive dependency-conflict detection
// engine: resolve every dependency in a package's closure to its latest
// published version and report every disagreement between paths.
package check

import (
	"context"

	"github.com/pkgforge/depscope/pkg/types"
)

// LatestResolver is the graph-side collaborator: latest fully-qualified
// identifier for an "origin/name" short name. The ordering policy behind
// "latest" belongs to the implementation.
type LatestResolver interface {
	Resolve(shortName string) (string, bool)
}

// DepSource is the store-side collaborator: the declared direct
// dependencies of a package, in declaration order.
type DepSource interface {
	Dependencies(ctx context.Context, ident string) ([]string, error)
}

// ResolveName normalizes a package reference. A fully-qualified
// identifier is returned unchanged without a graph lookup. An
// "origin/name" short name is resolved to its latest identifier. Inputs
// that resolve to nothing, or have neither shape, are returned unchanged;
// callers detect a no-op by comparing input to output.
func ResolveName(r LatestResolver, name string) string {
	if types.IsFullIdent(name) {
		return name
	}
	if !types.IsShortName(name) {
		return name
	}
	if latest, ok := r.Resolve(name); ok {
		return latest
	}
	return name
}
