package check

import (
	"context"

	"github.com/pkgforge/depscope/pkg/store"
)

// StoreSource adapts a PackageStore to the DepSource interface, applying
// the build-dependency toggle.
type StoreSource struct {
	Store            store.PackageStore
	IncludeBuildDeps bool
}

// Dependencies returns the declared direct dependencies of ident in
// declaration order.
func (s *StoreSource) Dependencies(ctx context.Context, ident string) ([]string, error) {
	pkg, err := s.Store.Get(ctx, ident)
	if err != nil {
		return nil, err
	}
	return pkg.AllDeps(s.IncludeBuildDeps), nil
}
