// Package store provides persistent storage for package records.
package store

import (
	"context"

	"github.com/pkgforge/depscope/pkg/types"
)

// PackageStore defines the storage interface for package records. Lookups
// are by exact fully-qualified identifier.
type PackageStore interface {
	// Open initializes and opens the store.
	Open(path string) error

	// Close closes the store and releases resources.
	Close() error

	// Put stores a package record, replacing any existing record for the
	// same identifier.
	Put(ctx context.Context, pkg *types.Package) error

	// Get retrieves a package by exact identifier. Returns an error
	// wrapping types.ErrPackageNotFound when absent.
	Get(ctx context.Context, ident string) (*types.Package, error)

	// List retrieves all stored package records.
	List(ctx context.Context) ([]*types.Package, error)

	// Count returns the number of stored package records.
	Count(ctx context.Context) (int, error)
}
