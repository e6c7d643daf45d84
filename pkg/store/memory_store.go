package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkgforge/depscope/pkg/types"
)

// MemoryStore is an in-memory implementation of PackageStore for testing.
type MemoryStore struct {
	packages map[string]types.Package
	mutex    sync.RWMutex
}

// NewMemoryStore creates a new in-memory package store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{packages: make(map[string]types.Package)}
}

// Open is a no-op for the memory store.
func (m *MemoryStore) Open(path string) error { return nil }

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error { return nil }

// Put stores a copy of the package record.
func (m *MemoryStore) Put(ctx context.Context, pkg *types.Package) error {
	if _, err := types.ParseIdent(pkg.Ident); err != nil {
		return err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.packages[pkg.Ident] = *pkg
	return nil
}

// Get retrieves a package by exact identifier.
func (m *MemoryStore) Get(ctx context.Context, ident string) (*types.Package, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	pkg, ok := m.packages[ident]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrPackageNotFound, ident)
	}
	return &pkg, nil
}

// List retrieves all stored package records.
func (m *MemoryStore) List(ctx context.Context) ([]*types.Package, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	packages := make([]*types.Package, 0, len(m.packages))
	for ident := range m.packages {
		pkg := m.packages[ident]
		packages = append(packages, &pkg)
	}
	return packages, nil
}

// Count returns the number of stored package records.
func (m *MemoryStore) Count(ctx context.Context) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.packages), nil
}
