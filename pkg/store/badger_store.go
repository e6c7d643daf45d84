package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/pkgforge/depscope/pkg/log"
	"github.com/pkgforge/depscope/pkg/types"
)

// Validate that BadgerStore implements the PackageStore interface
var _ PackageStore = &BadgerStore{}

// BadgerStore implements PackageStore using BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	path   string
	logger log.Logger
}

// NewBadgerStore creates a new BadgerDB-backed package store.
func NewBadgerStore(logger log.Logger) *BadgerStore {
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	return &BadgerStore{logger: logger.WithComponent("store")}
}

// Open opens the BadgerDB database at the given path.
func (s *BadgerStore) Open(path string) error {
	s.path = path

	opts := badger.DefaultOptions(path)
	opts.Logger = &badgerLogAdapter{logger: s.logger}

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open badger db: %w", err)
	}
	s.db = db

	s.logger.Info("package store opened", log.Str("path", path))
	return nil
}

// Close closes the BadgerDB database.
func (s *BadgerStore) Close() error {
	if s.db == nil {
		return nil
	}
	s.logger.Info("closing package store", log.Str("path", s.path))
	return s.db.Close()
}

// Put stores a package record, replacing any existing record for the same
// identifier.
func (s *BadgerStore) Put(ctx context.Context, pkg *types.Package) error {
	if _, err := types.ParseIdent(pkg.Ident); err != nil {
		return err
	}

	data, err := json.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("failed to serialize package %s: %w", pkg.Ident, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(MakeKey(pkg.Ident), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store package %s: %w", pkg.Ident, err)
	}

	s.logger.Debug("stored package",
		log.Str("ident", pkg.Ident),
		log.Int("deps", len(pkg.Deps)),
		log.Int("build_deps", len(pkg.BuildDeps)))
	return nil
}

// Get retrieves a package by exact identifier.
func (s *BadgerStore) Get(ctx context.Context, ident string) (*types.Package, error) {
	var pkg types.Package

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(MakeKey(ident))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", types.ErrPackageNotFound, ident)
		} else if err != nil {
			return fmt.Errorf("failed to get package %s: %w", ident, err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &pkg)
		})
	})
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// List retrieves all stored package records.
func (s *BadgerStore) List(ctx context.Context) ([]*types.Package, error) {
	var packages []*types.Package

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := MakePrefix()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var pkg types.Package
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &pkg)
			})
			if err != nil {
				return fmt.Errorf("failed to deserialize package: %w", err)
			}
			packages = append(packages, &pkg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return packages, nil
}

// Count returns the number of stored package records.
func (s *BadgerStore) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := MakePrefix()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// badgerLogAdapter routes BadgerDB's internal logging through our logger.
type badgerLogAdapter struct {
	logger log.Logger
}

func (a *badgerLogAdapter) Errorf(format string, args ...interface{}) {
	a.logger.Errorf(format, args...)
}

func (a *badgerLogAdapter) Warningf(format string, args ...interface{}) {
	a.logger.Warnf(format, args...)
}

func (a *badgerLogAdapter) Infof(format string, args ...interface{}) {
	a.logger.Debugf(format, args...)
}

func (a *badgerLogAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Debugf(format, args...)
}
