package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgforge/depscope/pkg/types"
)

// runStoreSuite exercises the PackageStore contract against an open store.
func runStoreSuite(t *testing.T, st PackageStore) {
	ctx := context.Background()

	pkg := &types.Package{
		Ident:     "core/openssl/1.1.1/20200101000000",
		Deps:      []string{"core/glibc/2.29/1", "core/zlib/1.2.11/1"},
		BuildDeps: []string{"core/gcc/9.1/1"},
	}
	require.NoError(t, st.Put(ctx, pkg))

	got, err := st.Get(ctx, pkg.Ident)
	require.NoError(t, err)
	assert.Equal(t, pkg.Ident, got.Ident)
	assert.Equal(t, pkg.Deps, got.Deps)
	assert.Equal(t, pkg.BuildDeps, got.BuildDeps)

	// Absent identifiers report not-found.
	_, err = st.Get(ctx, "core/missing/1.0/1")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrPackageNotFound)

	// Put replaces existing records.
	updated := &types.Package{Ident: pkg.Ident, Deps: []string{"core/glibc/2.31/1"}}
	require.NoError(t, st.Put(ctx, updated))
	got, err = st.Get(ctx, pkg.Ident)
	require.NoError(t, err)
	assert.Equal(t, []string{"core/glibc/2.31/1"}, got.Deps)

	// Malformed identifiers are rejected up front.
	err = st.Put(ctx, &types.Package{Ident: "not-an-ident"})
	assert.ErrorIs(t, err, types.ErrInvalidIdent)

	require.NoError(t, st.Put(ctx, &types.Package{Ident: "core/zlib/1.2.11/1"}))

	packages, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, packages, 2)

	count, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryStore(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.Open(""))
	defer st.Close()
	runStoreSuite(t, st)
}

func TestBadgerStore(t *testing.T) {
	st := NewBadgerStore(nil)
	require.NoError(t, st.Open(t.TempDir()))
	defer st.Close()
	runStoreSuite(t, st)
}

func TestBadgerStorePersistence(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st := NewBadgerStore(nil)
	require.NoError(t, st.Open(dir))
	require.NoError(t, st.Put(ctx, &types.Package{Ident: "core/app/1.0/1"}))
	require.NoError(t, st.Close())

	st = NewBadgerStore(nil)
	require.NoError(t, st.Open(dir))
	defer st.Close()

	got, err := st.Get(ctx, "core/app/1.0/1")
	require.NoError(t, err)
	assert.Equal(t, "core/app/1.0/1", got.Ident)
}

func TestMakeKey(t *testing.T) {
	assert.Equal(t, []byte("package/core/app/1.0/1"), MakeKey("core/app/1.0/1"))
	assert.Equal(t, []byte("package/"), MakePrefix())
}
