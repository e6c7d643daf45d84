package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgforge/depscope/pkg/types"
)

func buildTestGraph(t *testing.T, packages []*types.Package, includeBuildDeps bool) *PackageGraph {
	t.Helper()
	g := New(nil)
	g.Build(packages, includeBuildDeps)
	return g
}

func TestBuildCounts(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/app/1.0/1", Deps: []string{"core/lib/1.0/1", "core/util/1.0/1"}},
		{Ident: "core/lib/1.0/1", Deps: []string{"core/util/1.0/1"}},
	}

	g := New(nil)
	nodes, edges := g.Build(packages, false)

	// core/util never appears as a package but still becomes a node.
	assert.Equal(t, 3, nodes)
	assert.Equal(t, 3, edges)
}

func TestBuildSkipsMalformedIdents(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/app/1.0/1", Deps: []string{"not-an-ident"}},
		{Ident: "garbage"},
	}

	g := New(nil)
	nodes, edges := g.Build(packages, false)

	assert.Equal(t, 1, nodes)
	assert.Equal(t, 0, edges)
}

func TestBuildDepsToggle(t *testing.T) {
	packages := []*types.Package{
		{
			Ident:     "core/app/1.0/1",
			Deps:      []string{"core/lib/1.0/1"},
			BuildDeps: []string{"core/make/4.2/1"},
		},
	}

	runtime := buildTestGraph(t, packages, false)
	stats := runtime.Stats()
	assert.Equal(t, 2, stats.NodeCount)
	assert.Equal(t, 1, stats.EdgeCount)

	all := buildTestGraph(t, packages, true)
	stats = all.Stats()
	assert.Equal(t, 3, stats.NodeCount)
	assert.Equal(t, 2, stats.EdgeCount)
}

func TestResolveLatest(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/openssl/1.0.2/100"},
		{Ident: "core/openssl/1.1.1/50"},
		{Ident: "core/openssl/1.1.1/200"},
	}
	g := buildTestGraph(t, packages, false)

	ident, ok := g.Resolve("core/openssl")
	require.True(t, ok)
	// Highest version wins; release breaks the tie.
	assert.Equal(t, "core/openssl/1.1.1/200", ident)

	_, ok = g.Resolve("core/missing")
	assert.False(t, ok)
}

func TestResolveSeesDependencyOnlyNodes(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/app/1.0/1", Deps: []string{"core/phantom/2.0/7"}},
	}
	g := buildTestGraph(t, packages, false)

	ident, ok := g.Resolve("core/phantom")
	require.True(t, ok)
	assert.Equal(t, "core/phantom/2.0/7", ident)
}

func TestStats(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/a/1.0/1", Deps: []string{"core/b/1.0/1"}},
		{Ident: "core/b/1.0/1"},
		{Ident: "other/x/1.0/1", Deps: []string{"other/y/1.0/1"}},
	}
	g := buildTestGraph(t, packages, false)

	stats := g.Stats()
	assert.Equal(t, 4, stats.NodeCount)
	assert.Equal(t, 2, stats.EdgeCount)
	assert.Equal(t, 2, stats.ConnectedComponents)
	assert.False(t, stats.IsCyclic)
}

func TestStatsCyclic(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/a/1.0/1", Deps: []string{"core/b/1.0/1"}},
		{Ident: "core/b/1.0/1", Deps: []string{"core/a/1.0/1"}},
	}
	g := buildTestGraph(t, packages, false)

	assert.True(t, g.Stats().IsCyclic)
}

func TestTop(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/app1/1.0/1", Deps: []string{"core/lib/1.0/1"}},
		{Ident: "core/app2/1.0/1", Deps: []string{"core/lib/1.0/1"}},
		{Ident: "core/lib/1.0/1", Deps: []string{"core/base/1.0/1"}},
		{Ident: "core/base/1.0/1"},
	}
	g := buildTestGraph(t, packages, false)

	entries := g.Top(10)
	require.Len(t, entries, 2)

	// base is reached transitively by lib, app1, and app2.
	assert.Equal(t, "core/base", entries[0].ShortName)
	assert.Equal(t, 3, entries[0].Count)
	assert.Equal(t, "core/lib", entries[1].ShortName)
	assert.Equal(t, 2, entries[1].Count)

	assert.Len(t, g.Top(1), 1)
}

func TestRdeps(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/app/1.0/1", Deps: []string{"core/lib/1.0/1"}},
		{Ident: "core/lib/1.0/1", Deps: []string{"core/base/1.0/1"}},
		{Ident: "core/base/1.0/1"},
	}
	g := buildTestGraph(t, packages, false)

	rdeps, ok := g.Rdeps("core/base")
	require.True(t, ok)
	require.Len(t, rdeps, 2)
	assert.Equal(t, "core/app", rdeps[0].ShortName)
	assert.Equal(t, "core/app/1.0/1", rdeps[0].Latest)
	assert.Equal(t, "core/lib", rdeps[1].ShortName)

	_, ok = g.Rdeps("core/missing")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/openssl/1.1.1/1"},
		{Ident: "core/openssl-fips/1.0/1"},
		{Ident: "core/zlib/1.2/1"},
	}
	g := buildTestGraph(t, packages, false)

	assert.Equal(t, []string{"core/openssl", "core/openssl-fips"}, g.Search("openssl"))
	assert.Equal(t, []string{"core/openssl", "core/openssl-fips"}, g.Search("OPENSSL"))
	assert.Empty(t, g.Search("nomatch"))
}

func TestLatest(t *testing.T) {
	packages := []*types.Package{
		{Ident: "core/a/1.0/1"},
		{Ident: "core/a/2.0/1"},
		{Ident: "core/b/1.0/1"},
	}
	g := buildTestGraph(t, packages, false)

	assert.Equal(t, []string{"core/a/2.0/1", "core/b/1.0/1"}, g.Latest())
}
