// Package graph builds and queries the in-memory package dependency graph.
package graph

import (
	"sort"
	"strings"

	"github.com/pkgforge/depscope/pkg/log"
	"github.com/pkgforge/depscope/pkg/types"
)

// Stats summarizes the shape of the graph.
type Stats struct {
	NodeCount           int
	EdgeCount           int
	ConnectedComponents int
	IsCyclic            bool
}

// RDep is one reverse-dependency entry: the lineage that depends on the
// queried package and its latest published identifier.
type RDep struct {
	ShortName string
	Latest    string
}

// TopEntry is one entry of the reverse-dependency ranking.
type TopEntry struct {
	ShortName string
	Count     int
}

// PackageGraph is the queryable dependency graph built from a flat
// package list. It is built once and read-only afterwards.
type PackageGraph struct {
	logger log.Logger

	// adjacency between fully-qualified identifiers
	adj map[string][]string

	// lineage-level reverse adjacency: short name -> set of dependent
	// short names
	rdeps map[string]map[string]struct{}

	// latest identifier per short name
	latest map[string]types.Ident

	edgeCount int
}

// New creates an empty PackageGraph.
func New(logger log.Logger) *PackageGraph {
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	return &PackageGraph{
		logger: logger.WithComponent("graph"),
		adj:    make(map[string][]string),
		rdeps:  make(map[string]map[string]struct{}),
		latest: make(map[string]types.Ident),
	}
}

// Build populates the graph from a flat package list and returns the node
// and edge counts. Dependencies referencing packages absent from the list
// still become nodes; malformed identifiers are skipped with a warning.
// When includeBuildDeps is set, build-time dependencies contribute edges
// as well.
func (g *PackageGraph) Build(packages []*types.Package, includeBuildDeps bool) (int, int) {
	for _, pkg := range packages {
		ident, err := types.ParseIdent(pkg.Ident)
		if err != nil {
			g.logger.Warn("skipping package with malformed identifier",
				log.Str("ident", pkg.Ident), log.Err(err))
			continue
		}
		g.addNode(ident)

		for _, dep := range pkg.AllDeps(includeBuildDeps) {
			depIdent, err := types.ParseIdent(dep)
			if err != nil {
				g.logger.Warn("skipping malformed dependency",
					log.Str("ident", pkg.Ident), log.Str("dep", dep), log.Err(err))
				continue
			}
			g.addNode(depIdent)
			g.adj[ident.String()] = append(g.adj[ident.String()], depIdent.String())
			g.edgeCount++

			depShort := depIdent.ShortName()
			if g.rdeps[depShort] == nil {
				g.rdeps[depShort] = make(map[string]struct{})
			}
			g.rdeps[depShort][ident.ShortName()] = struct{}{}
		}
	}
	return len(g.adj), g.edgeCount
}

func (g *PackageGraph) addNode(ident types.Ident) {
	s := ident.String()
	if _, ok := g.adj[s]; !ok {
		g.adj[s] = nil
	}
	short := ident.ShortName()
	cur, ok := g.latest[short]
	if !ok || newerIdent(ident.Version, ident.Release, cur.Version, cur.Release) {
		g.latest[short] = ident
	}
}

// Resolve returns the latest known fully-qualified identifier for an
// "origin/name" short name.
func (g *PackageGraph) Resolve(shortName string) (string, bool) {
	ident, ok := g.latest[shortName]
	if !ok {
		return "", false
	}
	return ident.String(), true
}

// Stats computes node/edge counts, connected components over the
// undirected graph, and whether the directed graph contains a cycle.
func (g *PackageGraph) Stats() Stats {
	return Stats{
		NodeCount:           len(g.adj),
		EdgeCount:           g.edgeCount,
		ConnectedComponents: g.connectedComponents(),
		IsCyclic:            g.isCyclic(),
	}
}

func (g *PackageGraph) connectedComponents() int {
	undirected := make(map[string][]string, len(g.adj))
	for u, deps := range g.adj {
		for _, v := range deps {
			undirected[u] = append(undirected[u], v)
			undirected[v] = append(undirected[v], u)
		}
	}

	seen := make(map[string]bool, len(g.adj))
	components := 0
	for u := range g.adj {
		if seen[u] {
			continue
		}
		components++
		queue := []string{u}
		seen[u] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, v := range undirected[cur] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
	}
	return components
}

// isCyclic runs a three-color DFS over the directed identifier graph.
func (g *PackageGraph) isCyclic() bool {
	const (
		white = 0 // unvisited
		gray  = 1 // visiting
		black = 2 // visited
	)
	color := make(map[string]int, len(g.adj))

	var dfs func(u string) bool
	dfs = func(u string) bool {
		color[u] = gray
		for _, v := range g.adj[u] {
			if color[v] == gray {
				return true
			}
			if color[v] == white && dfs(v) {
				return true
			}
		}
		color[u] = black
		return false
	}

	for u := range g.adj {
		if color[u] == white && dfs(u) {
			return true
		}
	}
	return false
}

// Top returns up to count short names ranked by transitive
// reverse-dependency count, descending; ties break alphabetically.
func (g *PackageGraph) Top(count int) []TopEntry {
	entries := make([]TopEntry, 0, len(g.rdeps))
	for short := range g.latest {
		if n := len(g.transitiveRdeps(short)); n > 0 {
			entries = append(entries, TopEntry{ShortName: short, Count: n})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].ShortName < entries[j].ShortName
	})
	if len(entries) > count {
		entries = entries[:count]
	}
	return entries
}

func (g *PackageGraph) transitiveRdeps(shortName string) map[string]struct{} {
	result := make(map[string]struct{})
	queue := make([]string, 0, len(g.rdeps[shortName]))
	for dep := range g.rdeps[shortName] {
		queue = append(queue, dep)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, ok := result[cur]; ok {
			continue
		}
		result[cur] = struct{}{}
		for next := range g.rdeps[cur] {
			queue = append(queue, next)
		}
	}
	delete(result, shortName)
	return result
}

// Rdeps returns the transitive reverse dependencies of a short name as
// (short name, latest identifier) pairs, sorted by short name. The second
// return is false when the short name is unknown to the graph.
func (g *PackageGraph) Rdeps(shortName string) ([]RDep, bool) {
	if _, ok := g.latest[shortName]; !ok {
		return nil, false
	}
	set := g.transitiveRdeps(shortName)
	result := make([]RDep, 0, len(set))
	for short := range set {
		latest := ""
		if ident, ok := g.latest[short]; ok {
			latest = ident.String()
		}
		result = append(result, RDep{ShortName: short, Latest: latest})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ShortName < result[j].ShortName })
	return result, true
}

// Search returns the short names containing the given term,
// case-insensitively, sorted.
func (g *PackageGraph) Search(term string) []string {
	term = strings.ToLower(term)
	var result []string
	for short := range g.latest {
		if strings.Contains(strings.ToLower(short), term) {
			result = append(result, short)
		}
	}
	sort.Strings(result)
	return result
}

// Latest returns the latest identifier of every known short name, sorted.
func (g *PackageGraph) Latest() []string {
	result := make([]string, 0, len(g.latest))
	for _, ident := range g.latest {
		result = append(result, ident.String())
	}
	sort.Strings(result)
	return result
}
