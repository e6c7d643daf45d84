package check

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkgforge/depscope/pkg/log"
	"github.com/pkgforge/depscope/pkg/types"
)

// Checker walks a package's full dependency closure, re-resolving every
// dependency to its latest published version, and reports every case
// where two paths disagree on which version of a short name to use.
type Checker struct {
	resolver LatestResolver
	source   DepSource
	logger   log.Logger
}

// NewChecker creates a Checker over the given collaborators.
func NewChecker(resolver LatestResolver, source DepSource, logger log.Logger) *Checker {
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	return &Checker{
		resolver: resolver,
		source:   source,
		logger:   logger.WithComponent("check"),
	}
}

// Check runs one conflict-check over the closure of name. The name may be
// a fully-qualified identifier or an "origin/name" short name; short
// names resolve to their latest identifier first. filter is an
// origin-prefix string applied to every dependency identifier before it
// is resolved or followed; empty matches everything.
//
// A root that cannot be resolved or fetched is fatal and returns an error
// wrapping types.ErrPackageNotFound. Every failure after that is local to
// its branch and lands in the report instead.
func (c *Checker) Check(ctx context.Context, name, filter string) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()[:8]
	logger := c.logger.With(log.Str("run_id", runID))

	root := ResolveName(c.resolver, name)
	logger.Debug("starting conflict check",
		log.Str("name", name),
		log.Str("root", root),
		log.Str("filter", filter))

	deps, err := c.source.Dependencies(ctx, root)
	if err != nil {
		logger.Debug("root fetch failed", log.Err(err))
		return nil, fmt.Errorf("%w: %s", types.ErrPackageNotFound, name)
	}

	rep := &Report{Root: root, Filter: filter}
	ledger := NewLedger()

	// First pass: resolve the root's direct dependencies to their latest
	// identifiers, seed the ledger, and remember the candidates for
	// recursion. Duplicate candidates stay in the list; the ledger keeps
	// only the first entry per short name.
	var resolved []string
	for _, dep := range deps {
		if !strings.HasPrefix(dep, filter) {
			continue
		}
		short, err := types.ShortName(dep)
		if err != nil {
			rep.Entries = append(rep.Entries, Entry{Kind: EntryBadIdent, Dep: dep, At: root})
			continue
		}
		candidate := ResolveName(c.resolver, short)
		ledger.Record(short, candidate)
		resolved = append(resolved, candidate)
		rep.Entries = append(rep.Entries, Entry{Kind: EntryUpdate, Dep: dep, Latest: candidate})
	}

	// Second pass: recurse into each candidate with the shared ledger.
	// The path set only blocks re-entering an identifier already on the
	// active recursion path, so cyclic dependency data terminates while
	// conflicts reachable through several paths are still discovered per
	// path.
	path := map[string]bool{root: true}
	for _, ident := range resolved {
		if path[ident] {
			continue
		}
		path[ident] = true
		c.walk(ctx, ident, filter, ledger, path, rep)
		delete(path, ident)
	}

	rep.Elapsed = time.Since(start)
	logger.Debug("conflict check finished",
		log.Int("entries", len(rep.Entries)),
		log.Int("conflicts", len(rep.Conflicts())),
		log.Int("lineages", ledger.Len()),
		log.Duration("elapsed", rep.Elapsed))
	return rep, nil
}

// walk checks one package's direct dependencies against the ledger and
// recurses depth-first. A fetch failure here is a leaf failure: it is
// reported and the branch stops, but siblings continue.
func (c *Checker) walk(ctx context.Context, ident, filter string, ledger *Ledger, path map[string]bool, rep *Report) {
	deps, err := c.source.Dependencies(ctx, ident)
	if err != nil {
		rep.Entries = append(rep.Entries, Entry{Kind: EntryFetchFailure, At: ident})
		return
	}

	for _, dep := range deps {
		if !strings.HasPrefix(dep, filter) {
			continue
		}
		short, err := types.ShortName(dep)
		if err != nil {
			rep.Entries = append(rep.Entries, Entry{Kind: EntryBadIdent, Dep: dep, At: ident})
			continue
		}
		recorded, conflict := ledger.Record(short, dep)
		if conflict {
			rep.Entries = append(rep.Entries, Entry{
				Kind:     EntryConflict,
				At:       ident,
				Recorded: recorded,
				Found:    dep,
			})
		}
		if path[dep] {
			continue
		}
		path[dep] = true
		c.walk(ctx, dep, filter, ledger, path, rep)
		delete(path, dep)
	}
}
