package check

import "time"

// EntryKind discriminates report entries.
type EntryKind int

const (
	// EntryUpdate records the resolution of a direct dependency of the
	// root to its latest identifier.
	EntryUpdate EntryKind = iota

	// EntryConflict records two paths in the closure disagreeing on the
	// identifier for one short name.
	EntryConflict

	// EntryFetchFailure records a dependency fetch that failed during
	// recursion. The branch stops; siblings are unaffected.
	EntryFetchFailure

	// EntryBadIdent records a dependency whose identifier could not be
	// parsed into a short name.
	EntryBadIdent
)

// Entry is one report line, in discovery order. Which fields are set
// depends on Kind.
type Entry struct {
	Kind EntryKind

	// Dep is the original dependency identifier (updates, bad idents).
	Dep string

	// Latest is the resolved candidate identifier (updates).
	Latest string

	// At is the identifier whose dependency list was being walked
	// (conflicts, fetch failures, bad idents).
	At string

	// Recorded is the ledger's authoritative identifier (conflicts).
	Recorded string

	// Found is the disagreeing identifier (conflicts).
	Found string
}

// Report is the ordered outcome of one conflict-check run. Entries appear
// in discovery order and are never deduplicated: a conflict reached
// through several paths is reported once per discovery.
type Report struct {
	// Root is the resolved root identifier the walk started from.
	Root string

	// Filter is the origin-prefix filter active during the walk.
	Filter string

	Entries []Entry

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Updates returns the update entries in order.
func (r *Report) Updates() []Entry { return r.byKind(EntryUpdate) }

// Conflicts returns the conflict entries in order.
func (r *Report) Conflicts() []Entry { return r.byKind(EntryConflict) }

// Failures returns the fetch-failure entries in order.
func (r *Report) Failures() []Entry { return r.byKind(EntryFetchFailure) }

func (r *Report) byKind(kind EntryKind) []Entry {
	var entries []Entry
	for _, e := range r.Entries {
		if e.Kind == kind {
			entries = append(entries, e)
		}
	}
	return entries
}
