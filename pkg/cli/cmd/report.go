package cmd

import (
	"fmt"
	"io"

	"github.com/pkgforge/depscope/pkg/check"
	"github.com/pkgforge/depscope/pkg/cli/format"
)

// renderReport writes a conflict-check report in discovery order: the
// resolved updates for the root's direct dependencies first, then every
// conflict and branch failure as the walk found them. Nothing is ever
// deduplicated; a conflict reached through several paths appears once per
// discovery.
func renderReport(w io.Writer, rep *check.Report) {
	if rep.Filter != "" {
		fmt.Fprintf(w, "Checks filtered by: %s\n\n", rep.Filter)
	}

	format.HeadingColor.Fprintln(w, "Dependency version updates:")
	for _, e := range rep.Entries {
		if e.Kind == check.EntryUpdate {
			fmt.Fprintf(w, "%s -> %s\n", e.Dep, e.Latest)
		}
	}
	fmt.Fprintln(w)

	for _, e := range rep.Entries {
		switch e.Kind {
		case check.EntryConflict:
			format.ErrorColor.Fprintf(w, "Conflict: %s\n", e.At)
			format.IdentColor.Fprintf(w, "  %s\n", e.Recorded)
			format.IdentColor.Fprintf(w, "  %s\n", e.Found)
		case check.EntryFetchFailure:
			fmt.Fprintf(w, "No matching package found for %s\n", e.At)
		case check.EntryBadIdent:
			fmt.Fprintf(w, "Invalid dependency identifier %s in %s\n", e.Dep, e.At)
		}
	}

	fmt.Fprintln(w)
	format.DimColor.Fprintf(w, "Time: %s\n", format.Seconds(rep.Elapsed))
	fmt.Fprintln(w)
}
