package check

// Ledger maps short names to the identifier considered authoritative for
// them within one conflict-check run. Insertion is first-write-wins: the
// first identifier recorded for a short name stays, and later
// disagreements are reported as conflicts, never as updates.
//
// A Ledger is owned by a single check invocation and is never shared
// across invocations or goroutines, so it needs no locking.
type Ledger struct {
	entries map[string]string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]string)}
}

// Record offers ident as the resolution for shortName. It returns the
// authoritative identifier for the short name and whether the offered
// identifier disagrees with it. The first offer for a short name always
// becomes authoritative.
func (l *Ledger) Record(shortName, ident string) (recorded string, conflict bool) {
	if cur, ok := l.entries[shortName]; ok {
		return cur, cur != ident
	}
	l.entries[shortName] = ident
	return ident, false
}

// Get returns the recorded identifier for a short name, if any.
func (l *Ledger) Get(shortName string) (string, bool) {
	ident, ok := l.entries[shortName]
	return ident, ok
}

// Len returns the number of recorded short names.
func (l *Ledger) Len() int {
	return len(l.entries)
}
