package graph

import (
	"strconv"
	"strings"
)

// compareNumeric compares two version components, numerically when both
// are unsigned integers, lexicographically otherwise.
func compareNumeric(a, b string) int {
	an, aok := parseUint(a)
	bn, bok := parseUint(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// parseUint reports a component's numeric value. Components that are not
// unsigned integers, or that overflow uint64, compare lexicographically.
func parseUint(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	return n, err == nil
}

// CompareVersions compares two dotted version strings component-wise,
// numerically where possible. A version that is a strict prefix of the
// other sorts lower.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareNumeric(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

// newerIdent reports whether candidate is a more recent release than
// current, ordering by version first and release second. This is the
// "latest" policy used by Resolve.
func newerIdent(candidateVersion, candidateRelease, currentVersion, currentRelease string) bool {
	if c := CompareVersions(candidateVersion, currentVersion); c != 0 {
		return c > 0
	}
	return compareNumeric(candidateRelease, currentRelease) > 0
}
