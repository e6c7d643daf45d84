package types

import (
	"fmt"
	"strings"
)

// Ident is a fully-qualified package identifier with the canonical
// slash-joined form "origin/name/version/release". Two idents are equal
// iff all four fields match exactly.
type Ident struct {
	Origin  string `json:"origin" yaml:"origin"`
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Release string `json:"release" yaml:"release"`
}

// String renders the canonical slash-joined identifier.
func (i Ident) String() string {
	return i.Origin + "/" + i.Name + "/" + i.Version + "/" + i.Release
}

// ShortName returns the "origin/name" prefix identifying the package
// lineage independent of version.
func (i Ident) ShortName() string {
	return i.Origin + "/" + i.Name
}

// ParseIdent parses a fully-qualified "origin/name/version/release"
// identifier. It returns ErrInvalidIdent for anything that is not exactly
// four non-empty parts.
func ParseIdent(s string) (Ident, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 4 {
		return Ident{}, fmt.Errorf("%w: expected origin/name/version/release, got %q", ErrInvalidIdent, s)
	}
	for _, p := range parts {
		if p == "" {
			return Ident{}, fmt.Errorf("%w: empty component in %q", ErrInvalidIdent, s)
		}
	}
	return Ident{
		Origin:  parts[0],
		Name:    parts[1],
		Version: parts[2],
		Release: parts[3],
	}, nil
}

// ParseShortName parses an "origin/name" short name. It returns
// ErrInvalidIdent for anything that is not exactly two non-empty parts.
func ParseShortName(s string) (string, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("%w: expected origin/name, got %q", ErrInvalidIdent, s)
	}
	return s, nil
}

// ShortName extracts the "origin/name" prefix of a fully-qualified
// identifier string without requiring the version and release parts to be
// well-formed.
func ShortName(ident string) (string, error) {
	parts := strings.Split(ident, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("%w: cannot take short name of %q", ErrInvalidIdent, ident)
	}
	return parts[0] + "/" + parts[1], nil
}

// IsFullIdent reports whether s has the four-part identifier shape.
func IsFullIdent(s string) bool {
	_, err := ParseIdent(s)
	return err == nil
}

// IsShortName reports whether s has the two-part short-name shape.
func IsShortName(s string) bool {
	_, err := ParseShortName(s)
	return err == nil
}
