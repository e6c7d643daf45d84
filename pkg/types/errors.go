package types

import "errors"

var (
	// ErrPackageNotFound is returned when no package exists for a
	// requested identifier or short name.
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidIdent is returned when an identifier string does not have
	// the expected origin/name/version/release shape.
	ErrInvalidIdent = errors.New("invalid package identifier")
)
