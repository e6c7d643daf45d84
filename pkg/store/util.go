package store

import "fmt"

const packageKeyPrefix = "package/"

// MakeKey creates the storage key for a package identifier.
func MakeKey(ident string) []byte {
	return []byte(fmt.Sprintf("%s%s", packageKeyPrefix, ident))
}

// MakePrefix creates the prefix for scanning all package records.
func MakePrefix() []byte {
	return []byte(packageKeyPrefix)
}
