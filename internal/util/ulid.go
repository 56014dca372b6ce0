package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID returns a new ULID drawn from the package's monotonic,
// cryptographically seeded entropy source.
func NewULID() string {
	return ulid.Make().String()
}

// IsValidULID reports whether s is a canonical 26-character ULID.
func IsValidULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
