package util

import "github.com/oklog/ulid/v2"

// NewULID generates a new ULID string using crypto/rand entropy. ULIDs sort
// lexicographically by creation time, which keeps index pages warm.
func NewULID() string {
	return ulid.Make().String()
}
