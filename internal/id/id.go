package id

import "github.com/google/uuid"

// entryIDLen is the number of leading UUID characters kept for an entry ID.
const entryIDLen = 8

// NewEntryID returns a fresh journal entry ID: the first 8 hex characters of
// a random UUID, e.g. "9f1c2d3e".
func NewEntryID() string {
	return uuid.NewString()[:entryIDLen]
}
