package store

import "errors"

// Sentinel errors returned by storage backends. They are plain errors on
// purpose: the storage layer reports facts, the interaction layer decides
// how each maps to a failure classification.
var (
	ErrNoRows    = errors.New("no rows in result set")
	ErrDuplicate = errors.New("result already exists")
)
