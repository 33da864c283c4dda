package maps

import errors2 "github.com/amp-labs/amp-indexedmap/errors"

var (
	// ErrHashCollision is returned when two keys that are not Equal hash to the
	// same value. Switching to a wider HashFunc (Sha256) usually resolves it.
	ErrHashCollision = errors2.ErrHashCollision

	// ErrIndexOutOfRange is returned by positional lookups on an IndexedMap.
	ErrIndexOutOfRange = errors2.ErrIndexOutOfRange
)
