package teachpy

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrSessionNotFound indicates the requested session id has no record.
	// Lifecycle operations treat it as a soft failure: reads degrade to
	// empty results and appends become no-ops, because sessions can be
	// deleted concurrently with in-flight operations referencing them.
	ErrSessionNotFound = errors.New("session not found")
)
