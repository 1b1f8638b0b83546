package teachpy

import "context"

// Store is the contract over the external key-value capability holding
// session records and the current-session pointer. Each call is
// independently atomic at the store; there are no transactional guarantees
// across calls, so multi-step read-modify-write sequences are
// last-write-wins over the whole record.
type Store interface {
	// GetRecord returns the session with the given id, or ErrSessionNotFound.
	GetRecord(ctx context.Context, id string) (Session, error)

	// PutRecord overwrites the full session record.
	PutRecord(ctx context.Context, s Session) error

	// DeleteRecord removes the session record. Deleting an absent record is
	// not an error.
	DeleteRecord(ctx context.Context, id string) error

	// ListRecords returns all session records, unordered.
	ListRecords(ctx context.Context) ([]Session, error)

	// CurrentPointer returns the active session id, or "" when unset.
	CurrentPointer(ctx context.Context) (string, error)

	// SetCurrentPointer names id as the active session.
	SetCurrentPointer(ctx context.Context, id string) error

	// ClearCurrentPointer removes the active-session pointer.
	ClearCurrentPointer(ctx context.Context) error
}
