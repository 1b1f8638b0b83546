package mock

import (
	"context"

	"github.com/fwojciec/teachpy"
)

// NewMemoryStore returns a Store backed by an in-memory map, behaving like
// the Redis adapter: full-record overwrites, "" for an unset pointer, and
// teachpy.ErrSessionNotFound for missing records. Useful for lifecycle
// tests that need stateful store behavior rather than canned responses.
func NewMemoryStore() *Store {
	sessions := map[string]teachpy.Session{}
	pointer := ""
	return &Store{
		GetRecordFn: func(_ context.Context, id string) (teachpy.Session, error) {
			s, ok := sessions[id]
			if !ok {
				return teachpy.Session{}, teachpy.ErrSessionNotFound
			}
			return s, nil
		},
		PutRecordFn: func(_ context.Context, s teachpy.Session) error {
			sessions[s.ID] = s
			return nil
		},
		DeleteRecordFn: func(_ context.Context, id string) error {
			delete(sessions, id)
			return nil
		},
		ListRecordsFn: func(context.Context) ([]teachpy.Session, error) {
			out := make([]teachpy.Session, 0, len(sessions))
			for _, s := range sessions {
				out = append(out, s)
			}
			return out, nil
		},
		CurrentPointerFn: func(context.Context) (string, error) {
			return pointer, nil
		},
		SetCurrentPointerFn: func(_ context.Context, id string) error {
			pointer = id
			return nil
		},
		ClearCurrentPointerFn: func(context.Context) error {
			pointer = ""
			return nil
		},
	}
}
