package teachpy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Manager owns the session lifecycle: creation, retrieval, mutation,
// listing, and deletion against a Store.
//
// Store failures are not caught here — they propagate to the caller
// unchanged. Missing sessions are a soft failure: reads return empty
// results and appends are dropped. Read-modify-write sequences are not
// guarded by any transaction; two concurrent appenders to the same session
// race and the whole record is last-write-wins.
type Manager struct {
	store Store
	now   func() time.Time
	newID func() string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithClock sets the wall-clock source. Default is time.Now.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

// WithIDFunc sets the session id generator. Default is uuid.NewString.
func WithIDFunc(newID func() string) ManagerOption {
	return func(m *Manager) { m.newID = newID }
}

// NewManager creates a Manager backed by the given store.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// CreateSession creates a new session with a fresh id, persists it, sets it
// as the current session, and seeds the assistant greeting. It returns the
// new session's id.
func (m *Manager) CreateSession(ctx context.Context) (string, error) {
	now := m.now()
	s := Session{
		ID:          m.newID(),
		CreatedAt:   FormatTimestamp(now),
		DisplayTime: DisplayLabel(now, now),
	}
	s.Title = fmt.Sprintf("New Session (%s)", s.DisplayTime)

	if err := m.store.PutRecord(ctx, s); err != nil {
		return "", err
	}
	if err := m.store.SetCurrentPointer(ctx, s.ID); err != nil {
		return "", err
	}
	if err := m.AppendMessage(ctx, s.ID, Message{Role: RoleAssistant, Content: Greeting}); err != nil {
		return "", err
	}
	return s.ID, nil
}

// CurrentSession returns the active session id, creating a new session when
// the pointer is unset or dangling. The returned id always names an
// existing session.
func (m *Manager) CurrentSession(ctx context.Context) (string, error) {
	id, err := m.store.CurrentPointer(ctx)
	if err != nil {
		return "", err
	}
	if id == "" {
		return m.CreateSession(ctx)
	}
	// The pointer can dangle if the record was removed out of band.
	if _, err := m.store.GetRecord(ctx, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return m.CreateSession(ctx)
		}
		return "", err
	}
	return id, nil
}

// SelectSession makes id the active session. It does not verify existence;
// a dangling pointer is repaired on the next CurrentSession call.
func (m *Manager) SelectSession(ctx context.Context, id string) error {
	return m.store.SetCurrentPointer(ctx, id)
}

// Messages returns the session's messages in conversation order, or an
// empty sequence when the session does not exist.
func (m *Manager) Messages(ctx context.Context, id string) ([]Message, error) {
	s, err := m.store.GetRecord(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Messages, nil
}

// AppendMessage appends msg to the session and writes the full record back.
// When the append makes the message count 2 and msg is a user turn, the
// session is retitled once from the message content. Appending to a missing
// session is silently dropped.
func (m *Manager) AppendMessage(ctx context.Context, id string, msg Message) error {
	s, err := m.store.GetRecord(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	s.Messages = append(s.Messages, msg)
	if msg.Role == RoleUser && len(s.Messages) == 2 {
		s.Title = deriveTitle(msg.Content)
	}
	return m.store.PutRecord(ctx, s)
}

// ListSessions returns a summary of every session, sorted by creation time
// descending (newest first). The fixed timestamp format makes string
// comparison order-equivalent to chronological comparison.
func (m *Manager) ListSessions(ctx context.Context) ([]Summary, error) {
	records, err := m.store.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]Summary, len(records))
	for i, s := range records {
		summaries[i] = Summary{
			ID:           s.ID,
			Title:        s.Title,
			CreatedAt:    s.CreatedAt,
			MessageCount: len(s.Messages),
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt > summaries[j].CreatedAt
	})
	return summaries, nil
}

// DeleteSession removes the session record. When the deleted session was
// the active one the pointer is cleared; the next CurrentSession call then
// creates a fresh session.
func (m *Manager) DeleteSession(ctx context.Context, id string) error {
	if err := m.store.DeleteRecord(ctx, id); err != nil {
		return err
	}
	current, err := m.store.CurrentPointer(ctx)
	if err != nil {
		return err
	}
	if current == id {
		return m.store.ClearCurrentPointer(ctx)
	}
	return nil
}

// RollbackFailedSend restores a session to its pre-submission state after a
// failed model call: when the last message is a user turn it is removed and
// the record written back, so a retry does not duplicate the turn. Any
// other trailing message means another writer already rolled back or
// replied, and the call is a no-op.
func (m *Manager) RollbackFailedSend(ctx context.Context, id string) error {
	s, err := m.store.GetRecord(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	n := len(s.Messages)
	if n == 0 || s.Messages[n-1].Role != RoleUser {
		return nil
	}
	s.Messages = s.Messages[:n-1]
	return m.store.PutRecord(ctx, s)
}
