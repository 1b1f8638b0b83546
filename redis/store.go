package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fwojciec/teachpy"
	pjson "github.com/fwojciec/teachpy/json"
)

// Interface compliance check.
var _ teachpy.Store = (*Store)(nil)

// Store implements [teachpy.Store] over a Redis client.
type Store struct {
	client      redis.Cmdable
	sessionsKey string
	pointerKey  string
}

// Option configures a [Store].
type Option func(*Store)

// WithKeys overrides the hash key holding session records and the string
// key holding the current-session pointer.
func WithKeys(sessionsKey, pointerKey string) Option {
	return func(s *Store) {
		s.sessionsKey = sessionsKey
		s.pointerKey = pointerKey
	}
}

// New creates a Store over the given Redis client.
func New(client redis.Cmdable, opts ...Option) *Store {
	s := &Store{
		client:      client,
		sessionsKey: defaultSessionsKey,
		pointerKey:  defaultPointerKey,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open connects to the Redis instance named by url and verifies the
// connection with a ping.
func Open(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// GetRecord returns the session stored under id. The hash field key is
// authoritative for the identifier; the decoded record's ID is normalized
// to it so call sites never see a divergent representation.
func (s *Store) GetRecord(ctx context.Context, id string) (teachpy.Session, error) {
	data, err := s.client.HGet(ctx, s.sessionsKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return teachpy.Session{}, teachpy.ErrSessionNotFound
	}
	if err != nil {
		return teachpy.Session{}, fmt.Errorf("get session %s: %w", id, err)
	}
	sess, err := pjson.UnmarshalSession([]byte(data))
	if err != nil {
		return teachpy.Session{}, fmt.Errorf("session %s: %w", id, err)
	}
	sess.ID = id
	return sess, nil
}

// PutRecord overwrites the full session record.
func (s *Store) PutRecord(ctx context.Context, sess teachpy.Session) error {
	data, err := pjson.MarshalSession(sess)
	if err != nil {
		return err
	}
	if err := s.client.HSet(ctx, s.sessionsKey, sess.ID, data).Err(); err != nil {
		return fmt.Errorf("put session %s: %w", sess.ID, err)
	}
	return nil
}

// DeleteRecord removes the session record. Removing an absent record is not
// an error.
func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	if err := s.client.HDel(ctx, s.sessionsKey, id).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// ListRecords returns all session records in store order.
func (s *Store) ListRecords(ctx context.Context) ([]teachpy.Session, error) {
	entries, err := s.client.HGetAll(ctx, s.sessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sessions := make([]teachpy.Session, 0, len(entries))
	for id, data := range entries {
		sess, err := pjson.UnmarshalSession([]byte(data))
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", id, err)
		}
		sess.ID = id
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// CurrentPointer returns the active session id, or "" when unset.
func (s *Store) CurrentPointer(ctx context.Context) (string, error) {
	id, err := s.client.Get(ctx, s.pointerKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get current session: %w", err)
	}
	return id, nil
}

// SetCurrentPointer names id as the active session.
func (s *Store) SetCurrentPointer(ctx context.Context, id string) error {
	if err := s.client.Set(ctx, s.pointerKey, id, 0).Err(); err != nil {
		return fmt.Errorf("set current session: %w", err)
	}
	return nil
}

// ClearCurrentPointer removes the active-session pointer.
func (s *Store) ClearCurrentPointer(ctx context.Context) error {
	if err := s.client.Del(ctx, s.pointerKey).Err(); err != nil {
		return fmt.Errorf("clear current session: %w", err)
	}
	return nil
}
