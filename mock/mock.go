// Package mock provides test doubles for teachpy interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/fwojciec/teachpy"
)

// Interface compliance checks.
var (
	_ teachpy.Store        = (*Store)(nil)
	_ teachpy.Dialer       = (*Dialer)(nil)
	_ teachpy.Conversation = (*Conversation)(nil)
)

// Store is a test double for teachpy.Store.
// Set the function fields for the methods you need.
type Store struct {
	GetRecordFn           func(ctx context.Context, id string) (teachpy.Session, error)
	PutRecordFn           func(ctx context.Context, s teachpy.Session) error
	DeleteRecordFn        func(ctx context.Context, id string) error
	ListRecordsFn         func(ctx context.Context) ([]teachpy.Session, error)
	CurrentPointerFn      func(ctx context.Context) (string, error)
	SetCurrentPointerFn   func(ctx context.Context, id string) error
	ClearCurrentPointerFn func(ctx context.Context) error
}

// GetRecord delegates to GetRecordFn.
func (s *Store) GetRecord(ctx context.Context, id string) (teachpy.Session, error) {
	return s.GetRecordFn(ctx, id)
}

// PutRecord delegates to PutRecordFn.
func (s *Store) PutRecord(ctx context.Context, sess teachpy.Session) error {
	return s.PutRecordFn(ctx, sess)
}

// DeleteRecord delegates to DeleteRecordFn.
func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

// ListRecords delegates to ListRecordsFn.
func (s *Store) ListRecords(ctx context.Context) ([]teachpy.Session, error) {
	return s.ListRecordsFn(ctx)
}

// CurrentPointer delegates to CurrentPointerFn.
func (s *Store) CurrentPointer(ctx context.Context) (string, error) {
	return s.CurrentPointerFn(ctx)
}

// SetCurrentPointer delegates to SetCurrentPointerFn.
func (s *Store) SetCurrentPointer(ctx context.Context, id string) error {
	return s.SetCurrentPointerFn(ctx, id)
}

// ClearCurrentPointer delegates to ClearCurrentPointerFn.
func (s *Store) ClearCurrentPointer(ctx context.Context) error {
	return s.ClearCurrentPointerFn(ctx)
}

// Dialer is a test double for teachpy.Dialer.
// Set OpenFn before calling Open.
type Dialer struct {
	OpenFn func(ctx context.Context) (teachpy.Conversation, error)
}

// Open delegates to OpenFn.
func (d *Dialer) Open(ctx context.Context) (teachpy.Conversation, error) {
	return d.OpenFn(ctx)
}

// Conversation is a test double for teachpy.Conversation.
// Set SendFn before calling Send.
type Conversation struct {
	SendFn func(ctx context.Context, text string) (string, error)
}

// Send delegates to SendFn.
func (c *Conversation) Send(ctx context.Context, text string) (string, error) {
	return c.SendFn(ctx, text)
}
