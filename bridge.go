package teachpy

import "context"

// Bridge owns the mapping from the active session id to a live model
// conversation handle. A handle accumulates turn history on the endpoint
// side, so it is discarded and recreated whenever the active session
// changes and is never reused across sessions.
type Bridge struct {
	dialer    Dialer
	sessionID string
	conv      Conversation
}

// NewBridge creates a Bridge that opens handles through dialer.
func NewBridge(dialer Dialer) *Bridge {
	return &Bridge{dialer: dialer}
}

// Conversation returns the handle for sessionID, reusing the current one
// while the active session is unchanged and opening a fresh handle
// otherwise.
func (b *Bridge) Conversation(ctx context.Context, sessionID string) (Conversation, error) {
	if b.conv != nil && b.sessionID == sessionID {
		return b.conv, nil
	}
	conv, err := b.dialer.Open(ctx)
	if err != nil {
		return nil, err
	}
	b.sessionID = sessionID
	b.conv = conv
	return conv, nil
}

// Invalidate discards the current handle. The next Conversation call opens
// a fresh one.
func (b *Bridge) Invalidate() {
	b.sessionID = ""
	b.conv = nil
}
