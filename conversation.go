package teachpy

import "context"

// Conversation is a live, stateful handle to the model endpoint. The
// endpoint accumulates turn history on its side, so a handle must never be
// shared across two different session ids.
type Conversation interface {
	// Send forwards one user turn and returns the model's reply. It does
	// not retry; failures are returned as *EndpointError.
	Send(ctx context.Context, text string) (string, error)
}

// Dialer opens fresh Conversation handles. Each handle is seeded with the
// persona instruction text and empty history at creation time.
type Dialer interface {
	Open(ctx context.Context) (Conversation, error)
}

// EndpointError reports a failed model endpoint call, carrying the
// underlying cause.
type EndpointError struct {
	Err error
}

func (e *EndpointError) Error() string {
	return "endpoint: " + e.Err.Error()
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}
