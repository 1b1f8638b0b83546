package teachpy_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/teachpy"
	"github.com/fwojciec/teachpy/mock"
)

// newApp wires an App over an in-memory store, a fixed clock, sequential
// ids, and the given dialer.
func newApp(t *testing.T, dialer teachpy.Dialer) *teachpy.App {
	t.Helper()
	seq := 0
	mgr := teachpy.NewManager(mock.NewMemoryStore(),
		teachpy.WithClock(func() time.Time {
			seq++
			return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Minute)
		}),
		teachpy.WithIDFunc(func() string {
			return fmt.Sprintf("sess-%d", seq)
		}),
	)
	return teachpy.NewApp(mgr, teachpy.NewBridge(dialer))
}

func echoDialer() *mock.Dialer {
	return &mock.Dialer{
		OpenFn: func(context.Context) (teachpy.Conversation, error) {
			return &mock.Conversation{
				SendFn: func(_ context.Context, text string) (string, error) {
					return "echo: " + text, nil
				},
			}, nil
		},
	}
}

func TestApp_Refresh_CreatesInitialSession(t *testing.T) {
	t.Parallel()
	app := newApp(t, echoDialer())

	view, err := app.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, view.CurrentID)
	require.Len(t, view.Sessions, 1)
	require.Len(t, view.Messages, 1)
	assert.Equal(t, teachpy.Greeting, view.Messages[0].Content)
}

func TestApp_SubmitMessage_PersistsBothTurns(t *testing.T) {
	t.Parallel()
	app := newApp(t, echoDialer())
	ctx := context.Background()

	_, err := app.Refresh(ctx)
	require.NoError(t, err)

	view, err := app.SubmitMessage(ctx, "what is a tuple?")
	require.NoError(t, err)
	require.Len(t, view.Messages, 3)
	assert.Equal(t, teachpy.RoleUser, view.Messages[1].Role)
	assert.Equal(t, "what is a tuple?", view.Messages[1].Content)
	assert.Equal(t, teachpy.RoleAssistant, view.Messages[2].Role)
	assert.Equal(t, "echo: what is a tuple?", view.Messages[2].Content)
}

func TestApp_SubmitMessage_EndpointFailureRollsBack(t *testing.T) {
	t.Parallel()
	boom := errors.New("content policy")
	dialer := &mock.Dialer{
		OpenFn: func(context.Context) (teachpy.Conversation, error) {
			return &mock.Conversation{
				SendFn: func(context.Context, string) (string, error) {
					return "", &teachpy.EndpointError{Err: boom}
				},
			}, nil
		},
	}
	app := newApp(t, dialer)
	ctx := context.Background()

	before, err := app.Refresh(ctx)
	require.NoError(t, err)

	_, err = app.SubmitMessage(ctx, "doomed question")
	var epErr *teachpy.EndpointError
	require.ErrorAs(t, err, &epErr)
	assert.ErrorIs(t, err, boom)

	// The orphaned user turn was rolled back.
	after, err := app.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(before.Messages), len(after.Messages))
	last := after.Messages[len(after.Messages)-1]
	assert.Equal(t, teachpy.RoleAssistant, last.Role)
}

func TestApp_NewSession_SwitchesCurrent(t *testing.T) {
	t.Parallel()
	app := newApp(t, echoDialer())
	ctx := context.Background()

	first, err := app.Refresh(ctx)
	require.NoError(t, err)

	second, err := app.NewSession(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.CurrentID, second.CurrentID)
	assert.Len(t, second.Sessions, 2)
}

func TestApp_SelectSession_SwitchesBack(t *testing.T) {
	t.Parallel()
	app := newApp(t, echoDialer())
	ctx := context.Background()

	first, err := app.Refresh(ctx)
	require.NoError(t, err)
	_, err = app.NewSession(ctx)
	require.NoError(t, err)

	view, err := app.SelectSession(ctx, first.CurrentID)
	require.NoError(t, err)
	assert.Equal(t, first.CurrentID, view.CurrentID)
}

func TestApp_DeleteCurrentSession_CreatesReplacement(t *testing.T) {
	t.Parallel()
	app := newApp(t, echoDialer())
	ctx := context.Background()

	view, err := app.Refresh(ctx)
	require.NoError(t, err)
	deleted := view.CurrentID

	after, err := app.DeleteSession(ctx, deleted)
	require.NoError(t, err)
	assert.NotEqual(t, deleted, after.CurrentID)
	require.Len(t, after.Sessions, 1)
	assert.Equal(t, after.CurrentID, after.Sessions[0].ID)
}

func TestApp_DeleteOtherSession_KeepsCurrent(t *testing.T) {
	t.Parallel()
	app := newApp(t, echoDialer())
	ctx := context.Background()

	first, err := app.Refresh(ctx)
	require.NoError(t, err)
	second, err := app.NewSession(ctx)
	require.NoError(t, err)

	view, err := app.DeleteSession(ctx, first.CurrentID)
	require.NoError(t, err)
	assert.Equal(t, second.CurrentID, view.CurrentID)
	assert.Len(t, view.Sessions, 1)
}

func TestApp_SessionSwitchDoesNotBleedHandles(t *testing.T) {
	t.Parallel()
	opens := 0
	dialer := &mock.Dialer{
		OpenFn: func(context.Context) (teachpy.Conversation, error) {
			opens++
			return &mock.Conversation{
				SendFn: func(_ context.Context, text string) (string, error) { return text, nil },
			}, nil
		},
	}
	app := newApp(t, dialer)
	ctx := context.Background()

	first, err := app.Refresh(ctx)
	require.NoError(t, err)
	_, err = app.SubmitMessage(ctx, "one")
	require.NoError(t, err)
	require.Equal(t, 1, opens)

	// Same session: the handle is reused.
	_, err = app.SubmitMessage(ctx, "two")
	require.NoError(t, err)
	require.Equal(t, 1, opens)

	// Switching sessions discards the handle.
	_, err = app.NewSession(ctx)
	require.NoError(t, err)
	_, err = app.SubmitMessage(ctx, "three")
	require.NoError(t, err)
	require.Equal(t, 2, opens)

	// Switching back opens yet another fresh handle.
	_, err = app.SelectSession(ctx, first.CurrentID)
	require.NoError(t, err)
	_, err = app.SubmitMessage(ctx, "four")
	require.NoError(t, err)
	assert.Equal(t, 3, opens)
}
