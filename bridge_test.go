package teachpy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/teachpy"
	"github.com/fwojciec/teachpy/mock"
)

func countingDialer(opens *int) *mock.Dialer {
	return &mock.Dialer{
		OpenFn: func(context.Context) (teachpy.Conversation, error) {
			*opens++
			return &mock.Conversation{
				SendFn: func(_ context.Context, text string) (string, error) {
					return text, nil
				},
			}, nil
		},
	}
}

func TestBridge_ReusesHandleForSameSession(t *testing.T) {
	t.Parallel()
	opens := 0
	bridge := teachpy.NewBridge(countingDialer(&opens))
	ctx := context.Background()

	first, err := bridge.Conversation(ctx, "sess-1")
	require.NoError(t, err)
	second, err := bridge.Conversation(ctx, "sess-1")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, opens)
}

func TestBridge_RecreatesHandleOnSessionSwitch(t *testing.T) {
	t.Parallel()
	opens := 0
	bridge := teachpy.NewBridge(countingDialer(&opens))
	ctx := context.Background()

	first, err := bridge.Conversation(ctx, "sess-1")
	require.NoError(t, err)
	second, err := bridge.Conversation(ctx, "sess-2")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, opens)
}

func TestBridge_InvalidateForcesReopen(t *testing.T) {
	t.Parallel()
	opens := 0
	bridge := teachpy.NewBridge(countingDialer(&opens))
	ctx := context.Background()

	_, err := bridge.Conversation(ctx, "sess-1")
	require.NoError(t, err)

	bridge.Invalidate()

	_, err = bridge.Conversation(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, opens)
}

func TestBridge_OpenFailurePropagates(t *testing.T) {
	t.Parallel()
	boom := errors.New("quota exceeded")
	bridge := teachpy.NewBridge(&mock.Dialer{
		OpenFn: func(context.Context) (teachpy.Conversation, error) {
			return nil, &teachpy.EndpointError{Err: boom}
		},
	})

	_, err := bridge.Conversation(context.Background(), "sess-1")
	var epErr *teachpy.EndpointError
	require.ErrorAs(t, err, &epErr)
	assert.ErrorIs(t, err, boom)
}
