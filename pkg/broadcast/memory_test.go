package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/pkg/broadcast"
)

func receiveOne[T any](t *testing.T, sub broadcast.Subscriber[T]) T {
	t.Helper()

	select {
	case msg, ok := <-sub.Receive(context.Background()):
		require.True(t, ok, "channel closed before a message arrived")
		return msg.Data
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		var zero T
		return zero
	}
}

func TestMemory_BroadcastToAllSubscribers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := broadcast.NewMemory[string](4)
	defer b.Close()

	first := b.Subscribe(ctx)
	second := b.Subscribe(ctx)

	require.NoError(t, b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"}))

	assert.Equal(t, "hello", receiveOne(t, first))
	assert.Equal(t, "hello", receiveOne(t, second))
}

func TestMemory_SlowSubscriberDropped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := broadcast.NewMemory[int](1)
	defer b.Close()

	sub := b.Subscribe(ctx)

	// First message fills the buffer, second overflows it and the
	// subscription gets torn down instead of blocking the publisher.
	require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 1}))
	require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 2}))

	assert.Equal(t, 1, receiveOne(t, sub))

	assert.Eventually(t, func() bool {
		_, ok := <-sub.Receive(ctx)
		return !ok
	}, time.Second, 5*time.Millisecond, "overflowed subscriber should be closed")
}

func TestMemory_ContextCancellationCleansUp(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemory[string](4)
	defer b.Close()

	subCtx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(subCtx)
	cancel()

	assert.Eventually(t, func() bool {
		_, ok := <-sub.Receive(context.Background())
		return !ok
	}, time.Second, 5*time.Millisecond, "cancelled subscription should be closed")
}

func TestMemory_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := broadcast.NewMemory[string](4)

	sub := b.Subscribe(ctx)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, ok := <-sub.Receive(ctx)
	assert.False(t, ok, "subscribers are closed with the broadcaster")

	// Subscriptions after Close come back already closed.
	late := b.Subscribe(ctx)
	_, ok = <-late.Receive(ctx)
	assert.False(t, ok)

	// Broadcast after Close is a no-op.
	require.NoError(t, b.Broadcast(ctx, broadcast.Message[string]{Data: "ignored"}))
}
