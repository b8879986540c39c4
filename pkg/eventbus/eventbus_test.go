package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/pkg/eventbus"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingObserver struct {
	events []eventbus.Event[string]
	err    error
}

func (o *recordingObserver) Update(ctx context.Context, event eventbus.Event[string]) error {
	o.events = append(o.events, event)
	return o.err
}

func TestBus_NotifyOrder(t *testing.T) {
	t.Parallel()

	bus := eventbus.New[string]()

	var order []string
	first := eventbus.ObserverFunc(func(ctx context.Context, e eventbus.Event[string]) error {
		order = append(order, "first")
		return nil
	})
	second := eventbus.ObserverFunc(func(ctx context.Context, e eventbus.Event[string]) error {
		order = append(order, "second")
		return nil
	})

	bus.Attach(first)
	bus.Attach(second)
	bus.Notify(context.Background(), "ORDERED", "payload")

	assert.Equal(t, []string{"first", "second"}, order, "delivery follows attachment order")
}

func TestBus_AttachIdempotent(t *testing.T) {
	t.Parallel()

	bus := eventbus.New[string]()
	obs := &recordingObserver{}

	bus.Attach(obs)
	bus.Attach(obs)
	require.Equal(t, 1, bus.ObserverCount())

	bus.Notify(context.Background(), "ONCE", "payload")
	assert.Len(t, obs.events, 1, "duplicate attach must not cause duplicate delivery")
}

func TestBus_AttachNil(t *testing.T) {
	t.Parallel()

	bus := eventbus.New[string]()
	bus.Attach(nil)
	assert.Zero(t, bus.ObserverCount())
}

func TestBus_Detach(t *testing.T) {
	t.Parallel()

	bus := eventbus.New[string]()
	kept := &recordingObserver{}
	removed := &recordingObserver{}

	bus.Attach(kept)
	bus.Attach(removed)
	bus.Detach(removed)

	// Detaching an observer that is no longer attached is a no-op.
	bus.Detach(removed)
	require.Equal(t, 1, bus.ObserverCount())

	bus.Notify(context.Background(), "AFTER_DETACH", "payload")
	assert.Len(t, kept.events, 1)
	assert.Empty(t, removed.events)
}

func TestBus_FailingObserverDoesNotStopFanOut(t *testing.T) {
	t.Parallel()

	bus := eventbus.New(eventbus.WithLogger[string](discardLogger()))

	failing := &recordingObserver{err: errors.New("observer broke")}
	healthy := &recordingObserver{}

	bus.Attach(failing)
	bus.Attach(healthy)
	bus.Notify(context.Background(), "BEST_EFFORT", "payload")

	assert.Len(t, failing.events, 1)
	assert.Len(t, healthy.events, 1, "observers after a failing one still receive the event")
}

func TestBus_EventMetadata(t *testing.T) {
	t.Parallel()

	bus := eventbus.New[string]()
	obs := &recordingObserver{}
	bus.Attach(obs)

	bus.Notify(context.Background(), "META", "the-payload")

	require.Len(t, obs.events, 1)
	event := obs.events[0]
	assert.Equal(t, "META", event.Name)
	assert.Equal(t, "the-payload", event.Payload)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestObserverFunc_DistinctHandles(t *testing.T) {
	t.Parallel()

	bus := eventbus.New[string]()

	calls := 0
	fn := func(ctx context.Context, e eventbus.Event[string]) error {
		calls++
		return nil
	}

	// Two handles around the same function are independent observers.
	bus.Attach(eventbus.ObserverFunc(fn))
	bus.Attach(eventbus.ObserverFunc(fn))
	require.Equal(t, 2, bus.ObserverCount())

	bus.Notify(context.Background(), "TWICE", "payload")
	assert.Equal(t, 2, calls)
}
