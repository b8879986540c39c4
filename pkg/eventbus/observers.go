package eventbus

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/entitykit/pkg/broadcast"
	"github.com/dmitrymomot/entitykit/pkg/logger"
)

// ObserverFunc wraps a plain function in a comparable observer handle.
// Each call returns a distinct handle, so attaching the same handle twice is
// deduplicated while two handles around the same function are independent.
func ObserverFunc[T any](fn func(ctx context.Context, event Event[T]) error) Observer[T] {
	return &funcObserver[T]{fn: fn}
}

type funcObserver[T any] struct {
	fn func(ctx context.Context, event Event[T]) error
}

func (o *funcObserver[T]) Update(ctx context.Context, event Event[T]) error {
	return o.fn(ctx, event)
}

// LogObserver writes a structured log line for every event it receives.
// Useful as a default side-effect listener and for development visibility.
type LogObserver[T any] struct {
	logger *slog.Logger
}

// NewLogObserver creates a logging observer.
// A nil logger falls back to slog.Default().
func NewLogObserver[T any](log *slog.Logger) *LogObserver[T] {
	if log == nil {
		log = slog.Default()
	}
	return &LogObserver[T]{logger: log}
}

func (o *LogObserver[T]) Update(ctx context.Context, event Event[T]) error {
	o.logger.LogAttrs(ctx, slog.LevelInfo, "Event published",
		slog.String("event_id", event.ID),
		logger.EventName(event.Name),
		slog.Any("payload", event.Payload),
	)
	return nil
}

// StreamObserver forwards bus events to a broadcaster, bridging synchronous
// observer delivery to channel-based subscribers.
type StreamObserver[T any] struct {
	broadcaster broadcast.Broadcaster[Event[T]]
}

// NewStreamObserver creates an observer that republishes every event on the
// given broadcaster.
func NewStreamObserver[T any](b broadcast.Broadcaster[Event[T]]) *StreamObserver[T] {
	return &StreamObserver[T]{broadcaster: b}
}

func (o *StreamObserver[T]) Update(ctx context.Context, event Event[T]) error {
	return o.broadcaster.Broadcast(ctx, broadcast.Message[Event[T]]{Data: event})
}
