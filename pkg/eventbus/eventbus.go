package eventbus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/entitykit/pkg/logger"
)

// Event is a named occurrence carried to observers with a typed payload.
type Event[T any] struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Payload    T         `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent creates an event with a generated identifier and the current time.
func NewEvent[T any](name string, payload T) Event[T] {
	return Event[T]{
		ID:         uuid.New().String(),
		Name:       name,
		Payload:    payload,
		OccurredAt: time.Now(),
	}
}

// Observer receives events published on a Bus.
//
// Observer membership on a Bus is tracked by interface identity, so
// implementations must be comparable (use pointer receivers). Wrap plain
// functions with ObserverFunc to obtain a comparable handle.
type Observer[T any] interface {
	// Update handles a single event. A non-nil error is logged by the bus
	// and does not stop delivery to the remaining observers.
	Update(ctx context.Context, event Event[T]) error
}

// Bus delivers events to attached observers synchronously, in attachment
// order, on the caller's goroutine. All methods are safe for concurrent use.
type Bus[T any] struct {
	observers []Observer[T]
	logger    *slog.Logger
	mu        sync.RWMutex
}

// Option configures a Bus.
type Option[T any] func(*Bus[T])

// WithLogger sets the logger used to report failing observers.
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(b *Bus[T]) {
		if log != nil {
			b.logger = log
		}
	}
}

// New creates an event bus with no observers attached.
func New[T any](opts ...Option[T]) *Bus[T] {
	b := &Bus[T]{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach registers an observer. Attaching an observer that is already
// present is a no-op, so each observer receives every event exactly once.
func (b *Bus[T]) Attach(o Observer[T]) {
	if o == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.observers {
		if existing == o {
			return
		}
	}
	b.observers = append(b.observers, o)
}

// Detach removes an observer if present and is a no-op otherwise.
func (b *Bus[T]) Detach(o Observer[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, existing := range b.observers {
		if existing == o {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// Notify publishes a named event to every currently attached observer,
// synchronously and in attachment order. A failing observer is logged and
// skipped; the remaining observers still receive the event (best-effort
// fan-out, matching best-effort delivery semantics elsewhere in the module).
func (b *Bus[T]) Notify(ctx context.Context, name string, payload T) {
	// Snapshot under the read lock so observer callbacks run without
	// holding it; an observer may attach or detach during delivery.
	b.mu.RLock()
	observers := make([]Observer[T], len(b.observers))
	copy(observers, b.observers)
	b.mu.RUnlock()

	event := NewEvent(name, payload)
	for _, o := range observers {
		if err := o.Update(ctx, event); err != nil {
			b.logger.LogAttrs(ctx, slog.LevelError, "Observer failed to handle event",
				slog.String("event_id", event.ID),
				logger.EventName(event.Name),
				logger.Error(err),
			)
		}
	}
}

// ObserverCount returns the number of currently attached observers.
func (b *Bus[T]) ObserverCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.observers)
}
