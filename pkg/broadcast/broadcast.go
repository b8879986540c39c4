package broadcast

import (
	"context"
	"sync"
)

// Message wraps data of type T for type-safe fan-out.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages published on a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel on which published messages arrive.
	// The channel is closed when the subscriber or its broadcaster closes.
	// The context is unused by the in-memory implementation and kept for
	// interface consistency with blocking transports.
	Receive(ctx context.Context) <-chan Message[T]

	// Close releases the subscriber. It is idempotent; after Close the
	// receive channel is closed and no further messages arrive.
	Close() error
}

// Broadcaster publishes messages to every active subscriber.
// Implementations favor dropping messages for slow consumers over blocking
// the publisher.
type Broadcaster[T any] interface {
	// Subscribe registers a new subscriber for all future messages.
	// Cancelling the context tears the subscription down automatically.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast publishes a message to all active subscribers. Slow
	// consumers may miss messages; publishing never blocks on them.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close shuts down the broadcaster and all of its subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch     chan Message[T]
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](buffer int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan Message[T], buffer),
	}
}

func (s *subscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send attempts a non-blocking delivery and reports whether it succeeded.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
