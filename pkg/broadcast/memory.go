package broadcast

import (
	"context"
	"sync"
)

// Memory is an in-process Broadcaster. When a subscriber's buffer is full
// the message is dropped for that subscriber and the subscription is torn
// down, keeping Broadcast non-blocking. All methods are safe for concurrent
// use.
type Memory[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	buffer      int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewMemory creates an in-process broadcaster whose subscribers buffer up to
// the given number of messages. A minimum buffer of 1 is enforced; a
// zero-size buffer would make every send blocking.
func NewMemory[T any](buffer int) *Memory[T] {
	return &Memory[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		buffer:      max(buffer, 1),
	}
}

// Subscribe registers a new subscriber for all future messages.
// The subscription is removed automatically when ctx is cancelled.
// After Close, Subscribe returns an already-closed subscriber.
func (b *Memory[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.buffer)
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Broadcast publishes a message to all active subscribers without blocking.
// Subscribers whose buffer is full miss the message and are removed.
// Returns nil even when some subscribers did not receive the message.
func (b *Memory[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for sub := range b.subscribers {
		if !sub.send(msg) {
			// Removal needs the write lock, so it runs outside this
			// read-locked section.
			go b.unsubscribe(sub)
		}
	}

	return nil
}

// Close shuts down the broadcaster and closes every subscriber.
// It is safe to call multiple times.
func (b *Memory[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	// Outstanding context-cancellation goroutines must finish before Close
	// returns, otherwise they could race with a re-used broadcaster.
	b.cleanupWg.Wait()

	return nil
}

func (b *Memory[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
