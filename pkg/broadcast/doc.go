// Package broadcast provides type-safe one-to-many message fan-out over
// channels.
//
// It bridges synchronous producers (such as the event bus) to consumers that
// prefer channel semantics: each subscriber owns a buffered channel, and
// publishing never blocks on a slow consumer. Subscribers that fall behind
// are dropped rather than allowed to stall the producer.
//
// Basic usage:
//
//	b := broadcast.NewMemory[string](10)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			fmt.Println(msg.Data)
//		}
//	}()
//
//	b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
// Subscriptions are cleaned up when their context is cancelled, when their
// buffer overflows, or when the broadcaster closes.
package broadcast
