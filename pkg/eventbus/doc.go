// Package eventbus implements a typed, synchronous subject/observer
// mechanism for in-process domain events.
//
// A Bus delivers each published event to every attached observer on the
// caller's goroutine, in attachment order. Membership is identity-based and
// idempotent: attaching the same observer twice results in a single delivery
// per event, and detaching an absent observer is a no-op.
//
// A failing observer does not interrupt fan-out. Its error is logged and
// delivery continues with the remaining observers, so one misbehaving
// listener cannot starve the others.
//
// Basic usage:
//
//	bus := eventbus.New[*User]()
//
//	bus.Attach(eventbus.NewLogObserver[*User](log))
//	bus.Attach(eventbus.ObserverFunc(func(ctx context.Context, e eventbus.Event[*User]) error {
//		fmt.Println("created:", e.Payload.Name)
//		return nil
//	}))
//
//	bus.Notify(ctx, "USER_CREATED", user)
//
// StreamObserver bridges the synchronous bus to pkg/broadcast, letting
// transport layers consume events over channels without blocking publishers.
package eventbus
