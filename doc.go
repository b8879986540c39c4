// Package entitykit is a minimal, type-safe entity management toolkit.
//
// It composes a generic thread-safe repository (pkg/store), a synchronous
// observer-based event bus (pkg/eventbus), a pluggable notification boundary
// (pkg/notify) and rule-based validation (pkg/validator) behind a single
// facade, with the user service (svc/user) as the shipped entity type.
//
// Basic usage:
//
//	system, err := entitykit.New(
//		entitykit.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	defer system.Close()
//
//	u, err := system.CreateUser(ctx, "1", "Alice", "alice@example.com")
//	if err != nil {
//		return err
//	}
//
//	if found, ok := system.GetUser(ctx, u.ID); ok {
//		fmt.Println(found.Name)
//	}
//
// Creating a user validates the input, persists the entity, sends a welcome
// notification and publishes a USER_CREATED event to attached observers.
// The facade pre-wires a logging observer and a channel-based event stream
// reachable via SubscribeUserEvents.
//
// Every component is also usable on its own; the facade is plain wiring
// with no extra logic.
package entitykit
