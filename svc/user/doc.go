// Package user implements the user management service: validated creation
// with welcome notification and a USER_CREATED domain event, plus lookup.
//
// The service is wired from abstractions at the composition root:
//
//	st := store.NewMemory[*user.User]()
//	sender, _ := notify.New(notify.ChannelEmail, log)
//
//	svc := user.New(st, sender, user.WithLogger(log))
//	svc.Bus().Attach(eventbus.NewLogObserver[*user.User](log))
//
//	u, err := svc.Create(ctx, "1", "Alice", "alice@example.com")
//
// Creation is atomic with respect to validation: a rejected user leaves the
// store, the notifier and the event bus completely untouched. After the user
// is persisted, notification and event fan-out are best-effort.
package user
