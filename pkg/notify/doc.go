// Package notify defines the notification boundary of the module.
//
// The Notifier interface is the only contract services depend on; the
// shipped implementations are development stubs that record deliveries in
// the structured log. A production deployment would swap in a real provider
// behind the same interface.
//
// The factory resolves a channel tag at composition time:
//
//	sender, err := notify.New(notify.ChannelEmail, log)
//	if err != nil {
//		// unknown channel tag
//	}
//	_ = sender.Send(ctx, "alice@example.com", "Welcome!")
package notify
