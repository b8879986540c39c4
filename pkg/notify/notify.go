package notify

import "context"

// Channel identifies a notification delivery channel.
type Channel string

const (
	// ChannelEmail delivers notifications as email messages.
	ChannelEmail Channel = "EMAIL"
	// ChannelSMS delivers notifications as text messages.
	ChannelSMS Channel = "SMS"
)

// Notifier sends a message to a recipient.
// Delivery is fire-and-forget: there is no retry and no delivery
// confirmation beyond the returned error.
type Notifier interface {
	Send(ctx context.Context, recipient, message string) error
}
