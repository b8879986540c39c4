package notify

import (
	"fmt"
	"log/slog"
)

// New resolves a channel tag to a concrete Notifier.
// Unrecognized channels fail with ErrUnknownChannel naming the tag.
func New(channel Channel, log *slog.Logger) (Notifier, error) {
	switch channel {
	case ChannelEmail:
		return NewEmailNotifier(log), nil
	case ChannelSMS:
		return NewSMSNotifier(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
}
