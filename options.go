package entitykit

import (
	"log/slog"

	"github.com/dmitrymomot/entitykit/pkg/config"
	"github.com/dmitrymomot/entitykit/pkg/notify"
	"github.com/dmitrymomot/entitykit/pkg/processor"
	"github.com/dmitrymomot/entitykit/svc/user"
)

// Option configures a System.
type Option func(*systemOptions)

type systemOptions struct {
	logger      *slog.Logger
	channel     notify.Channel
	notifier    notify.Notifier
	settings    *config.Store
	processor   processor.Processor[*user.User]
	eventBuffer int
}

func defaultOptions() *systemOptions {
	return &systemOptions{
		logger:      slog.Default(),
		channel:     notify.ChannelEmail,
		settings:    config.NewStore(),
		eventBuffer: 16,
	}
}

// WithLogger sets the logger used by every component of the system.
func WithLogger(log *slog.Logger) Option {
	return func(o *systemOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithNotificationChannel selects the notification channel resolved by the
// factory. New fails when the channel is unknown.
func WithNotificationChannel(channel notify.Channel) Option {
	return func(o *systemOptions) {
		o.channel = channel
	}
}

// WithNotifier injects a concrete notifier, bypassing the channel factory.
func WithNotifier(n notify.Notifier) Option {
	return func(o *systemOptions) {
		o.notifier = n
	}
}

// WithSettings injects a shared settings store instead of a fresh one,
// letting several systems or external components observe the same values.
func WithSettings(s *config.Store) Option {
	return func(o *systemOptions) {
		if s != nil {
			o.settings = s
		}
	}
}

// WithProcessor sets the post-create processing strategy for users.
func WithProcessor(p processor.Processor[*user.User]) Option {
	return func(o *systemOptions) {
		o.processor = p
	}
}

// WithEventBuffer sets the per-subscriber buffer for SubscribeUserEvents.
func WithEventBuffer(size int) Option {
	return func(o *systemOptions) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}
