package entitykit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/entitykit/pkg/broadcast"
	"github.com/dmitrymomot/entitykit/pkg/config"
	"github.com/dmitrymomot/entitykit/pkg/eventbus"
	"github.com/dmitrymomot/entitykit/pkg/notify"
	"github.com/dmitrymomot/entitykit/pkg/store"
	"github.com/dmitrymomot/entitykit/svc/user"
)

// System is the composition root of the module and its only public surface.
// It owns one store, one notifier and one user service, pre-wires a logging
// observer and an event stream, and exposes the user operations.
type System struct {
	settings    *config.Store
	users       *user.Service
	notifier    notify.Notifier
	broadcaster *broadcast.Memory[eventbus.Event[*user.User]]
	logger      *slog.Logger
}

// New wires a complete system. By default it uses the email notification
// channel, a fresh settings store and slog.Default(); see Option for
// overrides. It fails only when the configured notification channel is
// unknown.
func New(opts ...Option) (*System, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	notifier := cfg.notifier
	if notifier == nil {
		var err error
		notifier, err = notify.New(cfg.channel, cfg.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create notifier: %w", err)
		}
	}

	svcOpts := []user.Option{user.WithLogger(cfg.logger)}
	if cfg.processor != nil {
		svcOpts = append(svcOpts, user.WithProcessor(cfg.processor))
	}

	users := user.New(store.NewMemory[*user.User](), notifier, svcOpts...)
	users.Bus().Attach(eventbus.NewLogObserver[*user.User](cfg.logger))

	broadcaster := broadcast.NewMemory[eventbus.Event[*user.User]](cfg.eventBuffer)
	users.Bus().Attach(eventbus.NewStreamObserver(broadcaster))

	return &System{
		settings:    cfg.settings,
		users:       users,
		notifier:    notifier,
		broadcaster: broadcaster,
		logger:      cfg.logger,
	}, nil
}

// CreateUser validates and persists a new user, sends the welcome
// notification and publishes the USER_CREATED event. An empty id is replaced
// with a generated one.
func (s *System) CreateUser(ctx context.Context, id, name, email string) (*user.User, error) {
	return s.users.Create(ctx, id, name, email)
}

// GetUser returns the user with the given identifier.
// Absence is reported through the boolean, not as an error.
func (s *System) GetUser(ctx context.Context, id string) (*user.User, bool) {
	return s.users.Get(ctx, id)
}

// Users exposes the user service for advanced wiring, such as attaching
// additional observers to its event bus.
func (s *System) Users() *user.Service {
	return s.users
}

// Settings returns the shared runtime settings store.
// Every component holding the same system observes the same values.
func (s *System) Settings() *config.Store {
	return s.settings
}

// SubscribeUserEvents returns a channel-based subscription to the user
// service's domain events. The subscription ends when ctx is cancelled or
// the system closes.
func (s *System) SubscribeUserEvents(ctx context.Context) broadcast.Subscriber[eventbus.Event[*user.User]] {
	return s.broadcaster.Subscribe(ctx)
}

// Close releases the system's resources, closing all event subscriptions.
func (s *System) Close() error {
	return s.broadcaster.Close()
}
