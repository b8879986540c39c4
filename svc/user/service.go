package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/entitykit/pkg/entity"
	"github.com/dmitrymomot/entitykit/pkg/eventbus"
	"github.com/dmitrymomot/entitykit/pkg/logger"
	"github.com/dmitrymomot/entitykit/pkg/notify"
	"github.com/dmitrymomot/entitykit/pkg/processor"
	"github.com/dmitrymomot/entitykit/pkg/store"
)

// EventUserCreated is published on the service's bus after a user is
// persisted, with the created user as payload.
const EventUserCreated = "USER_CREATED"

// Service orchestrates user creation and lookup.
// It depends only on the store and notifier abstractions, never on concrete
// implementations.
type Service struct {
	store     store.Store[*User]
	notifier  notify.Notifier
	bus       *eventbus.Bus[*User]
	processor processor.Processor[*User]
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithBus replaces the internally created event bus.
// Useful when several services publish on a shared bus.
func WithBus(bus *eventbus.Bus[*User]) Option {
	return func(s *Service) {
		if bus != nil {
			s.bus = bus
		}
	}
}

// WithProcessor sets an optional strategy applied to each created user after
// the creation event is published. Processing is best-effort.
func WithProcessor(p processor.Processor[*User]) Option {
	return func(s *Service) {
		s.processor = p
	}
}

// New creates a user service on top of the given store and notifier.
func New(st store.Store[*User], notifier notify.Notifier, opts ...Option) *Service {
	s := &Service{
		store:    st,
		notifier: notifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = eventbus.New(eventbus.WithLogger[*User](s.logger))
	}
	return s
}

// Bus returns the bus on which the service publishes its events, so callers
// can attach observers.
func (s *Service) Bus() *eventbus.Bus[*User] {
	return s.bus
}

// Create validates and persists a new user, sends a welcome notification and
// publishes EventUserCreated.
//
// The identifier may be empty, in which case one is generated. Validation
// failure rejects the whole operation atomically: nothing is stored, nothing
// is sent, nothing is published. Once the user is persisted, notification
// and event delivery are best-effort; their failures are logged and the
// created user is still returned (the "log and continue" half of the
// persisted-but-unnotified trade-off, chosen to match manager-style delivery
// elsewhere in the module).
func (s *Service) Create(ctx context.Context, id, name, email string) (*User, error) {
	if id == "" {
		id = uuid.New().String()
	}

	u := &User{
		Record: entity.NewRecord(id),
		Name:   name,
		Email:  email,
		Status: StatusActive,
	}

	if err := u.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidUserData, err)
	}

	if err := s.store.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if err := s.notifier.Send(ctx, u.Email, "Welcome!"); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to send welcome notification, user was created",
			logger.Component("user"),
			logger.EntityID(u.ID),
			logger.Recipient(u.Email),
			logger.Error(err),
		)
	}

	s.bus.Notify(ctx, EventUserCreated, u)

	if s.processor != nil {
		if err := s.processor.Process(ctx, u); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "Post-create processing failed",
				logger.Component("user"),
				logger.EntityID(u.ID),
				logger.Error(err),
			)
		}
	}

	return u, nil
}

// Get returns the user with the given identifier.
// Absence is reported through the boolean, not as an error.
func (s *Service) Get(ctx context.Context, id string) (*User, bool) {
	return s.store.Get(ctx, id)
}
