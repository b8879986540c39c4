package processor

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/entitykit/pkg/logger"
)

// Processor applies an interchangeable processing strategy to a value.
// Concrete strategies are selected at composition time.
type Processor[T any] interface {
	Process(ctx context.Context, value T) error
}

// Standard is the baseline processing strategy.
// It records the processed value in the log.
type Standard[T any] struct {
	logger *slog.Logger
}

// NewStandard creates the baseline strategy.
// A nil logger falls back to slog.Default().
func NewStandard[T any](log *slog.Logger) *Standard[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Standard[T]{logger: log}
}

func (p *Standard[T]) Process(ctx context.Context, value T) error {
	p.logger.LogAttrs(ctx, slog.LevelInfo, "Standard processing",
		logger.Component("processor"),
		slog.Any("value", value),
	)
	return nil
}

// Premium is the elevated processing strategy.
// It records the processed value with the premium tier marker.
type Premium[T any] struct {
	logger *slog.Logger
}

// NewPremium creates the elevated strategy.
// A nil logger falls back to slog.Default().
func NewPremium[T any](log *slog.Logger) *Premium[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Premium[T]{logger: log}
}

func (p *Premium[T]) Process(ctx context.Context, value T) error {
	p.logger.LogAttrs(ctx, slog.LevelInfo, "Premium processing",
		logger.Component("processor"),
		slog.String("tier", "premium"),
		slog.Any("value", value),
	)
	return nil
}
