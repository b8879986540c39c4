// Package logger builds configured log/slog loggers with consistent
// attribute conventions for the module.
//
// The factory applies functional options for level, format and output, and
// wraps the handler with a decorator that injects attributes extracted from
// the logging context:
//
//	log := logger.New(
//		logger.WithDevelopment("entitykit"),
//		logger.WithContextExtractors(requestIDExtractor),
//	)
//	logger.SetAsDefault(log)
//
// Attr helpers (Error, EntityID, EventName, Recipient, Component) keep log
// keys uniform across packages.
package logger
