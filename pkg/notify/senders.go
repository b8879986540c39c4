package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/entitykit/pkg/logger"
)

// EmailNotifier is a development implementation of Notifier that records
// email deliveries in the log instead of talking to a mail provider.
type EmailNotifier struct {
	logger *slog.Logger
}

// NewEmailNotifier creates an email notifier writing to the given logger.
// A nil logger falls back to slog.Default().
func NewEmailNotifier(log *slog.Logger) *EmailNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &EmailNotifier{logger: log}
}

// Send logs the email delivery. It fails only when the recipient is empty.
func (n *EmailNotifier) Send(ctx context.Context, recipient, message string) error {
	if recipient == "" {
		return fmt.Errorf("%w: email", ErrEmptyRecipient)
	}

	n.logger.LogAttrs(ctx, slog.LevelInfo, "Email sent",
		logger.Component("notify"),
		logger.Recipient(recipient),
		slog.String("message", message),
	)
	return nil
}

// SMSNotifier is a development implementation of Notifier that records
// SMS deliveries in the log instead of talking to an SMS gateway.
type SMSNotifier struct {
	logger *slog.Logger
}

// NewSMSNotifier creates an SMS notifier writing to the given logger.
// A nil logger falls back to slog.Default().
func NewSMSNotifier(log *slog.Logger) *SMSNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &SMSNotifier{logger: log}
}

// Send logs the SMS delivery. It fails only when the recipient is empty.
func (n *SMSNotifier) Send(ctx context.Context, recipient, message string) error {
	if recipient == "" {
		return fmt.Errorf("%w: sms", ErrEmptyRecipient)
	}

	n.logger.LogAttrs(ctx, slog.LevelInfo, "SMS sent",
		logger.Component("notify"),
		logger.Recipient(recipient),
		slog.String("message", message),
	)
	return nil
}
