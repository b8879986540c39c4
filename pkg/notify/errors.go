package notify

import "errors"

var (
	// ErrUnknownChannel is returned by the factory for an unrecognized channel tag.
	ErrUnknownChannel = errors.New("notify: unknown channel")

	// ErrEmptyRecipient is returned when sending to an empty recipient.
	ErrEmptyRecipient = errors.New("notify: empty recipient")
)
