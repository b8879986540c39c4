package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// EntityID records the entity identifier under the key "entity_id".
// If id is empty, it returns an empty Attr.
func EntityID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("entity_id", id)
}

// EventName records the domain event name under the key "event".
func EventName(name string) slog.Attr {
	return slog.String("event", name)
}

// Recipient records a notification recipient under the key "recipient".
// If recipient is empty, it returns an empty Attr.
func Recipient(recipient string) slog.Attr {
	if recipient == "" {
		return slog.Attr{}
	}
	return slog.String("recipient", recipient)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
