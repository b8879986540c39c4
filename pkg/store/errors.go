package store

import "errors"

var (
	// ErrEmptyID is returned when saving an entity without an identifier.
	ErrEmptyID = errors.New("store: entity has empty identifier")
)
