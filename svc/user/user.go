package user

import (
	"github.com/dmitrymomot/entitykit/pkg/entity"
	"github.com/dmitrymomot/entitykit/pkg/validator"
)

// Status represents the lifecycle state of a user account.
type Status string

const (
	// StatusActive marks a usable account. New users default to it.
	StatusActive Status = "active"
	// StatusInactive marks a deactivated account.
	StatusInactive Status = "inactive"
	// StatusPending marks an account awaiting activation.
	StatusPending Status = "pending"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// User is the managed entity of the service.
type User struct {
	entity.Record

	Name   string `json:"name"`
	Email  string `json:"email"`
	Status Status `json:"status"`
}

// Validate checks the user's data and returns validator.ValidationErrors
// listing every failing field, or nil when the user is valid.
func (u *User) Validate() error {
	return validator.Apply(
		validator.Required("name", u.Name),
		validator.Required("email", u.Email),
		validator.Email("email", u.Email),
		validator.OneOf("status", u.Status, StatusActive, StatusInactive, StatusPending),
	)
}
