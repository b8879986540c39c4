package user

import "errors"

var (
	// ErrInvalidUserData is returned when user creation fails validation.
	// The joined error also carries validator.ValidationErrors with the
	// per-field details.
	ErrInvalidUserData = errors.New("user: invalid user data")
)
