package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when an entity exists but belongs to another user.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials is returned when no user matches a login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
