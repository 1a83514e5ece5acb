// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidArgument signals a malformed call from inside the service.
	ErrInvalidArgument = errors.New("invalid argument")
)
