package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrSportNotConfigured marks a sport code outside the configured list.
	// Handlers attach the current sport configuration when mapping it.
	ErrSportNotConfigured = errors.New("sport is not configured")
)
