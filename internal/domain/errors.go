package domain

import "errors"

// Domain errors
var (
	// User errors
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidRole   = errors.New("invalid role")

	// Catalog errors
	ErrMovieNotFound    = errors.New("movie not found")
	ErrDirectorNotFound = errors.New("director not found")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrMovieNotFound) ||
		errors.Is(err, ErrDirectorNotFound)
}
