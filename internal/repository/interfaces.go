package repository

import (
	"context"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
)

// UserRepository defines the interface for credential storage.
// Username uniqueness is enforced by the store itself.
type UserRepository interface {
	// Create inserts a user and sets its ID. Returns domain.ErrUsernameTaken on a duplicate username.
	Create(ctx context.Context, user *domain.User) error
	// GetByUsername retrieves a user by normalized username, nil if missing
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetByID retrieves a user by ID, nil if missing
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// MovieRepository defines the interface for movie data access
type MovieRepository interface {
	// List returns all movies ordered by ID
	List(ctx context.Context) ([]*domain.Movie, error)
	// GetByID retrieves a movie by ID, nil if missing
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)
	// Create inserts a movie and sets its ID
	Create(ctx context.Context, movie *domain.Movie) error
	// Update overwrites a movie. Returns domain.ErrMovieNotFound when no row matched.
	Update(ctx context.Context, movie *domain.Movie) error
	// Delete removes a movie. Returns domain.ErrMovieNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}

// DirectorRepository defines the interface for director data access
type DirectorRepository interface {
	List(ctx context.Context) ([]*domain.Director, error)
	GetByID(ctx context.Context, id int64) (*domain.Director, error)
	Create(ctx context.Context, director *domain.Director) error
	Update(ctx context.Context, director *domain.Director) error
	Delete(ctx context.Context, id int64) error
}
