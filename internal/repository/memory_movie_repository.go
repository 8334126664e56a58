package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
)

// MemoryMovieRepository implements MovieRepository using in-memory storage
type MemoryMovieRepository struct {
	movies map[int64]*domain.Movie
	nextID int64
	mu     sync.RWMutex
}

// NewMemoryMovieRepository creates a new in-memory movie repository
func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{movies: make(map[int64]*domain.Movie)}
}

// List returns copies of all movies ordered by ID
func (r *MemoryMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		cp := *m
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetByID retrieves a movie by ID
func (r *MemoryMovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.movies[id]
	if !exists {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

// Create stores a movie
func (r *MemoryMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	movie.ID = r.nextID
	cp := *movie
	r.movies[cp.ID] = &cp
	return nil
}

// Update overwrites a movie
func (r *MemoryMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.movies[movie.ID]; !exists {
		return domain.ErrMovieNotFound
	}
	cp := *movie
	r.movies[cp.ID] = &cp
	return nil
}

// Delete removes a movie
func (r *MemoryMovieRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.movies[id]; !exists {
		return domain.ErrMovieNotFound
	}
	delete(r.movies, id)
	return nil
}
