package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
)

const (
	movieDetailKeyPrefix = "movie:detail:"
	movieListKey         = "movie:list"
)

// CachedMovieRepository wraps MovieRepository with Redis read-through caching
type CachedMovieRepository struct {
	repo  MovieRepository
	cache Cache
	ttl   time.Duration
}

// NewCachedMovieRepository creates a new CachedMovieRepository
func NewCachedMovieRepository(repo MovieRepository, cache Cache, ttl time.Duration) *CachedMovieRepository {
	return &CachedMovieRepository{repo: repo, cache: cache, ttl: cacheTTL(ttl)}
}

// List returns all movies, served from cache when possible
func (r *CachedMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	if cacheGet(ctx, r.cache, movieListKey, &movies) {
		return movies, nil
	}

	movies, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, r.cache, movieListKey, movies, r.ttl)
	return movies, nil
}

// GetByID retrieves a movie by ID with caching. Misses are not cached.
func (r *CachedMovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	key := movieDetailKey(id)

	var movie domain.Movie
	if cacheGet(ctx, r.cache, key, &movie) {
		return &movie, nil
	}

	found, err := r.repo.GetByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}
	cacheSet(ctx, r.cache, key, found, r.ttl)
	return found, nil
}

// Create inserts a movie and invalidates the list cache
func (r *CachedMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if err := r.repo.Create(ctx, movie); err != nil {
		return err
	}
	cacheDel(ctx, r.cache, movieListKey)
	return nil
}

// Update overwrites a movie and invalidates its caches
func (r *CachedMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	if err := r.repo.Update(ctx, movie); err != nil {
		return err
	}
	cacheDel(ctx, r.cache, movieDetailKey(movie.ID), movieListKey)
	return nil
}

// Delete removes a movie and invalidates its caches
func (r *CachedMovieRepository) Delete(ctx context.Context, id int64) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	cacheDel(ctx, r.cache, movieDetailKey(id), movieListKey)
	return nil
}

func movieDetailKey(id int64) string {
	return movieDetailKeyPrefix + strconv.FormatInt(id, 10)
}
