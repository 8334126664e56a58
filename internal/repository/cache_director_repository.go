package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
)

const (
	directorDetailKeyPrefix = "director:detail:"
	directorListKey         = "director:list"
)

// CachedDirectorRepository wraps DirectorRepository with Redis read-through caching
type CachedDirectorRepository struct {
	repo  DirectorRepository
	cache Cache
	ttl   time.Duration
}

// NewCachedDirectorRepository creates a new CachedDirectorRepository
func NewCachedDirectorRepository(repo DirectorRepository, cache Cache, ttl time.Duration) *CachedDirectorRepository {
	return &CachedDirectorRepository{repo: repo, cache: cache, ttl: cacheTTL(ttl)}
}

func (r *CachedDirectorRepository) List(ctx context.Context) ([]*domain.Director, error) {
	var directors []*domain.Director
	if cacheGet(ctx, r.cache, directorListKey, &directors) {
		return directors, nil
	}

	directors, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, r.cache, directorListKey, directors, r.ttl)
	return directors, nil
}

func (r *CachedDirectorRepository) GetByID(ctx context.Context, id int64) (*domain.Director, error) {
	key := directorDetailKey(id)

	var director domain.Director
	if cacheGet(ctx, r.cache, key, &director) {
		return &director, nil
	}

	found, err := r.repo.GetByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}
	cacheSet(ctx, r.cache, key, found, r.ttl)
	return found, nil
}

func (r *CachedDirectorRepository) Create(ctx context.Context, director *domain.Director) error {
	if err := r.repo.Create(ctx, director); err != nil {
		return err
	}
	cacheDel(ctx, r.cache, directorListKey)
	return nil
}

func (r *CachedDirectorRepository) Update(ctx context.Context, director *domain.Director) error {
	if err := r.repo.Update(ctx, director); err != nil {
		return err
	}
	cacheDel(ctx, r.cache, directorDetailKey(director.ID), directorListKey)
	return nil
}

func (r *CachedDirectorRepository) Delete(ctx context.Context, id int64) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	cacheDel(ctx, r.cache, directorDetailKey(id), directorListKey)
	return nil
}

func directorDetailKey(id int64) string {
	return directorDetailKeyPrefix + strconv.FormatInt(id, 10)
}
