package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
)

// MemoryDirectorRepository implements DirectorRepository using in-memory storage
type MemoryDirectorRepository struct {
	directors map[int64]*domain.Director
	nextID    int64
	mu        sync.RWMutex
}

// NewMemoryDirectorRepository creates a new in-memory director repository
func NewMemoryDirectorRepository() *MemoryDirectorRepository {
	return &MemoryDirectorRepository{directors: make(map[int64]*domain.Director)}
}

func (r *MemoryDirectorRepository) List(ctx context.Context) ([]*domain.Director, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Director, 0, len(r.directors))
	for _, d := range r.directors {
		cp := *d
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryDirectorRepository) GetByID(ctx context.Context, id int64) (*domain.Director, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.directors[id]
	if !exists {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *MemoryDirectorRepository) Create(ctx context.Context, director *domain.Director) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	director.ID = r.nextID
	cp := *director
	r.directors[cp.ID] = &cp
	return nil
}

func (r *MemoryDirectorRepository) Update(ctx context.Context, director *domain.Director) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.directors[director.ID]; !exists {
		return domain.ErrDirectorNotFound
	}
	cp := *director
	r.directors[cp.ID] = &cp
	return nil
}

func (r *MemoryDirectorRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.directors[id]; !exists {
		return domain.ErrDirectorNotFound
	}
	delete(r.directors, id)
	return nil
}
