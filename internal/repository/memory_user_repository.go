package repository

import (
	"context"
	"sync"
	"time"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
)

// MemoryUserRepository implements UserRepository using in-memory storage.
// The write lock makes the username check and insert one atomic step.
type MemoryUserRepository struct {
	users      map[int64]*domain.User
	byUsername map[string]int64
	nextID     int64
	mu         sync.RWMutex
}

// NewMemoryUserRepository creates a new in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:      make(map[int64]*domain.User),
		byUsername: make(map[string]int64),
	}
}

// Create stores a user
func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return domain.ErrUsernameTaken
	}

	r.nextID++
	user.ID = r.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	u := *user
	r.users[u.ID] = &u
	r.byUsername[u.Username] = u.ID
	return nil
}

// GetByUsername retrieves a user by username
func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byUsername[username]
	if !exists {
		return nil, nil
	}
	u := *r.users[id]
	return &u, nil
}

// GetByID retrieves a user by ID
func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, nil
	}
	u := *user
	return &u, nil
}
