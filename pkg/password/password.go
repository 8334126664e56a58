package password

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

var (
	ErrHashFailure     = errors.New("password hash failure")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// maxPasswordBytes is the bcrypt input limit
const maxPasswordBytes = 72

// Hasher hashes and verifies passwords with bcrypt.
// At most Concurrency hash operations run at once so CPU-heavy work cannot starve request handling.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted

	dummyOnce sync.Once
	dummy     []byte
}

// NewHasher creates a Hasher. Out-of-range values fall back to bcrypt.DefaultCost and NumCPU.
func NewHasher(cost, concurrency int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Hasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(concurrency)),
	}
}

// Cost returns the bcrypt cost factor in use
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a salted bcrypt digest of plaintext
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashFailure, err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is (false, nil).
// Inputs longer than Hash accepts never match, since bcrypt would ignore the tail.
func (h *Hasher) Verify(ctx context.Context, plaintext, digest string) (bool, error) {
	if len(plaintext) > maxPasswordBytes {
		return false, nil
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrHashFailure, err)
	}
}

// VerifyDummy burns the same CPU as a real comparison against a throwaway digest.
// Login calls it for unknown users so response timing does not reveal which usernames exist.
func (h *Hasher) VerifyDummy(ctx context.Context, plaintext string) {
	h.dummyOnce.Do(func() {
		buf := make([]byte, 16)
		_, _ = rand.Read(buf)
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), h.cost)
	})
	if h.dummy == nil {
		return
	}
	_, _ = h.Verify(ctx, plaintext, string(h.dummy))
}
