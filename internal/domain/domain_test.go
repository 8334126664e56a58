package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "alice", NormalizeUsername("Alice"))
	assert.Equal(t, "bob", NormalizeUsername("BOB"))
	assert.Equal(t, "carol", NormalizeUsername("carol"))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("super_admin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrMovieNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("update: %w", ErrDirectorNotFound)))
	assert.False(t, IsNotFoundError(ErrUsernameTaken))
	assert.False(t, IsNotFoundError(nil))
}
