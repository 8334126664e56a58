package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimasprayogo252/api-film-tugas/internal/repository"
	"github.com/dimasprayogo252/api-film-tugas/pkg/token"
)

func TestNewContainer_MemoryStore(t *testing.T) {
	c, err := NewContainer(&ContainerConfig{
		ServiceName:     "film-api",
		JWTSecret:       "secret",
		BcryptCost:      4,
		HashConcurrency: 2,
	})
	require.NoError(t, err)

	assert.IsType(t, &repository.MemoryUserRepository{}, c.UserRepo)
	assert.IsType(t, &repository.MemoryMovieRepository{}, c.MovieRepo)
	assert.IsType(t, &repository.MemoryDirectorRepository{}, c.DirectorRepo)
	assert.Equal(t, 4, c.Hasher.Cost())
	assert.NotNil(t, c.AuthHandler)
	assert.NotNil(t, c.MovieHandler)
	assert.NotNil(t, c.DirectorHandler)
	assert.NotNil(t, c.HealthHandler)
}

func TestNewContainer_RequiresSecret(t *testing.T) {
	_, err := NewContainer(&ContainerConfig{ServiceName: "film-api"})
	assert.ErrorIs(t, err, token.ErrMissingSecret)
}
