package di

import (
	"fmt"
	"time"

	"github.com/dimasprayogo252/api-film-tugas/internal/handler"
	"github.com/dimasprayogo252/api-film-tugas/internal/repository"
	"github.com/dimasprayogo252/api-film-tugas/internal/service"
	"github.com/dimasprayogo252/api-film-tugas/pkg/database"
	"github.com/dimasprayogo252/api-film-tugas/pkg/password"
	"github.com/dimasprayogo252/api-film-tugas/pkg/redis"
	"github.com/dimasprayogo252/api-film-tugas/pkg/token"
)

// Container holds all dependencies for the film service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Auth primitives
	Hasher   *password.Hasher
	Issuer   *token.Issuer
	Verifier *token.Verifier

	// Repositories
	UserRepo     repository.UserRepository
	MovieRepo    repository.MovieRepository
	DirectorRepo repository.DirectorRepository

	// Services
	AuthService     service.AuthService
	MovieService    service.MovieService
	DirectorService service.DirectorService

	// Handlers
	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	MovieHandler    *handler.MovieHandler
	DirectorHandler *handler.DirectorHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	ServiceName string

	// DB nil selects the in-memory store
	DB *database.PostgresDB
	// Redis nil disables catalog caching
	Redis    *redis.Client
	CacheTTL time.Duration

	JWTSecret       string
	BcryptCost      int
	HashConcurrency int
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) (*Container, error) {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	var err error
	if c.Issuer, err = token.NewIssuer(cfg.JWTSecret); err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}
	if c.Verifier, err = token.NewVerifier(cfg.JWTSecret); err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}
	c.Hasher = password.NewHasher(cfg.BcryptCost, cfg.HashConcurrency)

	// Initialize repositories
	if c.DB != nil {
		c.UserRepo = repository.NewPostgresUserRepository(c.DB.Pool())
		c.MovieRepo = repository.NewPostgresMovieRepository(c.DB.Pool())
		c.DirectorRepo = repository.NewPostgresDirectorRepository(c.DB.Pool())
	} else {
		c.UserRepo = repository.NewMemoryUserRepository()
		c.MovieRepo = repository.NewMemoryMovieRepository()
		c.DirectorRepo = repository.NewMemoryDirectorRepository()
	}

	// Wrap with cache if Redis is available
	if c.Redis != nil {
		c.MovieRepo = repository.NewCachedMovieRepository(c.MovieRepo, c.Redis, cfg.CacheTTL)
		c.DirectorRepo = repository.NewCachedDirectorRepository(c.DirectorRepo, c.Redis, cfg.CacheTTL)
	}

	// Initialize services
	c.AuthService = service.NewAuthService(c.UserRepo, c.Hasher, c.Issuer)
	c.MovieService = service.NewMovieService(c.MovieRepo)
	c.DirectorService = service.NewDirectorService(c.DirectorRepo)

	// Initialize handlers
	var dbCheck, cacheCheck handler.HealthChecker
	if c.DB != nil {
		dbCheck = c.DB
	}
	if c.Redis != nil {
		cacheCheck = c.Redis
	}
	c.HealthHandler = handler.NewHealthHandler(cfg.ServiceName, dbCheck, cacheCheck)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.MovieHandler = handler.NewMovieHandler(c.MovieService)
	c.DirectorHandler = handler.NewDirectorHandler(c.DirectorService)

	return c, nil
}
