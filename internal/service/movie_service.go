package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
	"github.com/dimasprayogo252/api-film-tugas/internal/dto"
	"github.com/dimasprayogo252/api-film-tugas/internal/repository"
	"github.com/dimasprayogo252/api-film-tugas/pkg/telemetry"
)

// MovieService defines the interface for movie operations
type MovieService interface {
	ListMovies(ctx context.Context) ([]*domain.Movie, error)
	GetMovie(ctx context.Context, id int64) (*domain.Movie, error)
	CreateMovie(ctx context.Context, req *dto.MovieRequest) (*domain.Movie, error)
	UpdateMovie(ctx context.Context, id int64, req *dto.MovieRequest) (*domain.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type movieService struct {
	repo repository.MovieRepository
}

// NewMovieService creates a new MovieService
func NewMovieService(repo repository.MovieRepository) MovieService {
	return &movieService{repo: repo}
}

// ListMovies returns every movie ordered by ID
func (s *movieService) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.movie.list")
	defer span.End()

	movies, err := s.repo.List(ctx)
	if err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}
	return movies, nil
}

// GetMovie returns domain.ErrMovieNotFound when the movie does not exist
func (s *movieService) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.movie.get")
	defer span.End()
	span.SetAttributes(attribute.Int64("movie_id", id))

	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}
	if movie == nil {
		return nil, domain.ErrMovieNotFound
	}
	return movie, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *dto.MovieRequest) (*domain.Movie, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.movie.create")
	defer span.End()

	movie := &domain.Movie{
		Title:    req.Title,
		Director: req.Director,
		Year:     req.Year,
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("movie_id", movie.ID))
	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id int64, req *dto.MovieRequest) (*domain.Movie, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.movie.update")
	defer span.End()
	span.SetAttributes(attribute.Int64("movie_id", id))

	movie := &domain.Movie{
		ID:       id,
		Title:    req.Title,
		Director: req.Director,
		Year:     req.Year,
	}
	if err := s.repo.Update(ctx, movie); err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}
	return movie, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "service.movie.delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("movie_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		telemetry.FailSpan(span, err)
		return err
	}
	return nil
}
