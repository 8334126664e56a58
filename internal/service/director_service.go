package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
	"github.com/dimasprayogo252/api-film-tugas/internal/dto"
	"github.com/dimasprayogo252/api-film-tugas/internal/repository"
	"github.com/dimasprayogo252/api-film-tugas/pkg/logger"
	"github.com/dimasprayogo252/api-film-tugas/pkg/middleware"
	"github.com/dimasprayogo252/api-film-tugas/pkg/telemetry"
)

// DirectorService defines the interface for director operations
type DirectorService interface {
	ListDirectors(ctx context.Context) ([]*domain.Director, error)
	GetDirector(ctx context.Context, id int64) (*domain.Director, error)
	CreateDirector(ctx context.Context, req *dto.DirectorRequest) (*domain.Director, error)
	UpdateDirector(ctx context.Context, id int64, req *dto.DirectorRequest) (*domain.Director, error)
	DeleteDirector(ctx context.Context, id int64) error
}

type directorService struct {
	repo repository.DirectorRepository
}

// NewDirectorService creates a new DirectorService
func NewDirectorService(repo repository.DirectorRepository) DirectorService {
	return &directorService{repo: repo}
}

func (s *directorService) ListDirectors(ctx context.Context) ([]*domain.Director, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.director.list")
	defer span.End()

	directors, err := s.repo.List(ctx)
	if err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}
	return directors, nil
}

func (s *directorService) GetDirector(ctx context.Context, id int64) (*domain.Director, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.director.get")
	defer span.End()
	span.SetAttributes(attribute.Int64("director_id", id))

	director, err := s.repo.GetByID(ctx, id)
	if err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}
	if director == nil {
		return nil, domain.ErrDirectorNotFound
	}
	return director, nil
}

func (s *directorService) CreateDirector(ctx context.Context, req *dto.DirectorRequest) (*domain.Director, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.director.create")
	defer span.End()

	director := &domain.Director{Name: req.Name, BirthYear: req.BirthYear}
	if err := s.repo.Create(ctx, director); err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("director_id", director.ID))
	return director, nil
}

func (s *directorService) UpdateDirector(ctx context.Context, id int64, req *dto.DirectorRequest) (*domain.Director, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.director.update")
	defer span.End()
	span.SetAttributes(attribute.Int64("director_id", id))

	director := &domain.Director{ID: id, Name: req.Name, BirthYear: req.BirthYear}
	if err := s.repo.Update(ctx, director); err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}
	return director, nil
}

func (s *directorService) DeleteDirector(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "service.director.delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("director_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		telemetry.FailSpan(span, err)
		return err
	}

	logger.Get().WithContext(ctx).Info("director deleted",
		zap.Int64("director_id", id),
		zap.String("username", actor(ctx)),
	)
	return nil
}

// actor names the authenticated caller carried by ctx, if any
func actor(ctx context.Context) string {
	if user, ok := middleware.UserFromContext(ctx); ok {
		return user.Username
	}
	return ""
}
