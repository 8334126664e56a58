package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
	"github.com/dimasprayogo252/api-film-tugas/internal/dto"
	"github.com/dimasprayogo252/api-film-tugas/internal/repository"
	"github.com/dimasprayogo252/api-film-tugas/pkg/telemetry"
	"github.com/dimasprayogo252/api-film-tugas/pkg/token"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// PasswordHasher hashes and checks passwords
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) (bool, error)
	VerifyDummy(ctx context.Context, plaintext string)
}

// TokenIssuer signs an identity into a bearer token
type TokenIssuer interface {
	Issue(identity token.Identity) (string, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register stores a new user with the given role
	Register(ctx context.Context, req *dto.RegisterRequest, role domain.Role) (*domain.User, error)
	// Login checks credentials and returns a signed token
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, issuer TokenIssuer) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
	}
}

// Register hashes the password and inserts the user; the store rejects duplicate usernames
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest, role domain.Role) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.register")
	defer span.End()

	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	username := domain.NormalizeUsername(req.Username)
	span.SetAttributes(attribute.String("username", username), attribute.String("role", string(role)))

	digest, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: digest,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			span.SetStatus(codes.Error, "username taken")
			return nil, err
		}
		telemetry.FailSpan(span, err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	span.SetAttributes(attribute.Int64("user_id", user.ID))
	span.SetStatus(codes.Ok, "")
	return user, nil
}

// Login authenticates a user. Unknown user and wrong password both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.login")
	defer span.End()

	username := domain.NormalizeUsername(req.Username)
	span.SetAttributes(attribute.String("username", username))

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		telemetry.FailSpan(span, err)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		s.hasher.VerifyDummy(ctx, req.Password)
		span.SetStatus(codes.Error, "invalid credentials")
		return "", ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(ctx, req.Password, user.PasswordHash)
	if err != nil {
		telemetry.FailSpan(span, err)
		return "", err
	}
	if !ok {
		span.SetStatus(codes.Error, "invalid credentials")
		return "", ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(token.Identity{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		telemetry.FailSpan(span, err)
		return "", err
	}

	span.SetAttributes(attribute.Int64("user_id", user.ID))
	span.SetStatus(codes.Ok, "")
	return signed, nil
}

// GetUser retrieves user by ID
func (s *authService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.get_user")
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		telemetry.FailSpan(span, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
