package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
	"github.com/dimasprayogo252/api-film-tugas/internal/dto"
	"github.com/dimasprayogo252/api-film-tugas/pkg/password"
	"github.com/dimasprayogo252/api-film-tugas/pkg/token"
)

const testSecret = "test-secret-key"

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	mu          sync.Mutex
	users       map[int64]*domain.User
	byUsername  map[string]*domain.User
	nextID      int64
	createError error
	getError    error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:      make(map[int64]*domain.User),
		byUsername: make(map[string]*domain.User),
	}
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createError != nil {
		return r.createError
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return domain.ErrUsernameTaken
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	r.byUsername[user.Username] = user
	return nil
}

func (r *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getError != nil {
		return nil, r.getError
	}
	return r.byUsername[username], nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getError != nil {
		return nil, r.getError
	}
	return r.users[id], nil
}

// mockHasher is a testify mock of PasswordHasher
type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Verify(ctx context.Context, plaintext, digest string) (bool, error) {
	args := m.Called(ctx, plaintext, digest)
	return args.Bool(0), args.Error(1)
}

func (m *mockHasher) VerifyDummy(ctx context.Context, plaintext string) {
	m.Called(ctx, plaintext)
}

type failingIssuer struct{}

func (failingIssuer) Issue(token.Identity) (string, error) {
	return "", token.ErrTokenCreation
}

func newTestAuthService(t *testing.T, repo *mockUserRepository) (AuthService, *token.Verifier) {
	t.Helper()
	issuer, err := token.NewIssuer(testSecret)
	require.NoError(t, err)
	verifier, err := token.NewVerifier(testSecret)
	require.NoError(t, err)
	return NewAuthService(repo, password.NewHasher(bcrypt.MinCost, 4), issuer), verifier
}

func TestAuthService_Register(t *testing.T) {
	repo := newMockUserRepository()
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		user, err := svc.Register(ctx, &dto.RegisterRequest{Username: "Alice", Password: "secret1"}, domain.RoleUser)
		require.NoError(t, err)

		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NotEqual(t, "secret1", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	})

	t.Run("duplicate username differs only in case", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ALICE", Password: "secret2"}, domain.RoleUser)
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("admin registration", func(t *testing.T) {
		user, err := svc.Register(ctx, &dto.RegisterRequest{Username: "bob", Password: "secret1"}, domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "carol", Password: "secret1"}, domain.Role("root"))
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	repo := newMockUserRepository()
	repo.createError = errors.New("connection reset")
	svc, _ := newTestAuthService(t, repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "secret1"}, domain.RoleUser)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Contains(t, err.Error(), "failed to save user")
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	hasher := &mockHasher{}
	hasher.On("Hash", mock.Anything, "secret1").Return("", password.ErrHashFailure)

	issuer, err := token.NewIssuer(testSecret)
	require.NoError(t, err)
	repo := newMockUserRepository()
	svc := NewAuthService(repo, hasher, issuer)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "secret1"}, domain.RoleUser)
	assert.ErrorIs(t, err, password.ErrHashFailure)
	assert.Empty(t, repo.users)
	hasher.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockUserRepository()
	svc, verifier := newTestAuthService(t, repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "secret1"}, domain.RoleUser)
	require.NoError(t, err)

	t.Run("successful login returns token for identity", func(t *testing.T) {
		signed, err := svc.Login(ctx, &dto.LoginRequest{Username: "Alice", Password: "secret1"})
		require.NoError(t, err)

		identity, err := verifier.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, token.Identity{ID: registered.ID, Username: "alice", Role: "user"}, *identity)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Login_UnknownUserRunsDummyCompare(t *testing.T) {
	hasher := &mockHasher{}
	hasher.On("VerifyDummy", mock.Anything, "secret1").Return()

	issuer, err := token.NewIssuer(testSecret)
	require.NoError(t, err)
	svc := NewAuthService(newMockUserRepository(), hasher, issuer)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	hasher.AssertExpectations(t)
	hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := newMockUserRepository()
	repo.getError = errors.New("db down")
	svc, _ := newTestAuthService(t, repo)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "secret1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_TokenCreationFailure(t *testing.T) {
	repo := newMockUserRepository()
	hasher := password.NewHasher(bcrypt.MinCost, 1)
	digest, err := hasher.Hash(context.Background(), "secret1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: digest, Role: domain.RoleUser}))

	svc := NewAuthService(repo, hasher, failingIssuer{})

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, token.ErrTokenCreation)
}

func TestAuthService_GetUser(t *testing.T) {
	repo := newMockUserRepository()
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "secret1"}, domain.RoleUser)
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetUser(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_RegisterThenLogin_Property(t *testing.T) {
	repo := newMockUserRepository()
	svc, verifier := newTestAuthService(t, repo)
	ctx := context.Background()

	cases := []dto.RegisterRequest{
		{Username: "u1", Password: "123456"},
		{Username: "MiXeD", Password: "pässwörd"},
		{Username: "with space", Password: "        "},
	}
	for _, c := range cases {
		user, err := svc.Register(ctx, &dto.RegisterRequest{Username: c.Username, Password: c.Password}, domain.RoleUser)
		require.NoError(t, err, c.Username)

		signed, err := svc.Login(ctx, &dto.LoginRequest{Username: c.Username, Password: c.Password})
		require.NoError(t, err, c.Username)

		identity, err := verifier.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.ID)

		_, err = svc.Login(ctx, &dto.LoginRequest{Username: c.Username, Password: c.Password + "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}
