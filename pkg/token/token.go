package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the lifetime of every issued token
const TTL = time.Hour

var (
	ErrMissingSecret = errors.New("token secret is not configured")
	ErrTokenCreation = errors.New("token creation failed")
	ErrInvalidToken  = errors.New("token invalid or expired")
)

// Identity is the authenticated principal carried inside a token
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Claims is the signed payload: {user, iat, exp}
type Claims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

// Option configures an Issuer or Verifier
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for iat/exp
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Issuer signs identities into HS256 tokens
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer creates an Issuer. An empty secret is rejected.
func NewIssuer(secret string, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	o := buildOptions(opts)
	return &Issuer{secret: []byte(secret), now: o.now}, nil
}

// Issue returns a signed token valid for TTL
func (i *Issuer) Issue(identity Identity) (string, error) {
	if i == nil || len(i.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := i.now()
	claims := Claims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenCreation, err)
	}
	return signed, nil
}

// Verifier checks signature and expiry of inbound tokens
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier creates a Verifier. An empty secret is rejected.
func NewVerifier(secret string, opts ...Option) (*Verifier, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	o := buildOptions(opts)
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithTimeFunc(o.now),
		),
	}, nil
}

// Verify decodes the identity from a valid token
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	if v == nil || len(v.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	tok, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid || claims.User.Username == "" {
		return nil, ErrInvalidToken
	}

	identity := claims.User
	return &identity, nil
}
