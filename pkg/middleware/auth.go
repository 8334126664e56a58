package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dimasprayogo252/api-film-tugas/pkg/response"
	"github.com/dimasprayogo252/api-film-tugas/pkg/token"
)

// UserKey is the gin context key holding the authenticated *token.Identity
const UserKey = "user"

const (
	msgTokenRequired     = "Token required."
	msgTokenInvalid      = "Token invalid/expired."
	msgAccessDenied      = "Access denied: insufficient permissions."
	msgAuthMisconfigured = "Authentication is not configured."
)

// TokenVerifier decodes an identity from a raw token
type TokenVerifier interface {
	Verify(tokenString string) (*token.Identity, error)
}

type userCtxKey struct{}

// JWTMiddleware authenticates the request from "Authorization: Bearer <token>".
// A missing token yields 401, an invalid or expired one 403.
func JWTMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			response.Abort(c, http.StatusInternalServerError, msgAuthMisconfigured)
			return
		}

		// the scheme word is not checked, only the second segment matters
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) < 2 {
			response.Abort(c, http.StatusUnauthorized, msgTokenRequired)
			return
		}

		identity, err := verifier.Verify(parts[1])
		if err != nil {
			if errors.Is(err, token.ErrMissingSecret) {
				response.Abort(c, http.StatusInternalServerError, msgAuthMisconfigured)
				return
			}
			response.Abort(c, http.StatusForbidden, msgTokenInvalid)
			return
		}

		c.Set(UserKey, identity)
		c.Request = c.Request.WithContext(ContextWithUser(c.Request.Context(), identity))
		c.Next()
	}
}

// RequireRole lets the request through only when the authenticated identity has role.
// It must run after JWTMiddleware. No identity counts as a mismatch.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok || user.Role != role {
			response.Abort(c, http.StatusForbidden, msgAccessDenied)
			return
		}
		c.Next()
	}
}

// GetUser returns the identity attached by JWTMiddleware
func GetUser(c *gin.Context) (*token.Identity, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*token.Identity)
	return user, ok && user != nil
}

// ContextWithUser stores identity in ctx for code below the HTTP layer
func ContextWithUser(ctx context.Context, identity *token.Identity) context.Context {
	return context.WithValue(ctx, userCtxKey{}, identity)
}

// UserFromContext returns the identity stored by ContextWithUser
func UserFromContext(ctx context.Context) (*token.Identity, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*token.Identity)
	return user, ok && user != nil
}
