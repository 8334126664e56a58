package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimasprayogo252/api-film-tugas/pkg/logger"
	"github.com/dimasprayogo252/api-film-tugas/pkg/token"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func issue(t *testing.T, identity token.Identity, opts ...token.Option) string {
	t.Helper()
	issuer, err := token.NewIssuer(testSecret, opts...)
	require.NoError(t, err)
	signed, err := issuer.Issue(identity)
	require.NoError(t, err)
	return signed
}

func newVerifier(t *testing.T) *token.Verifier {
	t.Helper()
	v, err := token.NewVerifier(testSecret)
	require.NoError(t, err)
	return v
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r := gin.New()
	auth := JWTMiddleware(newVerifier(t))

	r.GET("/me", auth, func(c *gin.Context) {
		user, _ := GetUser(c)
		ctxUser, _ := UserFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"username": user.Username, "role": user.Role, "ctx": ctxUser.Username})
	})
	r.GET("/admin", auth, RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/gate-only", RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func do(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTMiddleware(t *testing.T) {
	r := newAuthRouter(t)
	valid := issue(t, token.Identity{ID: 1, Username: "alice", Role: "user"})
	expired := issue(t, token.Identity{ID: 1, Username: "alice", Role: "user"},
		token.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, `{"error":"Token required."}`},
		{"scheme only", "Bearer", http.StatusUnauthorized, `{"error":"Token required."}`},
		{"blank", "   ", http.StatusUnauthorized, `{"error":"Token required."}`},
		{"garbage token", "Bearer not.a.token", http.StatusForbidden, `{"error":"Token invalid/expired."}`},
		{"expired token", "Bearer " + expired, http.StatusForbidden, `{"error":"Token invalid/expired."}`},
		{"valid token", "Bearer " + valid, http.StatusOK, `{"username":"alice","role":"user","ctx":"alice"}`},
		{"any scheme word", "Token " + valid, http.StatusOK, `{"username":"alice","role":"user","ctx":"alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/me", tt.header)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestJWTMiddleware_NilVerifier(t *testing.T) {
	r := gin.New()
	var v *token.Verifier
	r.GET("/x", JWTMiddleware(v), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/y", JWTMiddleware(nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, "/x", "Bearer abc")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(r, "/y", "Bearer abc")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := newAuthRouter(t)

	user := issue(t, token.Identity{ID: 1, Username: "alice", Role: "user"})
	admin := issue(t, token.Identity{ID: 2, Username: "bob", Role: "admin"})

	w := do(r, "/admin", "Bearer "+user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Access denied: insufficient permissions."}`, w.Body.String())

	w = do(r, "/admin", "Bearer "+admin)
	assert.Equal(t, http.StatusOK, w.Code)

	// verifier runs first, so no token is still 401
	w = do(r, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_WithoutIdentity(t *testing.T) {
	r := newAuthRouter(t)

	var w *httptest.ResponseRecorder
	assert.NotPanics(t, func() {
		w = do(r, "/gate-only", "")
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestID_GeneratesNew(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := do(r, "/test", "")

	headerID := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, w.Body.String())
}

func TestRequestID_UsesExisting(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "existing-request-id-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "existing-request-id-123", w.Body.String())
}

func TestCORS_Headers(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.PUT("/movies/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/movies/1", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORS_AllowList(t *testing.T) {
	r := gin.New()
	r.Use(CORSWithConfig(CORSConfig{AllowOrigins: []string{"http://allowed.com"}}))
	r.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://allowed.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://allowed.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://evil.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogger_DoesNotAlterResponse(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(logger.NewNop()))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })
	r.GET("/fail", func(c *gin.Context) { c.String(http.StatusInternalServerError, "boom") })

	w := do(r, "/ok", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())

	w = do(r, "/fail", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
