package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
	"github.com/dimasprayogo252/api-film-tugas/internal/dto"
	"github.com/dimasprayogo252/api-film-tugas/internal/service"
	"github.com/dimasprayogo252/api-film-tugas/pkg/logger"
	"github.com/dimasprayogo252/api-film-tugas/pkg/middleware"
	"github.com/dimasprayogo252/api-film-tugas/pkg/password"
	"github.com/dimasprayogo252/api-film-tugas/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, domain.RoleUser, "Registration successful")
}

// RegisterAdmin handles admin registration
// POST /auth/register-admin
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	h.register(c, domain.RoleAdmin, "Admin created successfully")
}

func (h *AuthHandler) register(c *gin.Context, role domain.Role, successMessage string) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Username and password (min 6 characters) are required"))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			c.JSON(http.StatusConflict, response.Conflict("Username already taken."))
		case errors.Is(err, password.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, response.BadRequest("Password must be at most 72 bytes"))
		case errors.Is(err, password.ErrHashFailure):
			logger.Get().WithContext(c.Request.Context()).Error("password hashing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to hash password"))
		default:
			logger.Get().WithContext(c.Request.Context()).Error("user registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to save user"))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: successMessage,
		UserID:  user.ID,
	})
}

// Login handles user login
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Username and password are required"))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	signed, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid credentials"))
			return
		}
		logger.Get().WithContext(c.Request.Context()).Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to log in"))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   signed,
	})
}

// Me returns the stored account behind the caller's token
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Token required."))
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("User no longer exists."))
			return
		}
		logger.Get().WithContext(c.Request.Context()).Error("user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to load user"))
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
}
