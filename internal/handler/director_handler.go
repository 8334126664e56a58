package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
	"github.com/dimasprayogo252/api-film-tugas/internal/dto"
	"github.com/dimasprayogo252/api-film-tugas/internal/service"
	"github.com/dimasprayogo252/api-film-tugas/pkg/logger"
	"github.com/dimasprayogo252/api-film-tugas/pkg/response"
)

const (
	msgDirectorNotFound   = "Director not found"
	msgDirectorValidation = "name and birthYear are required"
)

// DirectorHandler handles director HTTP requests
type DirectorHandler struct {
	directorService service.DirectorService
}

// NewDirectorHandler creates a new DirectorHandler
func NewDirectorHandler(directorService service.DirectorService) *DirectorHandler {
	return &DirectorHandler{directorService: directorService}
}

// List handles GET /directors
func (h *DirectorHandler) List(c *gin.Context) {
	directors, err := h.directorService.ListDirectors(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to list directors", err)
		return
	}
	c.JSON(http.StatusOK, directors)
}

// GetByID handles GET /directors/:id
func (h *DirectorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFound(msgDirectorNotFound))
		return
	}

	director, err := h.directorService.GetDirector(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, response.NotFound(msgDirectorNotFound))
			return
		}
		h.internalError(c, "Failed to get director", err)
		return
	}
	c.JSON(http.StatusOK, director)
}

// Create handles POST /directors
func (h *DirectorHandler) Create(c *gin.Context) {
	req, ok := bindDirector(c)
	if !ok {
		return
	}

	director, err := h.directorService.CreateDirector(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, "Failed to create director", err)
		return
	}
	c.JSON(http.StatusCreated, director)
}

// Update handles PUT /directors/:id
func (h *DirectorHandler) Update(c *gin.Context) {
	req, ok := bindDirector(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFound(msgDirectorNotFound))
		return
	}

	director, err := h.directorService.UpdateDirector(c.Request.Context(), id, req)
	if err != nil {
		if domain.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, response.NotFound(msgDirectorNotFound))
			return
		}
		h.internalError(c, "Failed to update director", err)
		return
	}
	c.JSON(http.StatusOK, director)
}

// Delete handles DELETE /directors/:id
func (h *DirectorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFound(msgDirectorNotFound))
		return
	}

	if err := h.directorService.DeleteDirector(c.Request.Context(), id); err != nil {
		if domain.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, response.NotFound(msgDirectorNotFound))
			return
		}
		h.internalError(c, "Failed to delete director", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DirectorHandler) internalError(c *gin.Context, message string, err error) {
	logger.Get().WithContext(c.Request.Context()).Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, response.InternalError(message))
}

func bindDirector(c *gin.Context) (*dto.DirectorRequest, bool) {
	var req dto.DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(msgDirectorValidation))
		return nil, false
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return nil, false
	}
	return &req, true
}
