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
	msgMovieNotFound   = "Movie not found"
	msgMovieValidation = "title, director and year are required"
)

// MovieHandler handles movie HTTP requests
type MovieHandler struct {
	movieService service.MovieService
}

// NewMovieHandler creates a new MovieHandler
func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// List handles GET /movies
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movieService.ListMovies(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to list movies", err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetByID handles GET /movies/:id
func (h *MovieHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFound(msgMovieNotFound))
		return
	}

	movie, err := h.movieService.GetMovie(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, response.NotFound(msgMovieNotFound))
			return
		}
		h.internalError(c, "Failed to get movie", err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Create handles POST /movies
func (h *MovieHandler) Create(c *gin.Context) {
	req, ok := bindMovie(c)
	if !ok {
		return
	}

	movie, err := h.movieService.CreateMovie(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, "Failed to create movie", err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

// Update handles PUT /movies/:id
func (h *MovieHandler) Update(c *gin.Context) {
	req, ok := bindMovie(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFound(msgMovieNotFound))
		return
	}

	movie, err := h.movieService.UpdateMovie(c.Request.Context(), id, req)
	if err != nil {
		if domain.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, response.NotFound(msgMovieNotFound))
			return
		}
		h.internalError(c, "Failed to update movie", err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Delete handles DELETE /movies/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFound(msgMovieNotFound))
		return
	}

	if err := h.movieService.DeleteMovie(c.Request.Context(), id); err != nil {
		if domain.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, response.NotFound(msgMovieNotFound))
			return
		}
		h.internalError(c, "Failed to delete movie", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MovieHandler) internalError(c *gin.Context, message string, err error) {
	logger.Get().WithContext(c.Request.Context()).Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, response.InternalError(message))
}

func bindMovie(c *gin.Context) (*dto.MovieRequest, bool) {
	var req dto.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(msgMovieValidation))
		return nil, false
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return nil, false
	}
	return &req, true
}
