package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dimasprayogo252/api-film-tugas/internal/di"
	"github.com/dimasprayogo252/api-film-tugas/internal/domain"
	"github.com/dimasprayogo252/api-film-tugas/internal/handler"
	"github.com/dimasprayogo252/api-film-tugas/pkg/logger"
	"github.com/dimasprayogo252/api-film-tugas/pkg/middleware"
	"github.com/dimasprayogo252/api-film-tugas/pkg/telemetry"
)

// Options tunes the global middleware stack
type Options struct {
	ServiceName string
	Logger      *logger.Logger
	Tracing     bool
}

// New builds the gin engine with every route registered
func New(c *di.Container, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Get()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if opts.Tracing {
		r.Use(telemetry.TracingMiddleware(opts.ServiceName))
		r.Use(telemetry.TraceHeaderMiddleware())
	}
	r.Use(middleware.CORS())
	r.Use(middleware.Logger(log))

	authenticate := middleware.JWTMiddleware(c.Verifier)
	adminOnly := middleware.RequireRole(string(domain.RoleAdmin))

	// Service endpoints
	r.GET("/", c.HealthHandler.Root)
	r.GET("/status", c.HealthHandler.Status)
	r.GET("/health", c.HealthHandler.Health)
	r.GET("/ready", c.HealthHandler.Ready)

	auth := r.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/register-admin", c.AuthHandler.RegisterAdmin)
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/me", authenticate, c.AuthHandler.Me)
	}

	movies := r.Group("/movies")
	{
		movies.GET("", c.MovieHandler.List)
		movies.GET("/:id", c.MovieHandler.GetByID)
		movies.POST("", authenticate, c.MovieHandler.Create)
		movies.PUT("/:id", authenticate, adminOnly, c.MovieHandler.Update)
		movies.DELETE("/:id", authenticate, adminOnly, c.MovieHandler.Delete)
	}

	directors := r.Group("/directors")
	{
		directors.GET("", c.DirectorHandler.List)
		directors.GET("/:id", c.DirectorHandler.GetByID)
		directors.POST("", authenticate, c.DirectorHandler.Create)
		directors.PUT("/:id", authenticate, adminOnly, c.DirectorHandler.Update)
		directors.DELETE("/:id", authenticate, adminOnly, c.DirectorHandler.Delete)
	}

	r.NoRoute(handler.NotFound)

	return r
}
