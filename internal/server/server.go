package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/skinchef/backend/config"
	"github.com/skinchef/backend/internal/api"
	"github.com/skinchef/backend/internal/middleware"
	"github.com/skinchef/backend/internal/service"
)

// Server represents the HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance with all routes wired. redisClient
// may be nil when no Redis endpoint is configured.
func New(cfg *config.Config, db *gorm.DB, llm service.CompletionClient, redisClient *redis.Client) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORS())

	api.RegisterRoutes(router, db, llm, redisClient)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
