package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"paperstash/config"
	"paperstash/internal/handler"
	"paperstash/internal/middleware"
	"paperstash/internal/transport/httpdto"
	"paperstash/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

const (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

const shutdownGrace = 5 * time.Second

type Handlers struct {
	Upload *handler.UploadHandler
}

// Dependencies are the cross-cutting pieces routes are wired with.
type Dependencies struct {
	Auth    middleware.TokenAuthenticator
	Limiter middleware.UploadLimiter
	Health  func(ctx context.Context) error
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	switch cfg.AppMode {
	case ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.AppPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers, deps Dependencies) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if deps.Health != nil {
			if err := deps.Health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
				return
			}
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	uploads := s.engine.Group("/v1/uploads", middleware.AuthMiddleware(deps.Auth))
	{
		if deps.Limiter != nil {
			uploads.POST("/request", middleware.UploadRateLimitMiddleware(deps.Limiter, s.logger), handlers.Upload.RequestUpload)
		} else {
			uploads.POST("/request", handlers.Upload.RequestUpload)
		}
		uploads.GET("/:id", handlers.Upload.GetByID)
	}
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests for up
// to shutdownGrace. A listener failure is returned immediately.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Infof("shutdown signal received, draining for up to %s", shutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Infof("server stopped")
	return nil
}
