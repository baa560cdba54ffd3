package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appServices "github.com/yigit/minilms/internal/app/services"
	"github.com/yigit/minilms/internal/bootstrap"
	"github.com/yigit/minilms/internal/config"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	deps   *bootstrap.Dependencies
	logger zerolog.Logger
	http   *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	repos, loader := bootstrap.SetupStore(cfg, lgr)
	deps := bootstrap.BuildDependencies(cfg, repos, loader, lgr)
	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		config: cfg,
		router: router,
		deps:   deps,
		logger: lgr,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(osSignals)

	for {
		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("error starting server: %w", err)
			}
			return s.Shutdown(context.Background())
		case sig := <-osSignals:
			if sig == syscall.SIGHUP {
				s.ReloadCourseDetails(context.Background())
				continue
			}
			s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
			return s.Shutdown(context.Background())
		}
	}
}

// ReloadCourseDetails drops the cached course detail catalogue so the next
// request reads the data file again. Triggered by SIGHUP.
func (s *Server) ReloadCourseDetails(ctx context.Context) {
	if s.deps == nil || s.deps.CourseDetailCache == nil {
		return
	}
	s.deps.CourseDetailCache.Invalidate(ctx, appServices.CourseDetailsCacheKey)
	s.logger.Info().Msg("Course details cache invalidated")
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = fmt.Errorf("server shutdown completed with errors: %w", err)
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	return shutdownErr
}
