package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/SimoKiihamaki/marketprompt/internal/config"
	"github.com/charmbracelet/log"
)

// Config controls the HTTP server behaviour.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Dependencies enumerates the collaborators required by the router. A nil
// RateLimiter is replaced by a default one whose cleanup runs for the
// lifetime of Server.Run.
type Dependencies struct {
	Logger      *log.Logger
	RateLimiter *RateLimiter
}

// Server wraps the configured HTTP server instance.
type Server struct {
	cfg        Config
	httpServer *http.Server
	logger     *log.Logger

	limiter     *RateLimiter
	ownsLimiter bool
}

// NewServer constructs a server using the supplied configuration and dependencies.
func NewServer(cfg Config, deps Dependencies) *Server {
	if cfg.Addr == "" {
		cfg.Addr = config.DefaultAPIAddr
	}

	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	ownsLimiter := deps.RateLimiter == nil
	if ownsLimiter {
		deps.RateLimiter = NewRateLimiter(DefaultRatePerMinute, DefaultBurst)
	}
	handler := newRouter(deps)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  chooseDuration(cfg.ReadTimeout, 5*time.Second),
		WriteTimeout: chooseDuration(cfg.WriteTimeout, 5*time.Second),
		IdleTimeout:  chooseDuration(cfg.IdleTimeout, 60*time.Second),
	}

	return &Server{
		cfg:         cfg,
		httpServer:  srv,
		logger:      deps.Logger,
		limiter:     deps.RateLimiter,
		ownsLimiter: ownsLimiter,
	}
}

// Start launches the HTTP server using ListenAndServe.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// StartListener serves HTTP traffic on an explicit listener.
func (s *Server) StartListener(l net.Listener) error {
	return s.httpServer.Serve(l)
}

// Run serves until ctx is cancelled, then shuts down within shutdownTimeout.
// A default rate limiter is cleaned up until Run returns.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	if s.ownsLimiter {
		cleanupCtx, stopCleanup := context.WithCancel(ctx)
		done := s.limiter.CleanupRoutine(cleanupCtx, DefaultCleanupInterval)
		defer func() {
			stopCleanup()
			<-done
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting api server", "addr", s.Addr())
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), chooseDuration(shutdownTimeout, 5*time.Second))
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server shutdown complete")
	return nil
}

// Shutdown gracefully terminates the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the configured bind address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler exposes the underlying router for testing.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func chooseDuration(candidate, fallback time.Duration) time.Duration {
	if candidate <= 0 {
		return fallback
	}
	return candidate
}
