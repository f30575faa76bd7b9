// Package httpapi serves liveness and readiness checks and read-only JSON
// views of the ledger, the registries and recovery sessions.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/flashbots/go-utils/httplogger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"go.uber.org/atomic"
)

// Reader is the read side of the Keysafe services.
type Reader interface {
	TotalIssued(ctx context.Context) (models.Balance, error)
	BalanceOf(ctx context.Context, id models.Identity) (models.Balance, error)
	GetNode(ctx context.Context, id models.Identity) (*models.Node, error)
	GetUser(ctx context.Context, id models.Identity) (*models.User, error)
	GetSession(ctx context.Context, userID models.Identity) (*models.Recovery, error)
}

type Config struct {
	ListenAddr  string
	EnablePprof bool
	Log         *slog.Logger

	DrainDuration            time.Duration
	GracefulShutdownDuration time.Duration
	ReadTimeout              time.Duration
	WriteTimeout             time.Duration
}

type Server struct {
	cfg     *Config
	isReady atomic.Bool
	log     *slog.Logger
	reader  Reader

	srv *http.Server
}

func New(cfg *Config, reader Reader) *Server {
	s := &Server{
		cfg:    cfg,
		log:    cfg.Log,
		reader: reader,
	}
	s.isReady.Store(true)

	s.srv = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) Router() http.Handler {
	mux := chi.NewRouter()
	mux.Use(s.httpLogger)

	mux.Get("/livez", s.handleLivenessCheck)
	mux.Get("/readyz", s.handleReadinessCheck)
	mux.Get("/drain", s.handleDrain)
	mux.Get("/undrain", s.handleUndrain)

	mux.Route("/api/v1", func(r chi.Router) {
		r.Get("/supply", s.handleSupply)
		r.Get("/accounts/{id}/balance", s.handleBalance)
		r.Get("/nodes/{id}", s.handleNode)
		r.Get("/users/{id}", s.handleUser)
		r.Get("/recoveries/{id}", s.handleSession)
	})

	if s.cfg.EnablePprof {
		s.log.Info("pprof API enabled")
		mux.Mount("/debug", middleware.Profiler())
	}
	return mux
}

func (s *Server) httpLogger(next http.Handler) http.Handler {
	return httplogger.LoggingMiddlewareSlog(s.log, next)
}

// Drain marks the server not ready so load balancers stop routing to it.
func (s *Server) Drain() {
	if s.isReady.Swap(false) {
		s.log.Info("Server marked as not ready")
	}
}

// Run serves until ctx is done. It then drains for DrainDuration and shuts
// down within GracefulShutdownDuration.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server", "listenAddress", lis.Addr().String())
		if err := s.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Drain()
	if s.cfg.DrainDuration > 0 {
		time.Sleep(s.cfg.DrainDuration)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.GracefulShutdownDuration)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.log.Error("Graceful HTTP server shutdown failed", "err", err)
		return err
	}
	s.log.Info("HTTP server gracefully stopped")
	return nil
}
