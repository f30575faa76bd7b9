// Package server assembles the Keysafe coordinator: storage, services, the
// gRPC API and the HTTP ops server, and runs them until a shutdown signal.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/dbx"
	"github.com/keysafe-protocol/keysafe/internal/logging"
	"github.com/keysafe-protocol/keysafe/internal/server/archive"
	"github.com/keysafe-protocol/keysafe/internal/server/config"
	"github.com/keysafe-protocol/keysafe/internal/server/httpapi"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/memory"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/repomanager"
	"github.com/keysafe-protocol/keysafe/internal/server/services"
	"github.com/keysafe-protocol/keysafe/internal/server/telemetry"

	gs "github.com/keysafe-protocol/keysafe/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   *logging.SlogLogger
	db       *sql.DB
	ledger   *services.LedgerService
	registry *services.RegistryService
	recovery *services.RecoveryService
}

// reader joins the read side of the three services for the HTTP server.
type reader struct {
	*services.LedgerService
	*services.RegistryService
	*services.RecoveryService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	app := &App{config: c, logger: logger}

	store, err := app.openStore(ctx)
	if err != nil {
		return nil, err
	}

	arch, err := app.newArchiver(ctx)
	if err != nil {
		app.close()
		return nil, err
	}

	app.ledger = services.NewLedgerService(store, logger)
	app.registry = services.NewRegistryService(store, logger)
	app.recovery = services.NewRecoveryService(store, arch, logger)
	return app, nil
}

func (app *App) openStore(ctx context.Context) (repomanager.Store, error) {
	switch app.config.StorageBackend {
	case config.StorageMemory:
		app.logger.Info(ctx, "using in-memory storage")
		return memory.NewStore(), nil
	case config.StoragePostgres:
		db, err := sql.Open("pgx", app.config.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db

		m := repomanager.NewPostgresRepositoryManager()
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}

		policy := dbx.DefaultRetryPolicy
		policy.Attempts = app.config.TxRetryAttempts
		return repomanager.NewSQLStore(db, m, policy), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", app.config.StorageBackend)
	}
}

func (app *App) newArchiver(ctx context.Context) (archive.Archiver, error) {
	if app.config.S3Bucket == "" {
		return archive.Noop{}, nil
	}
	a, err := archive.NewS3Archiver(ctx, archive.S3Options{
		Region:       app.config.S3Region,
		AccessKey:    app.config.S3AccessKey,
		SecretKey:    app.config.S3SecretKey,
		BaseEndpoint: app.config.S3BaseEndpoint,
		Bucket:       app.config.S3Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("archive init error: %w", err)
	}
	app.logger.Info(ctx, "archiving receipts", "bucket", app.config.S3Bucket)
	return a, nil
}

func (app *App) close() {
	if app.db != nil {
		_ = app.db.Close()
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.ledger, app.registry, app.recovery, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.New(&httpapi.Config{
		ListenAddr:               app.config.EndpointAddrHTTP,
		EnablePprof:              app.config.EnablePprof,
		Log:                      app.logger.Slog(),
		DrainDuration:            app.config.DrainDuration,
		GracefulShutdownDuration: app.config.GracefulShutdownDuration,
		ReadTimeout:              10 * time.Second,
		WriteTimeout:             10 * time.Second,
	}, reader{app.ledger, app.registry, app.recovery})
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server failed", "error", err)
		cancelFunc()
	}
}

// Run applies genesis and serves until a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) error {
	defer app.close()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	shutdownTracing, err := telemetry.Setup(ctx, common.ServiceName, app.config.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry init error: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), app.config.GracefulShutdownDuration)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			app.logger.Warn(sctx, "trace flush failed", "error", err)
		}
	}()

	if _, err := app.ledger.Genesis(ctx, models.Identity(app.config.IssuerIdentity), app.config.TotalSupply); err != nil {
		return fmt.Errorf("genesis error: %w", err)
	}

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(context.Background(), "app stopped")
	return nil
}
