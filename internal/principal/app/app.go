package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/keyward/principald/internal/principal/domain"
	httpapi "github.com/keyward/principald/internal/principal/http"
	"github.com/keyward/principald/internal/principal/service"
	"github.com/keyward/principald/internal/principal/store"
	"github.com/keyward/principald/internal/principal/store/drivers/sqlite"
	"github.com/keyward/principald/pkg/cryptox"
	"github.com/keyward/principald/pkg/jwtx"
	"github.com/keyward/principald/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the principal service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	envelope *cryptox.Envelope
	signer   *jwtx.Signer
	keys     *jwtx.KeySet

	accounts *service.PrincipalService
	agents   *service.PrincipalService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "principald",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	provider, err := initKeyring(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.envelope = cryptox.NewEnvelope(provider)

	app.signer, err = initSigner(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.keys = jwtx.NewKeySet()
	app.keys.AddSigner(app.signer)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("principal service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down principal service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("principal service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	verifier := jwtx.NewVerifier(app.keys, app.cfg.Issuer)

	app.accounts = &service.PrincipalService{
		Kind:       domain.KindAccount,
		Store:      app.db,
		Envelope:   app.envelope,
		Signer:     app.signer,
		Verifier:   verifier,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
		AccessTTL:  app.cfg.AccessTTL,
	}
	app.agents = &service.PrincipalService{
		Kind:       domain.KindAgent,
		Store:      app.db,
		Envelope:   app.envelope,
		Signer:     app.signer,
		Verifier:   verifier,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
		AccessTTL:  app.cfg.AccessTTL,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.Accounts = app.accounts
	router.Agents = app.agents
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
