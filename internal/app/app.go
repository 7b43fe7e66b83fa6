// Package app configures and runs application.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/gym-network-toolkit/portal/config"
	httpcontroller "github.com/gym-network-toolkit/portal/internal/controller/http"
	infra "github.com/gym-network-toolkit/portal/internal/infrastructure/sessions"
	"github.com/gym-network-toolkit/portal/internal/repository/routeros"
	"github.com/gym-network-toolkit/portal/internal/repository/sqldb"
	"github.com/gym-network-toolkit/portal/internal/usecase"
	"github.com/gym-network-toolkit/portal/internal/usecase/sessions"
	"github.com/gym-network-toolkit/portal/pkg/db"
	"github.com/gym-network-toolkit/portal/pkg/httpserver"
	"github.com/gym-network-toolkit/portal/pkg/logger"
	"github.com/gym-network-toolkit/portal/pkg/secrets/vault"
)

var Version = "DEVELOPMENT"

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Log.Level)
	cfg.App.Version = Version
	log.Info("app - Run - version: %s", cfg.App.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	// Repository
	database, err := db.New(cfg.DB.URL, sql.Open, db.MaxPoolSize(cfg.DB.PoolMax), db.EnableForeignKeys(true))
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - db.New: %w", err))
	}

	defer database.Close()

	if err := sqldb.RunMigrations(database); err != nil {
		log.Fatal(fmt.Errorf("app - Run - sqldb.RunMigrations: %w", err))
	}

	store, stopStore := setupSessionStore(cfg, log)
	defer stopStore()

	enforcer := setupEnforcer(cfg, log)

	// Use case
	usecases := usecase.NewUseCases(database, store, enforcer, log, cfg)

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()

	stopSweep := usecases.Portal.StartSweep(sweepCtx)
	defer stopSweep()

	handler := setupHTTPHandler(cfg, log, usecases)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.HTTP.Host, cfg.HTTP.Port),
		httpserver.TLS(cfg.HTTP.TLS.Enabled, cfg.HTTP.TLS.CertFile, cfg.HTTP.TLS.KeyFile),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

// setupSessionStore picks the session store backend. With a Redis URL
// sessions survive restarts and can be shared across replicas; without
// one a single in-memory instance is enough for a gym.
func setupSessionStore(cfg *config.Config, log logger.Interface) (sessions.Repository, func()) {
	if cfg.Redis.URL == "" {
		store := infra.NewInMemoryRepository(cfg.Portal.SweepInterval)

		return store, store.Stop
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - redis.ParseURL: %w", err))
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal(fmt.Errorf("app - Run - redis ping: %w", err))
	}

	log.Info("app - Run - session store: redis")

	return infra.NewRedisRepository(client), func() { _ = client.Close() }
}

// setupEnforcer builds the router client. Credentials come from Vault
// when a secrets address is configured, falling back to config values.
func setupEnforcer(cfg *config.Config, log logger.Interface) *routeros.Client {
	username := cfg.RouterOS.Username
	password := cfg.RouterOS.Password

	if cfg.Secrets.Address != "" {
		secretStore, err := vault.NewClient(cfg.Secrets.Address, cfg.Secrets.Token, cfg.Secrets.Path)
		if err != nil {
			log.Fatal(fmt.Errorf("app - Run - vault.NewClient: %w", err))
		}

		if v, err := secretStore.GetKeyValue("routeros_username"); err == nil && v != "" {
			username = v
		}

		if v, err := secretStore.GetKeyValue("routeros_password"); err == nil && v != "" {
			password = v
		}
	}

	return routeros.NewClient(cfg.RouterOS.URL, username, password, cfg.RouterOS.Timeout, log)
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecases *usecase.Usecases) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.HTTP.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.HTTP.AllowedHeaders

	handler.Use(cors.New(defaultConfig))
	httpcontroller.NewRouter(handler, log, *usecases, cfg)

	// Optionally enable pprof endpoints (e.g., for staging) via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}
