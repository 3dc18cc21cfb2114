package app

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"rides/internal/config"
	"rides/internal/handler"
	"rides/internal/repository/sqlstore"
	"rides/internal/service"
)

const shutdownFlushTimeout = 5 * time.Second

// App holds the process-wide dependencies. They are created once by New and
// passed explicitly to the components that use them.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	DB       *sql.DB
	Redis    *redis.Client
	NewRelic *newrelic.Application
	Router   *gin.Engine
	Server   *http.Server
}

// New connects to the configured backends and wires the HTTP server.
// accessLog receives combined-format request logs; nil disables them.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, accessLog io.Writer) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	// Initialize New Relic FIRST (before database so we can instrument DB).
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.Warn("failed to initialize New Relic", "error", err)
		} else {
			a.NewRelic = nrApp
			logger.Info("New Relic enabled", "app", cfg.NewRelic.AppName)
		}
	}

	db, dialect, err := NewDatabase(ctx, cfg.Database, a.NewRelic)
	if err != nil {
		return nil, err
	}
	a.DB = db
	logger.Info("database ready", "driver", dialect.Name)

	redisClient, err := NewRedisClient(ctx, cfg.Redis, a.NewRelic)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Redis = redisClient
	if redisClient != nil {
		logger.Info("connected to redis", "addr", cfg.Redis.Addr)
	}

	rideRepo := sqlstore.NewRideRepository(db, dialect, logger)
	rideService := service.NewRideService(rideRepo)

	checks := map[string]handler.Check{"database": rideService.Ping}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	router, err := NewRouter(RouterDeps{
		RideHandler: handler.NewRideHandler(rideService,
			handler.WithStrictStatus(cfg.Server.StrictStatus),
			handler.WithLogger(logger),
		),
		HealthHandler: handler.NewHealthHandler(checks),
		RedisClient:   redisClient,
		NewRelicApp:   a.NewRelic,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Router = router
	a.Server = NewServer(cfg.Server, router, accessLog)

	return a, nil
}

// Close releases the backends opened by New.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.NewRelic != nil {
		a.NewRelic.Shutdown(shutdownFlushTimeout)
	}
	return errors.Join(errs...)
}
