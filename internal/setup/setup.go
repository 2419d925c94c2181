package setup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/generative-ai-go/genai"
	"github.com/robalyx/warden/internal/database"
	"github.com/robalyx/warden/internal/database/dbretry"
	"github.com/robalyx/warden/internal/metrics"
	"github.com/robalyx/warden/internal/redis"
	"github.com/robalyx/warden/internal/setup/config"
	"github.com/robalyx/warden/internal/setup/telemetry"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var (
	// ErrPendingMigrations is returned when the schema is behind the binary.
	ErrPendingMigrations = errors.New("database migrations are pending")
	// ErrMissingAPIKey is returned when the bot starts without a Gemini key.
	ErrMissingAPIKey = errors.New("gemini_ai.api_key is not set")
)

// ServiceType identifies the command being initialized.
type ServiceType int

const (
	ServiceBot ServiceType = iota
	ServiceDB
	ServiceQueue
)

// LogDir returns where the service writes its log sessions.
func (s ServiceType) LogDir() string {
	switch s {
	case ServiceBot:
		return "logs/bot_logs"
	case ServiceDB:
		return "logs/db_logs"
	case ServiceQueue:
		return "logs/queue_logs"
	default:
		return "logs/other_logs"
	}
}

// App bundles the dependencies shared by the commands. Optional subsystems
// are nil when the configuration does not use them.
type App struct {
	Config       *config.Config
	Logger       *zap.Logger
	DBLogger     *zap.Logger
	DB           database.Client
	GenAI        *genai.Client
	RedisManager *redis.Manager
	Metrics      *metrics.Metrics
	LogManager   *telemetry.Manager

	pprofServer   *pprofServer
	metricsCancel context.CancelFunc
	sentry        bool
	tracing       bool
}

// InitializeApp bootstraps every dependency the service needs, in order.
func InitializeApp(ctx context.Context, serviceType ServiceType) (*App, error) {
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Metrics: metrics.New(),
	}

	// Remote error sinks are configured first so setup failures reach them
	var opts []telemetry.Option

	if cfg.Common.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Common.Sentry.DSN,
			Environment: cfg.Common.Sentry.Environment,
			Release:     "warden@" + config.RepositoryVersion,
		}); err != nil {
			return nil, fmt.Errorf("failed to initialize sentry: %w", err)
		}

		app.sentry = true
		opts = append(opts, telemetry.WithErrorReporting())
	}

	if cfg.Common.Uptrace.DSN != "" {
		uptrace.ConfigureOpentelemetry(
			uptrace.WithDSN(cfg.Common.Uptrace.DSN),
			uptrace.WithServiceName("warden"),
			uptrace.WithServiceVersion(config.RepositoryVersion),
		)

		app.tracing = true
		opts = append(opts, telemetry.WithTracing())
	}

	app.LogManager = telemetry.NewManager(serviceType.LogDir(), &cfg.Common.Debug, opts...)

	app.Logger, app.DBLogger, err = app.LogManager.GetLoggers()
	if err != nil {
		return nil, err
	}

	app.DBLogger = app.DBLogger.Named("database")

	applyRetryConfig(&cfg.Common.Retry)

	app.RedisManager = redis.NewManager(&cfg.Common.Redis, app.Logger)

	// The migration tool manages its own connection and may run before the
	// schema exists
	if serviceType == ServiceBot && cfg.Common.Storage.NeedsDatabase() {
		app.DB, err = connectDatabase(ctx, &cfg.Common.PostgreSQL, app.DBLogger)
		if err != nil {
			app.Cleanup(ctx)
			return nil, err
		}
	}

	if serviceType == ServiceBot {
		if cfg.Common.GeminiAI.APIKey == "" {
			app.Cleanup(ctx)
			return nil, ErrMissingAPIKey
		}

		app.GenAI, err = genai.NewClient(ctx, option.WithAPIKey(cfg.Common.GeminiAI.APIKey))
		if err != nil {
			app.Cleanup(ctx)
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}

		if cfg.Common.Metrics.Enabled {
			app.startMetricsServer(cfg.Common.Metrics.Port)
		}
	}

	if cfg.Common.Debug.EnablePprof {
		srv, err := startPprofServer(cfg.Common.Debug.PprofPort, app.Logger)
		if err != nil {
			app.Logger.Error("Failed to start pprof server", zap.Error(err))
		} else {
			app.pprofServer = srv

			app.Logger.Warn("pprof debugging endpoint enabled - this should not be used in production!")
		}
	}

	return app, nil
}

// Cleanup shuts components down in reverse initialization order. Errors are
// logged so every component gets a chance to close.
func (s *App) Cleanup(ctx context.Context) {
	if s.pprofServer != nil {
		if err := s.pprofServer.Shutdown(ctx); err != nil {
			s.Logger.Error("Failed to shutdown pprof server", zap.Error(err))
		}
	}

	if s.metricsCancel != nil {
		s.metricsCancel()
	}

	if s.GenAI != nil {
		if err := s.GenAI.Close(); err != nil {
			s.Logger.Warn("Failed to close gemini client", zap.Error(err))
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}

	if s.RedisManager != nil {
		s.RedisManager.Close()
	}

	if s.tracing {
		if err := uptrace.Shutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracing: %v", err)
		}
	}

	if s.sentry {
		sentry.Flush(2 * time.Second)
	}

	if s.Logger != nil {
		_ = s.Logger.Sync()
		_ = s.DBLogger.Sync()
	}

	if s.LogManager != nil {
		if err := s.LogManager.Close(); err != nil {
			log.Printf("Failed to close log files: %v", err)
		}
	}
}

func (s *App) startMetricsServer(port int) {
	ctx, cancel := context.WithCancel(context.Background())
	s.metricsCancel = cancel

	go func() {
		if err := s.Metrics.Serve(ctx, port, s.Logger.Named("metrics")); err != nil {
			s.Logger.Error("Metrics server stopped", zap.Error(err))
		}
	}()
}

// connectDatabase opens the database and refuses to run on an outdated schema.
func connectDatabase(ctx context.Context, cfg *config.PostgreSQL, logger *zap.Logger) (database.Client, error) {
	db, err := database.NewConnection(ctx, cfg, logger, false)
	if err != nil {
		return nil, err
	}

	pending, err := database.PendingMigrations(ctx, db.DB())
	if err != nil {
		db.Close()
		return nil, err
	}

	if len(pending) > 0 {
		db.Close()
		return nil, fmt.Errorf("%w: %d unapplied, run `warden-db migrate`", ErrPendingMigrations, len(pending))
	}

	return db, nil
}

// applyRetryConfig overrides the database retry policy with configured values.
func applyRetryConfig(cfg *config.Retry) {
	if cfg.MaxRetries > 0 {
		dbretry.Options.MaxRetries = cfg.MaxRetries
	}

	if cfg.Delay > 0 {
		dbretry.Options.InitialInterval = time.Duration(cfg.Delay) * time.Millisecond
	}

	if cfg.MaxDelay > 0 {
		dbretry.Options.MaxInterval = time.Duration(cfg.MaxDelay) * time.Millisecond
	}
}
