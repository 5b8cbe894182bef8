package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prperemyshlev/vidverse/internal/config"
	"github.com/prperemyshlev/vidverse/internal/mailer"
	"github.com/prperemyshlev/vidverse/internal/storage"
	"github.com/prperemyshlev/vidverse/migrations"
	"github.com/prperemyshlev/vidverse/pkg/database"
	"github.com/prperemyshlev/vidverse/pkg/observability"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const serviceName = "vidverse"

type Infrastructure interface {
	Postgres() *database.Postgres
	Redis() *database.Redis
	Storage() storage.Storage
	Mailer() mailer.Mailer
	Logger() *zap.Logger
	Metrics() *observability.Metrics
	MetricsHandler() http.Handler
	MeterProvider() *metric.MeterProvider

	Shutdown(ctx context.Context) error
}

type infrastructure struct {
	postgres       *database.Postgres
	redis          *database.Redis
	storage        storage.Storage
	mailer         mailer.Mailer
	logger         *zap.Logger
	metrics        *observability.Metrics
	metricsHandler http.Handler
	meterProvider  *metric.MeterProvider
}

var _ Infrastructure = &infrastructure{}

func NewInfrastructure(ctx context.Context, cfg config.Config) (_ *infrastructure, err error) {
	i := &infrastructure{}

	logger, err := observability.InitLogger(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	i.logger = logger

	// Release whatever was opened before a later step failed.
	defer func() {
		if err != nil {
			i.closeConnections()
		}
	}()

	if cfg.Postgres.MigrateOnStart {
		if err = database.Migrate(migrations.FS, cfg.Postgres.DSN(), logger); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	i.postgres, err = database.NewPostgres(ctx, cfg.Postgres.DSN(), cfg.Postgres.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	i.redis, err = database.NewRedis(ctx, cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	i.storage, err = storage.NewS3Storage(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}

	i.mailer, err = mailer.New(cfg.Mail, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	i.meterProvider, i.metricsHandler, err = observability.InitTelemetry(serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	i.metrics, err = observability.NewMetrics(i.meterProvider.Meter(serviceName))
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return i, nil
}

func (i *infrastructure) closeConnections() {
	if i.postgres != nil {
		_ = i.postgres.Close()
	}
	if i.redis != nil {
		_ = i.redis.Close()
	}
}

func (i *infrastructure) Postgres() *database.Postgres {
	return i.postgres
}

func (i *infrastructure) Redis() *database.Redis {
	return i.redis
}

func (i *infrastructure) Storage() storage.Storage {
	return i.storage
}

func (i *infrastructure) Mailer() mailer.Mailer {
	return i.mailer
}

func (i *infrastructure) Logger() *zap.Logger {
	return i.logger
}

func (i *infrastructure) Metrics() *observability.Metrics {
	return i.metrics
}

func (i *infrastructure) MetricsHandler() http.Handler {
	return i.metricsHandler
}

func (i *infrastructure) MeterProvider() *metric.MeterProvider {
	return i.meterProvider
}

func (i *infrastructure) Shutdown(ctx context.Context) error {
	errs := make(chan error, 3)

	go func() { errs <- i.postgres.Close() }()
	go func() { errs <- i.redis.Close() }()
	go func() { errs <- observability.Shutdown(ctx, i.meterProvider, i.logger) }()

	return errors.Join(<-errs, <-errs, <-errs)
}
