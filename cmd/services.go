package main

import (
	"atsconnect/internal/config"
	"atsconnect/internal/hris"
	"atsconnect/internal/integration"
	"atsconnect/internal/jobboard"
	"atsconnect/internal/webhook"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/metrics"
	"atsconnect/pkg/provider/rest"
	"atsconnect/pkg/secrets"
	"atsconnect/pkg/storage/postgres"
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// getPostgres connects to the configured database. The returned func closes
// the pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	db := cfg.Database
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		SslMode:            db.SslMode,
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to postgres", zap.Error(err))
	}

	return pgsql, func() {
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres", zap.Error(err))
		}
	}
}

// services holds the domain services shared by the serve and CLI commands.
type services struct {
	recorder     *metrics.Recorder
	integrations integration.Registry
	webhooks     webhook.Service
	jobBoard     jobboard.Service
	hris         hris.Service
}

// getServices builds the domain services on top of pgsql. Failures are fatal.
func getServices(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL) *services {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	recorder, err := metrics.NewRecorder(mp)
	if err != nil {
		logger.Fatal(ctx, "could not create metrics recorder", zap.Error(err))
	}

	sealer, err := secrets.NewAESGCM(cfg.Integrations.EncryptionKey)
	if err != nil {
		logger.Fatal(ctx, "could not create config sealer", zap.Error(err))
	}

	integrations, err := integration.New(pgsql, sealer, integration.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create integration registry", zap.Error(err))
	}

	client := rest.New(rest.Options{
		HTTPClient: &http.Client{
			Timeout:   cfg.Integrations.ProviderTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		RateLimit: rate.Limit(cfg.Integrations.ProviderRateLimit),
		Burst:     cfg.Integrations.ProviderBurst,
		Metrics:   recorder,
	})

	return &services{
		recorder:     recorder,
		integrations: integrations,
		webhooks:     webhook.New(pgsql, webhook.NewOptions(cfg, recorder)),
		jobBoard:     jobboard.New(integrations, pgsql, client),
		hris:         hris.New(integrations, pgsql, client),
	}
}
