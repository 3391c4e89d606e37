// Package worker runs the River job workers: webhook deliveries on their own
// queue, plus the periodic token refresh and record import jobs.
package worker

import (
	"atsconnect/internal/config"
	"atsconnect/internal/hris"
	"atsconnect/internal/integration"
	"atsconnect/internal/jobboard"
	"atsconnect/internal/webhook"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/robfig/cron/v3"
)

// Options configures the River client.
type Options struct {
	WebhookWorkers       int
	DefaultWorkers       int
	BaseRetryDelay       time.Duration
	TokenRefreshSchedule string
	ImportSchedule       string
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		WebhookWorkers:       cfg.Queue.WebhookWorkers,
		DefaultWorkers:       cfg.Queue.DefaultWorkers,
		BaseRetryDelay:       cfg.Webhooks.BaseRetryDelay,
		TokenRefreshSchedule: cfg.Integrations.TokenRefreshSchedule,
		ImportSchedule:       cfg.Integrations.ImportSchedule,
	}
}

// Services are the domain services the workers call into.
type Services struct {
	Webhooks     webhook.Service
	Integrations integration.Registry
	JobBoard     jobboard.Service
	HRIS         hris.Service
	Storage      storage.IntegrationStorage
}

// PeriodicJobs builds the recurring jobs from their cron schedules.
func PeriodicJobs(options Options) ([]*river.PeriodicJob, error) {
	refresh, err := cron.ParseStandard(options.TokenRefreshSchedule)
	if err != nil {
		return nil, fmt.Errorf("could not parse token refresh schedule: %w", err)
	}

	imports, err := cron.ParseStandard(options.ImportSchedule)
	if err != nil {
		return nil, fmt.Errorf("could not parse import schedule: %w", err)
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(refresh, func() (river.JobArgs, *river.InsertOpts) {
			return TokenRefreshArgs{}, nil
		}, &river.PeriodicJobOpts{RunOnStart: true}),
		river.NewPeriodicJob(imports, func() (river.JobArgs, *river.InsertOpts) {
			return ImportArgs{}, nil
		}, nil),
	}, nil
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	options Options,
	services Services) (*river.Client[pgx.Tx], error) {
	periodic, err := PeriodicJobs(options)
	if err != nil {
		return nil, err
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewDeliveryWorker(services.Webhooks, options.BaseRetryDelay))
	river.AddWorker(workers, NewTokenRefreshWorker(services.Integrations))
	river.AddWorker(workers, NewImportWorker(services.Storage, services.JobBoard, services.HRIS))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault:    {MaxWorkers: options.DefaultWorkers},
			webhook.QueueWebhooks: {MaxWorkers: options.WebhookWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
