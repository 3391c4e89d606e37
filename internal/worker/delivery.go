package worker

import (
	"atsconnect/internal/webhook"
	"atsconnect/pkg/logger"
	"context"
	"errors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DeliveryWorker runs one attempt of a webhook delivery per job execution and
// maps the outcome to a River action. River retries a job only after its
// previous attempt returned, so the attempts of a delivery never overlap.
type DeliveryWorker struct {
	river.WorkerDefaults[webhook.DeliveryJobArgs]

	webhooks  webhook.Service
	baseDelay time.Duration
}

func NewDeliveryWorker(webhooks webhook.Service, baseDelay time.Duration) *DeliveryWorker {
	return &DeliveryWorker{
		webhooks:  webhooks,
		baseDelay: baseDelay,
	}
}

func (w *DeliveryWorker) Work(ctx context.Context, job *river.Job[webhook.DeliveryJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("delivery_id", job.Args.DeliveryID))

	// the first execution was counted when the delivery was stored
	outcome, err := w.webhooks.Deliver(ctx, job.Args.DeliveryID, job.Attempt > 1)
	if err != nil {
		logger.Error(ctx, "could not run delivery", zap.Error(err))

		return err //nolint: wrapcheck
	}

	switch outcome.Kind {
	case webhook.Delivered:
		return nil
	case webhook.PermanentFailure:
		logger.Info(ctx, "delivery cancelled", zap.String("reason", outcome.Reason))

		return river.JobCancel(errors.New(outcome.Reason)) //nolint: wrapcheck
	default:
		if job.Attempt >= job.MaxAttempts {
			logger.Error(ctx, "delivery exhausted",
				zap.Int("attempt", job.Attempt),
				zap.Int("status", outcome.Status),
				zap.String("body", outcome.Body),
				zap.String("error", outcome.Reason))
		}

		return errors.New(outcome.Reason)
	}
}

// NextRetry schedules the retry following the attempt that just failed.
func (w *DeliveryWorker) NextRetry(job *river.Job[webhook.DeliveryJobArgs]) time.Time {
	return time.Now().Add(webhook.RetryDelay(job.Attempt, w.baseDelay))
}
