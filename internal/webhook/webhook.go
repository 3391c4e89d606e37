package webhook

import (
	"atsconnect/internal/config"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/metrics"
	"atsconnect/pkg/secrets"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/signature"
	"atsconnect/pkg/storage"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const secretBytes = 32

// Options configure how deliveries are enqueued and performed.
type Options struct {
	// Timeout is the hard limit of a single delivery POST.
	Timeout time.Duration
	// MaxAttempts is the total number of tries of a delivery, the first included.
	MaxAttempts int
	// Product is the name used in the User-Agent header.
	Product string
	// ResponseBodyLimit is the number of response characters stored per attempt.
	ResponseBodyLimit int
	// HTTPClient performs deliveries. Defaults to an otelhttp instrumented
	// client bounded by Timeout.
	HTTPClient *http.Client
	// Metrics records delivery outcomes. May be nil.
	Metrics *metrics.Recorder
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, recorder *metrics.Recorder) Options {
	return Options{
		Timeout:           cfg.Webhooks.Timeout,
		MaxAttempts:       cfg.Webhooks.MaxAttempts,
		Product:           cfg.Webhooks.Product,
		ResponseBodyLimit: cfg.Webhooks.ResponseBodyLimit,
		Metrics:           recorder,
	}
}

type service struct {
	options  Options
	storage  storage.Storage
	validate *validator.Validate
	client   *http.Client
}

// New creates a webhook Service backed by the provided storage.
func New(storage storage.Storage, options Options) Service {
	if options.Timeout <= 0 {
		options.Timeout = 30 * time.Second
	}
	if options.MaxAttempts < 1 {
		options.MaxAttempts = 4
	}
	if options.Product == "" {
		options.Product = "ATSConnect"
	}
	if options.ResponseBodyLimit <= 0 {
		options.ResponseBodyLimit = 1000
	}

	client := options.HTTPClient
	if client == nil {
		client = &http.Client{
			Timeout:   options.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &service{
		options:  options,
		storage:  storage,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		client:   client,
	}
}

// Register validates and stores a new subscription. A random secret is
// generated when none is provided.
func (s *service) Register(ctx context.Context, input RegisterInput) (*domain.WebhookEndpoint, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, serrors.Wrap(serrors.ErrValidation, err, "invalid webhook endpoint")
	}

	unknown := lo.Reject(input.Events, func(e domain.EventType, _ int) bool { return e.IsValid() })
	if len(unknown) > 0 {
		return nil, serrors.With(serrors.ErrValidation, "unknown events: %v", unknown)
	}

	secret := input.Secret
	if secret == "" {
		generated, err := secrets.GenerateSecret(secretBytes)
		if err != nil {
			return nil, fmt.Errorf("could not generate secret: %w", err)
		}
		secret = generated
	}

	res, err := s.storage.StoreEndpoint(ctx, domain.WebhookEndpoint{
		URL:           input.URL,
		Secret:        secret,
		Events:        lo.Uniq(input.Events),
		IsActive:      true,
		Headers:       input.Headers,
		IntegrationID: input.IntegrationID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store webhook endpoint: %w", err)
	}

	return res, nil
}

// DisableFailingEndpoint deactivates the endpoint when it crossed the failure
// threshold. It is idempotent and reports whether the endpoint changed.
func (s *service) DisableFailingEndpoint(ctx context.Context, endpoint domain.WebhookEndpoint) (bool, error) {
	return disable(ctx, s.storage, endpoint)
}

func disable(ctx context.Context, st storage.EndpointStorage, endpoint domain.WebhookEndpoint) (bool, error) {
	if !endpoint.ShouldDisable() {
		return false, nil
	}

	changed, err := st.DisableEndpoint(ctx, endpoint.ID, domain.CircuitBreakerThreshold)
	if err != nil {
		return false, fmt.Errorf("could not disable webhook endpoint: %w", err)
	}
	if changed {
		logger.Warn(ctx, "webhook endpoint disabled",
			zap.Stringer("endpoint_id", endpoint.ID),
			zap.String("url", endpoint.URL),
			zap.Int("failure_count", endpoint.FailureCount))
	}

	return changed, nil
}

// Reactivate enables an endpoint again and resets its failure counter.
func (s *service) Reactivate(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error) {
	res, err := s.storage.ReactivateEndpoint(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not reactivate webhook endpoint: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "webhook endpoint not found")
	}

	return res, nil
}

// Dispatch snapshots the payload and creates one delivery and one queued job
// per active endpoint subscribed to the event, all in one transaction. It
// performs no network I/O.
func (s *service) Dispatch(ctx context.Context, event domain.EventType, payload any) ([]domain.WebhookDelivery, error) {
	if !event.IsValid() {
		return nil, serrors.With(serrors.ErrValidation, "unknown event %q", event)
	}

	snapshot, err := signature.Canonical(payload)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrValidation, err, "payload is not valid JSON")
	}

	var deliveries []domain.WebhookDelivery
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		endpoints, err := tx.SubscribedEndpoints(ctx, event)
		if err != nil {
			return fmt.Errorf("could not get subscribed endpoints: %w", err)
		}
		if len(endpoints) == 0 {
			return nil
		}

		deliveries, err = tx.StoreDeliveries(ctx, lo.Map(endpoints,
			func(e domain.WebhookEndpoint, _ int) domain.WebhookDelivery {
				return domain.WebhookDelivery{
					EndpointID: e.ID,
					EventType:  event,
					Payload:    snapshot,
					Attempts:   1,
				}
			}))
		if err != nil {
			return fmt.Errorf("could not store deliveries: %w", err)
		}

		for _, d := range deliveries {
			if _, err := tx.AddJob(ctx, s.jobArgs(d.ID), nil); err != nil {
				return fmt.Errorf("could not add delivery job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not dispatch event: %w", err)
	}

	logger.Info(ctx, "event dispatched",
		zap.String("event_type", string(event)),
		zap.Int("deliveries", len(deliveries)))

	return deliveries, nil
}

// RetryDelivery re-enqueues a delivery that has not been delivered yet and
// counts the manual retry as an attempt. It is rejected while a job of the
// delivery is still waiting or running.
func (s *service) RetryDelivery(ctx context.Context, ID domain.DeliveryID) (*domain.WebhookDelivery, error) {
	delivery, err := s.storage.DeliveryByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get delivery: %w", err)
	}
	if delivery == nil {
		return nil, serrors.With(serrors.ErrNotFound, "delivery not found")
	}
	if delivery.IsDelivered() {
		return nil, serrors.With(serrors.ErrValidation, "delivery %s was already delivered", ID)
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdateDelivery(ctx, ID, storage.DeliveryUpdates{IncrementAttempts: true})
		if err != nil {
			return fmt.Errorf("could not update delivery: %w", err)
		}
		// delivered in the meantime
		if updated == nil {
			return serrors.With(serrors.ErrValidation, "delivery %s was already delivered", ID)
		}
		delivery = updated

		added, err := tx.AddJob(ctx, s.jobArgs(ID), nil)
		if err != nil {
			return fmt.Errorf("could not add delivery job: %w", err)
		}
		// rolls back the attempt counted above
		if !added {
			return serrors.With(serrors.ErrValidation, "delivery %s already has a pending attempt", ID)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not retry delivery: %w", err)
	}

	return delivery, nil
}

func (s *service) jobArgs(ID domain.DeliveryID) DeliveryJobArgs {
	return DeliveryJobArgs{DeliveryID: ID, maxAttempts: s.options.MaxAttempts}
}
