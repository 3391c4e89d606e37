package webhook

import (
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/signature"
	"atsconnect/pkg/storage"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Deliver performs one attempt of a delivery. retry is set for automatic
// retries, which count as a new attempt. The returned error is reserved for
// storage failures, every delivery result is reported through the Outcome.
func (s *service) Deliver(ctx context.Context, ID domain.DeliveryID, retry bool) (Outcome, error) {
	start := time.Now()

	outcome, err := s.deliver(ctx, ID, retry)
	if err != nil {
		return Outcome{}, err
	}
	s.options.Metrics.Delivery(ctx, outcome.Kind.String(), time.Since(start))

	return outcome, nil
}

func (s *service) deliver(ctx context.Context, ID domain.DeliveryID, retry bool) (Outcome, error) {
	delivery, err := s.storage.DeliveryByID(ctx, ID)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not get delivery: %w", err)
	}
	if delivery == nil {
		return permanent("delivery not found"), nil
	}
	if delivery.IsDelivered() {
		return delivered(delivery.ResponseStatus, delivery.ResponseBody), nil
	}

	endpoint, err := s.storage.EndpointByID(ctx, delivery.EndpointID)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not get webhook endpoint: %w", err)
	}
	if endpoint == nil || !endpoint.IsActive {
		return permanent("endpoint not active"), nil
	}

	ctx = logger.WithFields(ctx,
		zap.Stringer("delivery_id", ID),
		zap.Stringer("endpoint_id", endpoint.ID))

	body, err := signature.Canonical(delivery.Payload)
	if err != nil {
		return s.abort(ctx, *delivery, fmt.Sprintf("invalid payload: %s", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
	if err != nil {
		return s.abort(ctx, *delivery, fmt.Sprintf("invalid endpoint URL: %s", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signature.Header, signature.Sign(body, endpoint.Secret))
	req.Header.Set("X-Event-Type", string(delivery.EventType))
	req.Header.Set("User-Agent", s.options.Product+"-Webhook/1.0")
	for k, v := range endpoint.Headers {
		req.Header.Set(k, v)
	}

	// a retry is counted once its request is about to be sent
	if retry {
		updated, err := s.storage.UpdateDelivery(ctx, ID, storage.DeliveryUpdates{IncrementAttempts: true})
		if err != nil {
			return Outcome{}, fmt.Errorf("could not count attempt: %w", err)
		}
		if updated == nil {
			return s.stored(ctx, s.storage, ID)
		}
		delivery = updated
	}
	ctx = logger.WithFields(ctx, zap.Int("attempt", delivery.Attempts))

	resp, err := s.client.Do(req)
	if err != nil {
		return s.fail(ctx, *delivery, *endpoint, 0, "", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	// read a bit more than the limit so multi-byte characters survive truncation
	raw, err := io.ReadAll(io.LimitReader(resp.Body, int64(s.options.ResponseBodyLimit)*4))
	if err != nil {
		logger.Debug(ctx, "could not read webhook response body", zap.Error(err))
	}
	respBody := truncate(string(raw), s.options.ResponseBodyLimit)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return s.fail(ctx, *delivery, *endpoint, resp.StatusCode, respBody, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	return s.succeed(ctx, *delivery, *endpoint, resp.StatusCode, respBody)
}

func (s *service) succeed(ctx context.Context,
	delivery domain.WebhookDelivery,
	endpoint domain.WebhookEndpoint,
	status int,
	body string) (Outcome, error) {
	var concurrent *Outcome
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdateDelivery(ctx, delivery.ID, storage.DeliveryUpdates{
			ResponseStatus: &status,
			ResponseBody:   &body,
			ErrorMessage:   new(string),
			MarkDelivered:  true,
		})
		if err != nil {
			return fmt.Errorf("could not update delivery: %w", err)
		}
		// another run marked it delivered and already reset the endpoint
		if updated == nil {
			outcome, err := s.stored(ctx, tx, delivery.ID)
			concurrent = &outcome

			return err
		}

		if _, err := tx.RecordEndpointSuccess(ctx, endpoint.ID); err != nil {
			return fmt.Errorf("could not update webhook endpoint: %w", err)
		}

		return nil
	}); err != nil {
		return Outcome{}, err
	}
	if concurrent != nil {
		return *concurrent, nil
	}

	logger.Debug(ctx, "webhook delivered", zap.Int("status", status))

	return delivered(status, body), nil
}

// stored reports the result recorded for a delivery another run finished.
func (s *service) stored(ctx context.Context, st storage.DeliveryStorage, ID domain.DeliveryID) (Outcome, error) {
	delivery, err := st.DeliveryByID(ctx, ID)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not get delivery: %w", err)
	}
	if delivery == nil {
		return permanent("delivery not found"), nil
	}

	return delivered(delivery.ResponseStatus, delivery.ResponseBody), nil
}

// fail records a failed attempt on the delivery and the endpoint, and opens
// the endpoint circuit once it crossed the failure threshold.
func (s *service) fail(ctx context.Context,
	delivery domain.WebhookDelivery,
	endpoint domain.WebhookEndpoint,
	status int,
	body string,
	reason string) (Outcome, error) {
	updates := storage.DeliveryUpdates{ResponseStatus: &status, ResponseBody: &body, ErrorMessage: &reason}
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.UpdateDelivery(ctx, delivery.ID, updates); err != nil {
			return fmt.Errorf("could not update delivery: %w", err)
		}

		updated, err := tx.RecordEndpointFailure(ctx, endpoint.ID)
		if err != nil {
			return fmt.Errorf("could not update webhook endpoint: %w", err)
		}
		if updated == nil {
			return nil
		}

		_, err = disable(ctx, tx, *updated)

		return err
	}); err != nil {
		return Outcome{}, err
	}

	logger.Info(ctx, "webhook delivery failed", zap.Int("status", status), zap.String("reason", reason))

	return retryable(reason, status, body), nil
}

// abort records an attempt that can never succeed.
func (s *service) abort(ctx context.Context, delivery domain.WebhookDelivery, reason string) (Outcome, error) {
	if _, err := s.storage.UpdateDelivery(ctx, delivery.ID, storage.DeliveryUpdates{ErrorMessage: &reason}); err != nil {
		return Outcome{}, fmt.Errorf("could not update delivery: %w", err)
	}

	logger.Warn(ctx, "webhook delivery aborted", zap.String("reason", reason))

	return permanent(reason), nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
