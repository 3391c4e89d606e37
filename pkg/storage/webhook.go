package storage

import (
	"atsconnect/pkg/domain"
	"context"
)

// EndpointStorage persists webhook subscriptions. Counter mutations are
// single-statement updates returning the new row.
type EndpointStorage interface {
	// StoreEndpoint inserts a new endpoint and returns the stored row.
	StoreEndpoint(ctx context.Context, endpoint domain.WebhookEndpoint) (*domain.WebhookEndpoint, error)
	// EndpointByID returns the endpoint or nil when it does not exist.
	EndpointByID(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error)
	// SubscribedEndpoints returns active endpoints subscribed to the event.
	SubscribedEndpoints(ctx context.Context, event domain.EventType) ([]domain.WebhookEndpoint, error)
	// RecordEndpointSuccess resets the failure counter and sets last_success.
	RecordEndpointSuccess(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error)
	// RecordEndpointFailure increments the failure counter and sets last_failure.
	RecordEndpointFailure(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error)
	// DisableEndpoint deactivates an active endpoint whose failure counter
	// reached threshold. It reports whether a row changed.
	DisableEndpoint(ctx context.Context, ID domain.EndpointID, threshold int) (bool, error)
	// ReactivateEndpoint activates the endpoint and resets its failure counter.
	ReactivateEndpoint(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error)
}

// DeliveryUpdates describes the result of a delivery attempt. Only provided
// fields are written.
type DeliveryUpdates struct {
	// ResponseStatus, when provided, sets the status. Zero clears it.
	ResponseStatus *int
	ResponseBody   *string
	// ErrorMessage, when provided, sets the error message. An empty string clears it.
	ErrorMessage *string
	// MarkDelivered sets delivered_at to the current database time.
	MarkDelivered bool
	// IncrementAttempts adds one to the attempts counter.
	IncrementAttempts bool
}

// DeliveryStorage persists webhook deliveries. Updates never touch rows whose
// delivered_at is already set.
type DeliveryStorage interface {
	// StoreDeliveries inserts deliveries and returns the stored rows.
	StoreDeliveries(ctx context.Context, deliveries []domain.WebhookDelivery) ([]domain.WebhookDelivery, error)
	// DeliveryByID returns the delivery or nil when it does not exist.
	DeliveryByID(ctx context.Context, ID domain.DeliveryID) (*domain.WebhookDelivery, error)
	// UpdateDelivery applies updates to a non-delivered delivery and returns
	// the updated row, or nil when no pending delivery matched.
	UpdateDelivery(ctx context.Context,
		ID domain.DeliveryID,
		updates DeliveryUpdates) (*domain.WebhookDelivery, error)
}
