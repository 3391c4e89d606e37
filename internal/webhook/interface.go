package webhook

import (
	"atsconnect/pkg/domain"
	"context"
)

//go:generate mockgen -package mockwebhook -source=interface.go -destination=mock/mockwebhook.go *
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*domain.WebhookEndpoint, error)
	DisableFailingEndpoint(ctx context.Context, endpoint domain.WebhookEndpoint) (bool, error)
	Reactivate(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error)
	Dispatch(ctx context.Context, event domain.EventType, payload any) ([]domain.WebhookDelivery, error)
	Deliver(ctx context.Context, ID domain.DeliveryID, retry bool) (Outcome, error)
	RetryDelivery(ctx context.Context, ID domain.DeliveryID) (*domain.WebhookDelivery, error)
}

// RegisterInput describes a new webhook subscription.
type RegisterInput struct {
	URL     string             `json:"url"     validate:"required,http_url"`
	Events  []domain.EventType `json:"events"  validate:"required,min=1"`
	Secret  string             `json:"secret"`
	Headers map[string]string  `json:"headers"`

	IntegrationID *domain.IntegrationID `json:"integrationId"`
}
