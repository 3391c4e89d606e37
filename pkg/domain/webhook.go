package domain

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

// EndpointID uniquely identifies a webhook endpoint.
type EndpointID uuid.UUID

func (id EndpointID) String() string { return uuid.UUID(id).String() }

// DeliveryID uniquely identifies a webhook delivery.
type DeliveryID uuid.UUID

func (id DeliveryID) String() string { return uuid.UUID(id).String() }

// EventType names a domain event subscribers can receive.
type EventType string

const (
	EventApplicationCreated      EventType = "application.created"
	EventApplicationStageChanged EventType = "application.stage_changed"
	EventApplicationRejected     EventType = "application.rejected"
	EventApplicationHired        EventType = "application.hired"

	EventOfferCreated  EventType = "offer.created"
	EventOfferSent     EventType = "offer.sent"
	EventOfferAccepted EventType = "offer.accepted"
	EventOfferDeclined EventType = "offer.declined"

	EventRequisitionOpened    EventType = "requisition.opened"
	EventRequisitionFilled    EventType = "requisition.filled"
	EventRequisitionCancelled EventType = "requisition.cancelled"
)

// EventTypes is the whitelist of events endpoints may subscribe to.
var EventTypes = []EventType{ //nolint: gochecknoglobals
	EventApplicationCreated,
	EventApplicationStageChanged,
	EventApplicationRejected,
	EventApplicationHired,
	EventOfferCreated,
	EventOfferSent,
	EventOfferAccepted,
	EventOfferDeclined,
	EventRequisitionOpened,
	EventRequisitionFilled,
	EventRequisitionCancelled,
}

// IsValid reports whether the event is part of the whitelist.
func (e EventType) IsValid() bool {
	return slices.Contains(EventTypes, e)
}

// WebhookEndpoint is a subscriber URL receiving signed event notifications.
type WebhookEndpoint struct {
	ID     EndpointID  `json:"id"`
	URL    string      `json:"url"`
	Secret string      `json:"-"`
	Events []EventType `json:"events"`

	IsActive     bool      `json:"isActive"`
	FailureCount int       `json:"failureCount"`
	LastSuccess  time.Time `json:"lastSuccess,omitzero"`
	LastFailure  time.Time `json:"lastFailure,omitzero"`

	// Headers are sent with every delivery and may override the defaults.
	Headers map[string]string `json:"headers,omitempty"`
	// IntegrationID optionally links the endpoint to the integration owning it.
	IntegrationID *IntegrationID `json:"integrationId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// ShouldDisable reports whether the endpoint crossed the failure threshold.
func (e WebhookEndpoint) ShouldDisable() bool {
	return e.FailureCount >= CircuitBreakerThreshold
}

// Subscribes reports whether the endpoint is subscribed to the event.
func (e WebhookEndpoint) Subscribes(event EventType) bool {
	return slices.Contains(e.Events, event)
}

// WebhookDelivery is a single event notification to a single endpoint.
// Once DeliveredAt is set the delivery is terminal.
type WebhookDelivery struct {
	ID         DeliveryID `json:"id"`
	EndpointID EndpointID `json:"endpointId"`
	EventType  EventType  `json:"eventType"`
	// Payload is the snapshot taken when the event was dispatched.
	Payload json.RawMessage `json:"payload"`

	ResponseStatus int       `json:"responseStatus,omitempty"`
	ResponseBody   string    `json:"responseBody,omitempty"`
	DeliveredAt    time.Time `json:"deliveredAt,omitzero"`
	Attempts       int       `json:"attempts"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// IsDelivered reports whether the delivery completed successfully.
func (d WebhookDelivery) IsDelivered() bool {
	return !d.DeliveredAt.IsZero()
}
