// Package events lets domain code publish events on an in-process bus. The
// Bridge subscribes to the bus and turns every event into webhook deliveries.
package events

import (
	"atsconnect/internal/webhook"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"context"
	"fmt"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// DomainEventTopic is the bus topic domain events are published on.
const DomainEventTopic = "DomainEvent"

// DomainEvent carries an already serialized entity, the bridge never reads
// the publishing domain back.
type DomainEvent struct {
	Type    domain.EventType
	Payload any
}

// Publish sends an event to the bus. Subscribers run synchronously before
// Publish returns.
func Publish(ctx context.Context, bus EventBus.Bus, eventType domain.EventType, payload any) {
	bus.Publish(DomainEventTopic, ctx, DomainEvent{Type: eventType, Payload: payload})
}

type Bridge struct {
	bus      EventBus.Bus
	webhooks webhook.Service
	handler  func(ctx context.Context, event DomainEvent)
}

// NewBridge subscribes webhooks to the domain events published on bus.
func NewBridge(bus EventBus.Bus, webhooks webhook.Service) (*Bridge, error) {
	b := &Bridge{bus: bus, webhooks: webhooks}
	b.handler = b.onDomainEvent

	if err := bus.Subscribe(DomainEventTopic, b.handler); err != nil {
		return nil, fmt.Errorf("could not subscribe to domain events: %w", err)
	}

	return b, nil
}

// Close stops dispatching events.
func (b *Bridge) Close() error {
	if err := b.bus.Unsubscribe(DomainEventTopic, b.handler); err != nil {
		return fmt.Errorf("could not unsubscribe from domain events: %w", err)
	}

	return nil
}

// onDomainEvent has no caller to return to, failures end up in the logs.
func (b *Bridge) onDomainEvent(ctx context.Context, event DomainEvent) {
	deliveries, err := b.webhooks.Dispatch(ctx, event.Type, event.Payload)
	if err != nil {
		logger.Error(ctx, "could not dispatch domain event", zap.String("event", string(event.Type)), zap.Error(err))

		return
	}

	logger.Debug(ctx, "domain event dispatched",
		zap.String("event", string(event.Type)),
		zap.Int("deliveries", len(deliveries)))
}
