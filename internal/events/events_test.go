package events_test

import (
	"atsconnect/internal/events"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/serrors"
	"context"
	"testing"

	mockwebhook "atsconnect/internal/webhook/mock"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestBridge_Dispatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	webhooks := mockwebhook.NewMockService(ctrl)
	bus := EventBus.New()

	_, err := events.NewBridge(bus, webhooks)
	require.NoError(t, err)

	payload := map[string]any{"id": "A1"}
	webhooks.EXPECT().Dispatch(gomock.Any(), domain.EventApplicationCreated, payload).
		Return([]domain.WebhookDelivery{{}, {}}, nil)

	events.Publish(context.Background(), bus, domain.EventApplicationCreated, payload)
}

func TestBridge_DispatchErrorIsContained(t *testing.T) {
	ctrl := gomock.NewController(t)
	webhooks := mockwebhook.NewMockService(ctrl)
	bus := EventBus.New()

	_, err := events.NewBridge(bus, webhooks)
	require.NoError(t, err)

	webhooks.EXPECT().Dispatch(gomock.Any(), domain.EventType("candidate.created"), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrValidation, "unknown event"))

	require.NotPanics(t, func() {
		events.Publish(context.Background(), bus, domain.EventType("candidate.created"), map[string]any{})
	})
}

func TestBridge_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	webhooks := mockwebhook.NewMockService(ctrl)
	bus := EventBus.New()

	bridge, err := events.NewBridge(bus, webhooks)
	require.NoError(t, err)
	require.NoError(t, bridge.Close())

	// no Dispatch expected
	events.Publish(context.Background(), bus, domain.EventOfferSent, map[string]any{"id": "O1"})
	require.False(t, bus.HasCallback(events.DomainEventTopic))
}
