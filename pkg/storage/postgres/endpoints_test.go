package postgres_test

import (
	"atsconnect/pkg/domain"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreEndpoint(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	integration := createIntegration(t, pg, "owner", domain.CategoryATS)

	stored, err := pg.StoreEndpoint(ctx, domain.WebhookEndpoint{
		URL:           "https://hooks.example.com/a",
		Secret:        "secret",
		Events:        []domain.EventType{domain.EventApplicationCreated, domain.EventOfferSent},
		IsActive:      true,
		Headers:       map[string]string{"X-Tenant": "acme"},
		IntegrationID: &integration.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "secret", stored.Secret)
	require.Equal(t, []domain.EventType{domain.EventApplicationCreated, domain.EventOfferSent}, stored.Events)
	require.Equal(t, "acme", stored.Headers["X-Tenant"])
	require.Equal(t, integration.ID, *stored.IntegrationID)
	require.Zero(t, stored.FailureCount)

	fetched, err := pg.EndpointByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored.URL, fetched.URL)

	missing, err := pg.EndpointByID(ctx, domain.EndpointID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_SubscribedEndpoints(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	a := createEndpoint(t, pg, domain.EventApplicationCreated)
	b := createEndpoint(t, pg, domain.EventApplicationCreated, domain.EventApplicationHired)
	createEndpoint(t, pg, domain.EventOfferSent)
	inactive := createEndpoint(t, pg, domain.EventApplicationCreated)
	for range domain.CircuitBreakerThreshold {
		_, err := pg.RecordEndpointFailure(ctx, inactive.ID)
		require.NoError(t, err)
	}
	disabled, err := pg.DisableEndpoint(ctx, inactive.ID, domain.CircuitBreakerThreshold)
	require.NoError(t, err)
	require.True(t, disabled)

	endpoints, err := pg.SubscribedEndpoints(ctx, domain.EventApplicationCreated)
	require.NoError(t, err)
	ids := []domain.EndpointID{}
	for _, e := range endpoints {
		ids = append(ids, e.ID)
	}
	require.ElementsMatch(t, []domain.EndpointID{a.ID, b.ID}, ids)

	none, err := pg.SubscribedEndpoints(ctx, domain.EventRequisitionFilled)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPgSQL_EndpointCounters(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	endpoint := createEndpoint(t, pg, domain.EventOfferAccepted)

	failed, err := pg.RecordEndpointFailure(ctx, endpoint.ID)
	require.NoError(t, err)
	require.Equal(t, 1, failed.FailureCount)
	require.False(t, failed.LastFailure.IsZero())

	disabled, err := pg.DisableEndpoint(ctx, endpoint.ID, domain.CircuitBreakerThreshold)
	require.NoError(t, err)
	require.False(t, disabled, "below threshold")

	ok, err := pg.RecordEndpointSuccess(ctx, endpoint.ID)
	require.NoError(t, err)
	require.Zero(t, ok.FailureCount)
	require.False(t, ok.LastSuccess.IsZero())

	for range domain.CircuitBreakerThreshold {
		_, err = pg.RecordEndpointFailure(ctx, endpoint.ID)
		require.NoError(t, err)
	}
	disabled, err = pg.DisableEndpoint(ctx, endpoint.ID, domain.CircuitBreakerThreshold)
	require.NoError(t, err)
	require.True(t, disabled)

	disabled, err = pg.DisableEndpoint(ctx, endpoint.ID, domain.CircuitBreakerThreshold)
	require.NoError(t, err)
	require.False(t, disabled, "already inactive")

	reactivated, err := pg.ReactivateEndpoint(ctx, endpoint.ID)
	require.NoError(t, err)
	require.True(t, reactivated.IsActive)
	require.Zero(t, reactivated.FailureCount)

	missing, err := pg.ReactivateEndpoint(ctx, domain.EndpointID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}
