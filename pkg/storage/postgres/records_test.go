package postgres_test

import (
	"atsconnect/pkg/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_InsertExternalRecords(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	integration := createIntegration(t, pg, "hris", domain.CategoryHRIS)

	records := []domain.ExternalRecord{
		{IntegrationID: integration.ID, Kind: domain.RecordKindEmployee, ExternalID: "e-1", Payload: []byte(`{"a":1}`)},
		{IntegrationID: integration.ID, Kind: domain.RecordKindEmployee, ExternalID: "e-2"},
		{IntegrationID: integration.ID, Kind: domain.RecordKindDepartment, ExternalID: "e-1"},
	}

	inserted, err := pg.InsertExternalRecords(ctx, records)
	require.NoError(t, err)
	require.Equal(t, 3, inserted)

	inserted, err = pg.InsertExternalRecords(ctx, records)
	require.NoError(t, err)
	require.Zero(t, inserted)

	inserted, err = pg.InsertExternalRecords(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, inserted)
}
