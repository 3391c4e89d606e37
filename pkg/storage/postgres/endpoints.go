package postgres

import (
	"atsconnect/pkg/domain"
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	endpointsTable = "webhook_endpoints"
)

func (p *PgSQL) StoreEndpoint(ctx context.Context, endpoint domain.WebhookEndpoint) (*domain.WebhookEndpoint, error) {
	var row PgEndpoint
	if err := row.FromDomain(endpoint); err != nil {
		return nil, err
	}

	var result PgEndpoint
	if _, err := p.Builder.Insert(endpointsTable).
		Rows(row).
		Returning(&PgEndpoint{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, mapError(err, "could not store endpoint into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) EndpointByID(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error) {
	var row PgEndpoint
	found, err := p.Builder.From(endpointsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch endpoint by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SubscribedEndpoints relies on JSONB containment so the GIN index on events
// can be used.
func (p *PgSQL) SubscribedEndpoints(ctx context.Context, event domain.EventType) ([]domain.WebhookEndpoint, error) {
	filter, err := json.Marshal([]domain.EventType{event})
	if err != nil {
		return nil, fmt.Errorf("could not marshal event filter: %w", err)
	}

	var rows []PgEndpoint
	if err := p.Builder.From(endpointsTable).
		Where(
			goqu.I("is_active").IsTrue(),
			goqu.L("events @> ?::jsonb", string(filter)),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch subscribed endpoints: %w", err)
	}

	return pgEndpointsToDomain(rows)
}

func (p *PgSQL) RecordEndpointSuccess(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error) {
	return p.updateEndpoint(ctx, goqu.Record{
		"failure_count": 0,
		"last_success":  goqu.L("CURRENT_TIMESTAMP"),
		"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
	}, goqu.I("id").Eq(uuid.UUID(ID)))
}

func (p *PgSQL) RecordEndpointFailure(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error) {
	return p.updateEndpoint(ctx, goqu.Record{
		"failure_count": goqu.L("failure_count + 1"),
		"last_failure":  goqu.L("CURRENT_TIMESTAMP"),
		"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
	}, goqu.I("id").Eq(uuid.UUID(ID)))
}

// DisableEndpoint only flips endpoints that are still active and at or over
// the threshold, so concurrent callers disable an endpoint exactly once.
func (p *PgSQL) DisableEndpoint(ctx context.Context, ID domain.EndpointID, threshold int) (bool, error) {
	res, err := p.Builder.Update(endpointsTable).
		Set(goqu.Record{
			"is_active":  false,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("is_active").IsTrue(),
			goqu.I("failure_count").Gte(threshold),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not disable endpoint in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) ReactivateEndpoint(ctx context.Context, ID domain.EndpointID) (*domain.WebhookEndpoint, error) {
	return p.updateEndpoint(ctx, goqu.Record{
		"is_active":     true,
		"failure_count": 0,
		"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
	}, goqu.I("id").Eq(uuid.UUID(ID)))
}

func (p *PgSQL) updateEndpoint(ctx context.Context,
	rec goqu.Record,
	where ...goqu.Expression) (*domain.WebhookEndpoint, error) {
	var row PgEndpoint
	found, err := p.Builder.Update(endpointsTable).
		Set(rec).
		Where(where...).
		Returning(&PgEndpoint{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update endpoint in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
