package postgres

import (
	"atsconnect/pkg/domain"
	"atsconnect/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	integrationsTable = "integrations"
)

func (p *PgSQL) CreateIntegration(ctx context.Context, integration domain.Integration) (*domain.Integration, error) {
	var row PgIntegration
	if err := row.FromDomain(integration); err != nil {
		return nil, err
	}

	var result PgIntegration
	if _, err := p.Builder.Insert(integrationsTable).
		Rows(row).
		Returning(&PgIntegration{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, mapError(err, "could not store integration into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) IntegrationByID(ctx context.Context, ID domain.IntegrationID) (*domain.Integration, error) {
	var row PgIntegration
	found, err := p.Builder.From(integrationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch integration by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateIntegration applies the requested changes in a single UPDATE so that
// counter changes are evaluated by the database.
func (p *PgSQL) UpdateIntegration(ctx context.Context,
	ID domain.IntegrationID,
	updates storage.IntegrationUpdates) (*domain.Integration, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.SyncStatus != "" {
		rec["sync_status"] = string(updates.SyncStatus)
	}
	if updates.ErrorLog != nil {
		if *updates.ErrorLog == "" {
			rec["error_log"] = goqu.L("NULL")
		} else {
			rec["error_log"] = *updates.ErrorLog
		}
	}
	switch updates.FailureCount {
	case storage.FailureCountIncrement:
		rec["failure_count"] = goqu.L("failure_count + 1")
	case storage.FailureCountReset:
		rec["failure_count"] = 0
	case storage.FailureCountUnchanged:
	}
	if updates.TouchLastSync {
		rec["last_sync"] = goqu.L("CURRENT_TIMESTAMP")
	}
	if updates.Tokens != nil {
		rec["oauth_token"] = nullString(updates.Tokens.AccessToken)
		rec["oauth_expires_at"] = nullTime(updates.Tokens.ExpiresAt)
		// providers may omit the refresh token on refresh; keep the old one
		if updates.Tokens.RefreshToken != "" {
			rec["oauth_refresh_token"] = updates.Tokens.RefreshToken
		}
	}
	if updates.ConfigEncrypted != nil {
		rec["config_encrypted"] = encodeConfig(updates.ConfigEncrypted)
	}
	if updates.IsActive != nil {
		rec["is_active"] = *updates.IsActive
	}

	var row PgIntegration
	found, err := p.Builder.Update(integrationsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Returning(&PgIntegration{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update integration in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) IntegrationsExpiringBefore(ctx context.Context, before time.Time) ([]domain.Integration, error) {
	var rows []PgIntegration
	if err := p.Builder.From(integrationsTable).
		Where(
			goqu.I("is_active").IsTrue(),
			goqu.I("oauth_refresh_token").IsNotNull(),
			goqu.I("oauth_expires_at").IsNotNull(),
			goqu.I("oauth_expires_at").Lt(before),
		).
		Order(goqu.I("oauth_expires_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch expiring integrations: %w", err)
	}

	return pgIntegrationsToDomain(rows)
}

func (p *PgSQL) ActiveIntegrationsByCategory(ctx context.Context,
	category domain.Category) ([]domain.Integration, error) {
	var rows []PgIntegration
	if err := p.Builder.From(integrationsTable).
		Where(
			goqu.I("is_active").IsTrue(),
			goqu.I("category").Eq(string(category)),
			goqu.I("failure_count").Lt(domain.CircuitBreakerThreshold),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch integrations by category: %w", err)
	}

	return pgIntegrationsToDomain(rows)
}
