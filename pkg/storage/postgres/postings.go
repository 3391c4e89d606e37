package postgres

import (
	"atsconnect/pkg/domain"
	"atsconnect/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	postingsTable = "job_board_postings"
)

func (p *PgSQL) StorePosting(ctx context.Context, posting domain.JobBoardPosting) (*domain.JobBoardPosting, error) {
	var row PgPosting
	if err := row.FromDomain(posting); err != nil {
		return nil, err
	}

	var result PgPosting
	if _, err := p.Builder.Insert(postingsTable).
		Rows(row).
		Returning(&PgPosting{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, mapError(err, "could not store posting into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) PostingByRequisition(ctx context.Context,
	integrationID domain.IntegrationID,
	requisitionID string) (*domain.JobBoardPosting, error) {
	return p.postingWhere(ctx,
		goqu.I("integration_id").Eq(uuid.UUID(integrationID)),
		goqu.I("requisition_id").Eq(requisitionID),
	)
}

func (p *PgSQL) PostingByExternalID(ctx context.Context,
	integrationID domain.IntegrationID,
	externalID string) (*domain.JobBoardPosting, error) {
	return p.postingWhere(ctx,
		goqu.I("integration_id").Eq(uuid.UUID(integrationID)),
		goqu.I("external_id").Eq(externalID),
	)
}

func (p *PgSQL) PostingsByStatus(ctx context.Context,
	integrationID domain.IntegrationID,
	status domain.PostingStatus) ([]domain.JobBoardPosting, error) {
	var rows []PgPosting
	if err := p.Builder.From(postingsTable).
		Where(
			goqu.I("integration_id").Eq(uuid.UUID(integrationID)),
			goqu.I("status").Eq(string(status)),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch postings by status: %w", err)
	}

	return pgPostingsToDomain(rows)
}

func (p *PgSQL) UpdatePosting(ctx context.Context,
	ID domain.PostingID,
	updates storage.PostingUpdates) (*domain.JobBoardPosting, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.ExternalID != nil {
		rec["external_id"] = nullString(*updates.ExternalID)
	}
	if updates.URL != nil {
		rec["url"] = nullString(*updates.URL)
	}
	if len(updates.Metadata) > 0 {
		metadata, err := marshalMap(updates.Metadata)
		if err != nil {
			return nil, fmt.Errorf("could not marshal posting metadata: %w", err)
		}

		rec["metadata"] = goqu.L("metadata || ?::jsonb", string(metadata))
	}
	if updates.MarkPosted {
		rec["posted_at"] = goqu.L("CURRENT_TIMESTAMP")
	}
	if updates.TouchLastSynced {
		rec["last_synced"] = goqu.L("CURRENT_TIMESTAMP")
	}

	var row PgPosting
	found, err := p.Builder.Update(postingsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Returning(&PgPosting{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update posting in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) postingWhere(ctx context.Context, where ...goqu.Expression) (*domain.JobBoardPosting, error) {
	var row PgPosting
	found, err := p.Builder.From(postingsTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch posting: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
