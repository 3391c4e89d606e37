package postgres

import (
	"atsconnect/pkg/domain"
	"atsconnect/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	deliveriesTable = "webhook_deliveries"
)

func (p *PgSQL) StoreDeliveries(ctx context.Context,
	deliveries []domain.WebhookDelivery) ([]domain.WebhookDelivery, error) {
	if len(deliveries) == 0 {
		return nil, nil
	}

	rows := lo.Map(deliveries, func(d domain.WebhookDelivery, _ int) PgDelivery {
		var row PgDelivery
		row.FromDomain(d)

		return row
	})

	var result []PgDelivery
	if err := p.Builder.Insert(deliveriesTable).
		Rows(rows).
		Returning(&PgDelivery{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store deliveries into pg: %w", err)
	}

	return lo.Map(result, func(row PgDelivery, _ int) domain.WebhookDelivery {
		return *row.ToDomain()
	}), nil
}

func (p *PgSQL) DeliveryByID(ctx context.Context, ID domain.DeliveryID) (*domain.WebhookDelivery, error) {
	var row PgDelivery
	found, err := p.Builder.From(deliveriesTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch delivery by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateDelivery never touches deliveries that already completed.
func (p *PgSQL) UpdateDelivery(ctx context.Context,
	ID domain.DeliveryID,
	updates storage.DeliveryUpdates) (*domain.WebhookDelivery, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.ResponseStatus != nil {
		if *updates.ResponseStatus == 0 {
			rec["response_status"] = goqu.L("NULL")
		} else {
			rec["response_status"] = *updates.ResponseStatus
		}
	}
	if updates.ResponseBody != nil {
		rec["response_body"] = *updates.ResponseBody
	}
	if updates.ErrorMessage != nil {
		if *updates.ErrorMessage == "" {
			rec["error_message"] = goqu.L("NULL")
		} else {
			rec["error_message"] = *updates.ErrorMessage
		}
	}
	if updates.MarkDelivered {
		rec["delivered_at"] = goqu.L("CURRENT_TIMESTAMP")
	}
	if updates.IncrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}

	var row PgDelivery
	found, err := p.Builder.Update(deliveriesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("delivered_at").IsNull(),
		).
		Returning(&PgDelivery{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update delivery in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
