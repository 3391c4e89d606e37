package postgres

import (
	"atsconnect/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/samber/lo"
)

const (
	recordsTable = "external_records"
)

// InsertExternalRecords skips records already ingested for the same
// integration, kind and external id.
func (p *PgSQL) InsertExternalRecords(ctx context.Context, records []domain.ExternalRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	rows := lo.Map(records, func(r domain.ExternalRecord, _ int) PgRecord {
		var row PgRecord
		row.FromDomain(r)

		return row
	})

	res, err := p.Builder.Insert(recordsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store external records into pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return int(affected), nil
}
