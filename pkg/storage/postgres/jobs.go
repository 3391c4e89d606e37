package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job and reports false when a unique job already
// existed. Inside a transaction the job only becomes visible to the workers
// once the transaction commits, so a delivery row and its job are never
// observed apart.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, inTx := p.tx()

	// insert-only client, it never starts queues or workers
	driver := riverdatabasesql.New(nil)
	if !inTx {
		driver = riverdatabasesql.New(p.DB.(*sql.DB))
	}
	client, err := river.NewClient(driver, &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create river client: %w", err)
	}

	var res *rivertype.JobInsertResult
	if inTx {
		res, err = client.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = client.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
