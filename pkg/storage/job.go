package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues River jobs. On a TxStorage the job commits or rolls back
// with the rest of the transaction.
type JobStorage interface {
	// AddJob reports false when a unique job with the same arguments already
	// exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
