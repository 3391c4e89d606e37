package storage

import (
	"atsconnect/pkg/domain"
	"context"
)

// RecordStorage persists entities ingested from external providers.
type RecordStorage interface {
	// InsertExternalRecords inserts records, skipping those whose
	// (integration, kind, external id) already exists, and returns how many
	// were new.
	InsertExternalRecords(ctx context.Context, records []domain.ExternalRecord) (int, error)
}
