package storage

import (
	"atsconnect/pkg/domain"
	"context"
)

// PostingUpdates describes optional changes to a job-board posting.
type PostingUpdates struct {
	Status     domain.PostingStatus
	ExternalID *string
	URL        *string
	// Metadata, when provided, is merged into the stored metadata.
	Metadata map[string]any
	// MarkPosted sets posted_at to the current database time.
	MarkPosted bool
	// TouchLastSynced sets last_synced to the current database time.
	TouchLastSynced bool
}

// PostingStorage persists job-board postings.
type PostingStorage interface {
	// StorePosting inserts a posting. It returns ErrDuplicate when a posting
	// for the same requisition and integration exists.
	StorePosting(ctx context.Context, posting domain.JobBoardPosting) (*domain.JobBoardPosting, error)
	// PostingByRequisition returns the posting of a requisition on an
	// integration or nil.
	PostingByRequisition(ctx context.Context,
		integrationID domain.IntegrationID,
		requisitionID string) (*domain.JobBoardPosting, error)
	// PostingByExternalID returns the posting with the provider-assigned id or nil.
	PostingByExternalID(ctx context.Context,
		integrationID domain.IntegrationID,
		externalID string) (*domain.JobBoardPosting, error)
	// PostingsByStatus lists the postings of an integration in a given status.
	PostingsByStatus(ctx context.Context,
		integrationID domain.IntegrationID,
		status domain.PostingStatus) ([]domain.JobBoardPosting, error)
	// UpdatePosting applies updates and returns the updated row or nil.
	UpdatePosting(ctx context.Context,
		ID domain.PostingID,
		updates PostingUpdates) (*domain.JobBoardPosting, error)
}
