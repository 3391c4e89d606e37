package jobboard

import (
	"atsconnect/pkg/domain"
	"context"
	"time"
)

//go:generate mockgen -package mockjobboard -source=interface.go -destination=mock/mockjobboard.go *
type Service interface {
	PostJob(ctx context.Context,
		requisition domain.Requisition,
		integrationID domain.IntegrationID) (*domain.JobBoardPosting, error)
	UpdateJob(ctx context.Context,
		requisition domain.Requisition,
		integrationID domain.IntegrationID) (*domain.JobBoardPosting, error)
	CloseJob(ctx context.Context, requisitionID string, integrationID domain.IntegrationID) (*domain.JobBoardPosting, error)
	ImportApplications(ctx context.Context, integrationID domain.IntegrationID, since time.Time) (int, error)
}
