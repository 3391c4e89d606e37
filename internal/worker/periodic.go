package worker

import (
	"atsconnect/internal/hris"
	"atsconnect/internal/integration"
	"atsconnect/internal/jobboard"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// TokenRefreshArgs triggers a refresh of every OAuth token about to expire.
type TokenRefreshArgs struct{}

func (TokenRefreshArgs) Kind() string { return "integration_token_refresh" }

// InsertOpts keeps a single refresh pending at a time.
func (TokenRefreshArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts:  river.UniqueOpts{ByPeriod: time.Minute},
	}
}

type TokenRefreshWorker struct {
	river.WorkerDefaults[TokenRefreshArgs]

	integrations integration.Registry
}

func NewTokenRefreshWorker(integrations integration.Registry) *TokenRefreshWorker {
	return &TokenRefreshWorker{integrations: integrations}
}

func (w *TokenRefreshWorker) Work(ctx context.Context, _ *river.Job[TokenRefreshArgs]) error {
	n, err := w.integrations.RefreshExpiringTokens(ctx)
	if err != nil {
		return fmt.Errorf("could not refresh tokens: %w", err)
	}

	logger.Info(ctx, "oauth tokens refreshed", zap.Int("count", n))

	return nil
}

// ImportArgs triggers the import of applications and employees from every
// active job board and HRIS integration.
type ImportArgs struct{}

func (ImportArgs) Kind() string { return "integration_import" }

func (ImportArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts:  river.UniqueOpts{ByPeriod: time.Minute},
	}
}

type ImportWorker struct {
	river.WorkerDefaults[ImportArgs]

	storage  storage.IntegrationStorage
	jobBoard jobboard.Service
	hris     hris.Service
}

func NewImportWorker(storage storage.IntegrationStorage, jobBoard jobboard.Service, hris hris.Service) *ImportWorker {
	return &ImportWorker{
		storage:  storage,
		jobBoard: jobBoard,
		hris:     hris,
	}
}

// Work imports from each integration in turn. A failing integration is
// logged and skipped, its sync status already records the failure.
func (w *ImportWorker) Work(ctx context.Context, _ *river.Job[ImportArgs]) error {
	importers := []struct {
		category domain.Category
		fn       func(ctx context.Context, ID domain.IntegrationID, since time.Time) (int, error)
	}{
		{domain.CategoryJobBoard, w.jobBoard.ImportApplications},
		{domain.CategoryHRIS, w.hris.ImportEmployees},
	}

	for _, importer := range importers {
		integrations, err := w.storage.ActiveIntegrationsByCategory(ctx, importer.category)
		if err != nil {
			return fmt.Errorf("could not get %s integrations: %w", importer.category, err)
		}

		for _, in := range integrations {
			if in.IsCircuitBroken() {
				continue
			}

			if _, err := importer.fn(ctx, in.ID, in.LastSync); err != nil {
				logger.Warn(ctx, "import failed",
					zap.Stringer("integration_id", in.ID),
					zap.String("category", string(importer.category)),
					zap.Error(err))
			}
		}
	}

	return nil
}
