package integration

import (
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/provider"
	"atsconnect/pkg/serrors"
	"context"

	"go.uber.org/zap"
)

// Open loads the integration and checks it may be used for category.
func Open(ctx context.Context,
	r Registry,
	ID domain.IntegrationID,
	category domain.Category) (*domain.Integration, error) {
	integration, err := r.Get(ctx, ID)
	if err != nil {
		return nil, err
	}
	if err := Gate(*integration, category); err != nil {
		return nil, err
	}

	return integration, nil
}

// Sync runs fn against the provider of integration and records the outcome on
// the integration: syncing while fn runs, then success or error. A failure of
// fn is returned as a validation error wrapping the cause.
func Sync(ctx context.Context,
	r Registry,
	integration domain.Integration,
	fn func(ctx context.Context, conn provider.Connection) error) error {
	if _, err := r.MarkSyncStatus(ctx, integration.ID, domain.SyncStatusSyncing, nil); err != nil {
		return err
	}

	err := func() error {
		conn, err := r.Connect(ctx, integration)
		if err != nil {
			return err
		}

		return fn(ctx, conn)
	}()
	if err != nil {
		logger.Warn(ctx, "provider sync failed",
			zap.Stringer("integration_id", integration.ID),
			zap.String("provider", string(integration.Provider)),
			zap.Error(err))

		if _, merr := r.MarkSyncStatus(ctx, integration.ID, domain.SyncStatusError, err); merr != nil {
			logger.Error(ctx, "could not record sync failure", zap.Error(merr))
		}

		return serrors.Wrap(serrors.ErrValidation, err, "sync with %s failed", integration.Provider)
	}

	if _, err := r.MarkSyncStatus(ctx, integration.ID, domain.SyncStatusSuccess, nil); err != nil {
		return err
	}

	return nil
}
