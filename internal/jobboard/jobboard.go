// Package jobboard publishes requisitions to job boards and imports the
// applications they collect.
package jobboard

import (
	"atsconnect/internal/integration"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/provider"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type service struct {
	integrations integration.Registry
	storage      storage.Storage
	client       provider.JobBoardClient
	validate     *validator.Validate
}

// New creates a job board Service.
func New(integrations integration.Registry, storage storage.Storage, client provider.JobBoardClient) Service {
	return &service{
		integrations: integrations,
		storage:      storage,
		client:       client,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// PostJob publishes a requisition on a job board. The integration is checked
// before anything touches the network, and a requisition can only be live
// once per integration.
func (s *service) PostJob(ctx context.Context,
	requisition domain.Requisition,
	integrationID domain.IntegrationID) (*domain.JobBoardPosting, error) {
	if err := s.validate.Struct(requisition); err != nil {
		return nil, serrors.Wrap(serrors.ErrValidation, err, "invalid requisition")
	}

	in, err := integration.Open(ctx, s.integrations, integrationID, domain.CategoryJobBoard)
	if err != nil {
		return nil, err
	}

	posting, err := s.draft(ctx, integrationID, requisition.ID)
	if err != nil {
		return nil, err
	}

	var updates storage.PostingUpdates
	err = integration.Sync(ctx, s.integrations, *in, func(ctx context.Context, conn provider.Connection) error {
		res, err := s.client.CreatePosting(ctx, conn, provider.FormatJob(in.Provider, requisition))
		if err != nil {
			return err
		}

		updates = storage.PostingUpdates{
			Status:          domain.PostingStatusPosted,
			ExternalID:      &res.ExternalID,
			URL:             &res.URL,
			Metadata:        map[string]any{"response": res.Raw, "error": nil},
			MarkPosted:      true,
			TouchLastSynced: true,
		}

		return nil
	})
	if err != nil {
		s.recordError(ctx, posting.ID, domain.PostingStatusError, err)

		return nil, err
	}

	return s.update(ctx, posting.ID, updates)
}

// UpdateJob pushes the current requisition to an existing posting.
func (s *service) UpdateJob(ctx context.Context,
	requisition domain.Requisition,
	integrationID domain.IntegrationID) (*domain.JobBoardPosting, error) {
	if err := s.validate.Struct(requisition); err != nil {
		return nil, serrors.Wrap(serrors.ErrValidation, err, "invalid requisition")
	}

	in, posting, err := s.livePosting(ctx, integrationID, requisition.ID)
	if err != nil {
		return nil, err
	}

	updates := storage.PostingUpdates{TouchLastSynced: true}
	err = integration.Sync(ctx, s.integrations, *in, func(ctx context.Context, conn provider.Connection) error {
		res, err := s.client.UpdatePosting(ctx, conn, posting.ExternalID, provider.FormatJob(in.Provider, requisition))
		if err != nil {
			return err
		}

		if res.URL != "" {
			updates.URL = &res.URL
		}
		updates.Metadata = map[string]any{"response": res.Raw, "error": nil}

		return nil
	})
	if err != nil {
		// the provider still lists the posting, only the failure is recorded
		s.recordError(ctx, posting.ID, "", err)

		return nil, err
	}

	return s.update(ctx, posting.ID, updates)
}

// CloseJob takes a posting down from the job board.
func (s *service) CloseJob(ctx context.Context,
	requisitionID string,
	integrationID domain.IntegrationID) (*domain.JobBoardPosting, error) {
	in, posting, err := s.livePosting(ctx, integrationID, requisitionID)
	if err != nil {
		return nil, err
	}

	err = integration.Sync(ctx, s.integrations, *in, func(ctx context.Context, conn provider.Connection) error {
		return s.client.ClosePosting(ctx, conn, posting.ExternalID)
	})
	if err != nil {
		s.recordError(ctx, posting.ID, "", err)

		return nil, err
	}

	return s.update(ctx, posting.ID, storage.PostingUpdates{
		Status:          domain.PostingStatusClosed,
		Metadata:        map[string]any{"error": nil},
		TouchLastSynced: true,
	})
}

// ImportApplications fetches the applications received by every live posting
// of the integration since the given time and stores the new ones. It returns
// how many applications were new.
func (s *service) ImportApplications(ctx context.Context,
	integrationID domain.IntegrationID,
	since time.Time) (int, error) {
	in, err := integration.Open(ctx, s.integrations, integrationID, domain.CategoryJobBoard)
	if err != nil {
		return 0, err
	}

	postings, err := s.storage.PostingsByStatus(ctx, integrationID, domain.PostingStatusPosted)
	if err != nil {
		return 0, fmt.Errorf("could not get postings: %w", err)
	}

	imported := 0
	err = integration.Sync(ctx, s.integrations, *in, func(ctx context.Context, conn provider.Connection) error {
		for _, posting := range postings {
			apps, err := s.client.ListApplications(ctx, conn, posting.ExternalID, since)
			if err != nil {
				return fmt.Errorf("could not list applications of posting %s: %w", posting.ExternalID, err)
			}
			if len(apps) == 0 {
				continue
			}

			n, err := s.storage.InsertExternalRecords(ctx, lo.Map(apps,
				func(r provider.Record, _ int) domain.ExternalRecord {
					return domain.ExternalRecord{
						IntegrationID: integrationID,
						Kind:          domain.RecordKindApplication,
						ExternalID:    r.ExternalID,
						Payload:       r.Payload,
					}
				}))
			if err != nil {
				return fmt.Errorf("could not store applications: %w", err)
			}
			imported += n
		}

		return nil
	})
	if err != nil {
		return imported, err
	}

	logger.Info(ctx, "applications imported",
		zap.Stringer("integration_id", integrationID),
		zap.Int("postings", len(postings)),
		zap.Int("imported", imported))

	return imported, nil
}

// draft returns the posting a new post attempt should use, creating it when
// the requisition was never posted on the integration.
func (s *service) draft(ctx context.Context,
	integrationID domain.IntegrationID,
	requisitionID string) (*domain.JobBoardPosting, error) {
	existing, err := s.storage.PostingByRequisition(ctx, integrationID, requisitionID)
	if err != nil {
		return nil, fmt.Errorf("could not get posting: %w", err)
	}

	if existing == nil {
		created, err := s.storage.StorePosting(ctx, domain.JobBoardPosting{
			RequisitionID: requisitionID,
			IntegrationID: integrationID,
			Status:        domain.PostingStatusDraft,
		})
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, storage.ErrDuplicate) {
			return nil, fmt.Errorf("could not store posting: %w", err)
		}

		// lost a race with a concurrent post of the same requisition
		existing, err = s.storage.PostingByRequisition(ctx, integrationID, requisitionID)
		if err != nil {
			return nil, fmt.Errorf("could not get posting: %w", err)
		}
		if existing == nil {
			return nil, serrors.With(serrors.ErrConflict, "posting of requisition %s changed concurrently", requisitionID)
		}
	}

	switch {
	case existing.Reusable():
		return existing, nil
	case existing.Status == domain.PostingStatusPosted:
		return nil, serrors.With(serrors.ErrValidation, "requisition %s is already posted", requisitionID)
	default:
		return nil, serrors.With(serrors.ErrValidation, "posting of requisition %s is closed", requisitionID)
	}
}

// livePosting loads a gated integration and the posted posting of a requisition.
func (s *service) livePosting(ctx context.Context,
	integrationID domain.IntegrationID,
	requisitionID string) (*domain.Integration, *domain.JobBoardPosting, error) {
	in, err := integration.Open(ctx, s.integrations, integrationID, domain.CategoryJobBoard)
	if err != nil {
		return nil, nil, err
	}

	posting, err := s.storage.PostingByRequisition(ctx, integrationID, requisitionID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get posting: %w", err)
	}
	if posting == nil || posting.Status != domain.PostingStatusPosted {
		return nil, nil, serrors.With(serrors.ErrValidation, "requisition %s is not posted", requisitionID)
	}

	return in, posting, nil
}

func (s *service) update(ctx context.Context,
	ID domain.PostingID,
	updates storage.PostingUpdates) (*domain.JobBoardPosting, error) {
	res, err := s.storage.UpdatePosting(ctx, ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update posting: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "posting not found")
	}

	return res, nil
}

// recordError stores the sync failure on the posting. The original error is
// what the caller reports, so storage failures here are only logged.
func (s *service) recordError(ctx context.Context, ID domain.PostingID, status domain.PostingStatus, cause error) {
	if _, err := s.storage.UpdatePosting(ctx, ID, storage.PostingUpdates{
		Status:   status,
		Metadata: map[string]any{"error": cause.Error()},
	}); err != nil {
		logger.Error(ctx, "could not record posting error", zap.Stringer("posting_id", ID), zap.Error(err))
	}
}
