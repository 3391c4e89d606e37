// Package hris pushes hired people and org units to HR information systems.
package hris

import (
	"atsconnect/internal/integration"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/provider"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type service struct {
	integrations integration.Registry
	records      storage.RecordStorage
	client       provider.HRISClient
	validate     *validator.Validate
}

// New creates an HRIS Service.
func New(integrations integration.Registry, records storage.RecordStorage, client provider.HRISClient) Service {
	return &service{
		integrations: integrations,
		records:      records,
		client:       client,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SyncEmployee creates or updates employee on the HRIS and returns the id the
// HRIS knows it by.
func (s *service) SyncEmployee(ctx context.Context,
	employee domain.Employee,
	integrationID domain.IntegrationID) (string, error) {
	if err := s.validate.Struct(employee); err != nil {
		return "", serrors.Wrap(serrors.ErrValidation, err, "invalid employee")
	}

	return s.upsert(ctx, integrationID, func(ctx context.Context, in domain.Integration, conn provider.Connection) (string, error) {
		return s.client.UpsertEmployee(ctx, conn, provider.FormatEmployee(in.Provider, employee))
	})
}

// SyncDepartment creates or updates department on the HRIS.
func (s *service) SyncDepartment(ctx context.Context,
	department domain.Department,
	integrationID domain.IntegrationID) (string, error) {
	if err := s.validate.Struct(department); err != nil {
		return "", serrors.Wrap(serrors.ErrValidation, err, "invalid department")
	}

	return s.upsert(ctx, integrationID, func(ctx context.Context, in domain.Integration, conn provider.Connection) (string, error) {
		return s.client.UpsertDepartment(ctx, conn, provider.FormatDepartment(in.Provider, department))
	})
}

func (s *service) upsert(ctx context.Context,
	integrationID domain.IntegrationID,
	fn func(ctx context.Context, in domain.Integration, conn provider.Connection) (string, error)) (string, error) {
	in, err := integration.Open(ctx, s.integrations, integrationID, domain.CategoryHRIS)
	if err != nil {
		return "", err
	}

	var externalID string
	err = integration.Sync(ctx, s.integrations, *in, func(ctx context.Context, conn provider.Connection) error {
		externalID, err = fn(ctx, *in, conn)

		return err
	})
	if err != nil {
		return "", err
	}

	return externalID, nil
}

// ImportEmployees stores the employees changed on the HRIS since the given
// time. It returns how many of them were not known yet.
func (s *service) ImportEmployees(ctx context.Context, integrationID domain.IntegrationID, since time.Time) (int, error) {
	in, err := integration.Open(ctx, s.integrations, integrationID, domain.CategoryHRIS)
	if err != nil {
		return 0, err
	}

	imported := 0
	err = integration.Sync(ctx, s.integrations, *in, func(ctx context.Context, conn provider.Connection) error {
		employees, err := s.client.ListEmployees(ctx, conn, since)
		if err != nil {
			return fmt.Errorf("could not list employees: %w", err)
		}
		if len(employees) == 0 {
			return nil
		}

		imported, err = s.records.InsertExternalRecords(ctx, lo.Map(employees,
			func(r provider.Record, _ int) domain.ExternalRecord {
				return domain.ExternalRecord{
					IntegrationID: integrationID,
					Kind:          domain.RecordKindEmployee,
					ExternalID:    r.ExternalID,
					Payload:       r.Payload,
				}
			}))
		if err != nil {
			return fmt.Errorf("could not store employees: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "employees imported",
		zap.Stringer("integration_id", integrationID),
		zap.Int("imported", imported))

	return imported, nil
}
