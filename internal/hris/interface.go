package hris

import (
	"atsconnect/pkg/domain"
	"context"
	"time"
)

//go:generate mockgen -package mockhris -source=interface.go -destination=mock/mockhris.go *
type Service interface {
	SyncEmployee(ctx context.Context, employee domain.Employee, integrationID domain.IntegrationID) (string, error)
	SyncDepartment(ctx context.Context, department domain.Department, integrationID domain.IntegrationID) (string, error)
	ImportEmployees(ctx context.Context, integrationID domain.IntegrationID, since time.Time) (int, error)
}
