package integration

import (
	"atsconnect/pkg/domain"
	"atsconnect/pkg/provider"
	"context"
	"time"
)

//go:generate mockgen -package mockintegration -source=interface.go -destination=mock/mockintegration.go *
type Registry interface {
	Create(ctx context.Context, input CreateInput) (*domain.Integration, error)
	Get(ctx context.Context, ID domain.IntegrationID) (*domain.Integration, error)
	Config(ctx context.Context, integration domain.Integration) (domain.IntegrationConfig, error)
	UpdateConfig(ctx context.Context,
		ID domain.IntegrationID,
		config domain.IntegrationConfig) (*domain.Integration, error)
	MarkSyncStatus(ctx context.Context,
		ID domain.IntegrationID,
		status domain.SyncStatus,
		syncErr error) (*domain.Integration, error)
	RefreshOAuthToken(ctx context.Context, ID domain.IntegrationID) (*domain.Integration, error)
	AccessToken(ctx context.Context, integration domain.Integration) (string, error)
	RefreshExpiringTokens(ctx context.Context) (int, error)
	Connect(ctx context.Context, integration domain.Integration) (provider.Connection, error)
}

// CreateInput describes a new provider integration.
type CreateInput struct {
	Provider domain.Provider          `json:"provider" validate:"required"`
	Category domain.Category          `json:"category" validate:"required,oneof=job_board hris ats custom"`
	Name     string                   `json:"name"     validate:"required,max=255"`
	Config   domain.IntegrationConfig `json:"config"`
	Metadata map[string]any           `json:"metadata"`

	// OAuth tokens obtained by the authorization flow, if any.
	OAuthToken        string    `json:"oauthToken"`
	OAuthRefreshToken string    `json:"oauthRefreshToken"`
	OAuthExpiresAt    time.Time `json:"oauthExpiresAt"`
}
