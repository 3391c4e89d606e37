package storage

import (
	"atsconnect/pkg/domain"
	"context"
	"time"
)

// FailureCountChange describes how an update affects an integration's
// failure counter. Counter changes are applied in SQL so concurrent workers
// never lose an increment.
type FailureCountChange int

const (
	// FailureCountUnchanged leaves the counter as is.
	FailureCountUnchanged FailureCountChange = iota
	// FailureCountIncrement adds one to the counter.
	FailureCountIncrement
	// FailureCountReset sets the counter back to zero.
	FailureCountReset
)

// OAuthTokens carries a freshly obtained token set.
type OAuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// IntegrationUpdates describes a set of optional fields that can be applied to
// an existing integration in a single atomic statement. Zero values leave the
// corresponding column untouched.
type IntegrationUpdates struct {
	// SyncStatus, when non-empty, replaces the sync status.
	SyncStatus domain.SyncStatus
	// ErrorLog, when provided, sets the error log. An empty string clears it.
	ErrorLog *string
	// FailureCount selects how the failure counter changes.
	FailureCount FailureCountChange
	// TouchLastSync sets last_sync to the current database time.
	TouchLastSync bool
	// Tokens, when provided, replaces the OAuth token set.
	Tokens *OAuthTokens
	// ConfigEncrypted, when provided, replaces the sealed configuration.
	ConfigEncrypted []byte
	// IsActive, when provided, toggles the integration.
	IsActive *bool
}

// IntegrationStorage persists provider integrations.
type IntegrationStorage interface {
	// CreateIntegration inserts a new integration. It returns ErrDuplicate when
	// another integration with the same provider and name exists.
	CreateIntegration(ctx context.Context, integration domain.Integration) (*domain.Integration, error)
	// IntegrationByID returns the integration or nil when it does not exist.
	IntegrationByID(ctx context.Context, ID domain.IntegrationID) (*domain.Integration, error)
	// UpdateIntegration applies updates atomically and returns the updated row,
	// or nil when the integration does not exist.
	UpdateIntegration(ctx context.Context,
		ID domain.IntegrationID,
		updates IntegrationUpdates) (*domain.Integration, error)
	// IntegrationsExpiringBefore returns active integrations holding a refresh
	// token whose access token expires before the given time.
	IntegrationsExpiringBefore(ctx context.Context, before time.Time) ([]domain.Integration, error)
	// ActiveIntegrationsByCategory returns active integrations of a category
	// whose circuit is not broken.
	ActiveIntegrationsByCategory(ctx context.Context, category domain.Category) ([]domain.Integration, error)
}
