package domain

import (
	"time"

	"github.com/google/uuid"
)

// IntegrationID uniquely identifies a provider integration.
type IntegrationID uuid.UUID

func (id IntegrationID) String() string { return uuid.UUID(id).String() }

// Provider identifies an external system the platform can connect to.
type Provider string

const (
	ProviderLinkedIn     Provider = "linkedin"
	ProviderIndeed       Provider = "indeed"
	ProviderGlassdoor    Provider = "glassdoor"
	ProviderZipRecruiter Provider = "ziprecruiter"
	ProviderMonster      Provider = "monster"

	ProviderBambooHR Provider = "bamboohr"
	ProviderWorkday  Provider = "workday"
	ProviderADP      Provider = "adp"
	ProviderGusto    Provider = "gusto"

	ProviderGreenhouse Provider = "greenhouse"
	ProviderLever      Provider = "lever"
	ProviderWorkable   Provider = "workable"

	ProviderCustom Provider = "custom"
)

// Category groups providers by the kind of synchronization they support.
type Category string

const (
	CategoryJobBoard Category = "job_board"
	CategoryHRIS     Category = "hris"
	CategoryATS      Category = "ats"
	CategoryCustom   Category = "custom"
)

// SyncStatus is the state of the last synchronization run of an integration.
type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
)

// CircuitBreakerThreshold is the number of consecutive failures after which
// an integration or webhook endpoint stops being used.
const CircuitBreakerThreshold = 10

// TokenRefreshLeeway is how long before expiry an OAuth token is considered
// due for refresh.
const TokenRefreshLeeway = 10 * time.Minute

// Integration is a configured connection to an external provider.
type Integration struct {
	ID       IntegrationID `json:"id"`
	Provider Provider      `json:"provider"`
	Category Category      `json:"category"`
	Name     string        `json:"name"`
	IsActive bool          `json:"isActive"`

	// ConfigEncrypted is the sealed JSON representation of IntegrationConfig.
	ConfigEncrypted []byte `json:"-"`

	OAuthToken        string    `json:"-"`
	OAuthRefreshToken string    `json:"-"`
	OAuthExpiresAt    time.Time `json:"oauthExpiresAt,omitzero"`

	LastSync     time.Time      `json:"lastSync,omitzero"`
	SyncStatus   SyncStatus     `json:"syncStatus"`
	ErrorLog     string         `json:"errorLog,omitempty"`
	FailureCount int            `json:"failureCount"`
	Metadata     map[string]any `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// IsCircuitBroken reports whether the integration failed often enough that
// sync operations must be rejected before touching the network.
func (i Integration) IsCircuitBroken() bool {
	return i.FailureCount >= CircuitBreakerThreshold
}

// NeedsTokenRefresh reports whether the OAuth token expires within the
// refresh leeway. Integrations without an expiry never need a refresh.
func (i Integration) NeedsTokenRefresh(now time.Time) bool {
	if i.OAuthExpiresAt.IsZero() {
		return false
	}

	return !now.Add(TokenRefreshLeeway).Before(i.OAuthExpiresAt)
}

// IntegrationConfig holds the decrypted provider settings of an integration.
type IntegrationConfig map[string]string

// Well-known IntegrationConfig keys.
const (
	ConfigBaseURL       = "base_url"
	ConfigAPIKey        = "api_key"
	ConfigClientID      = "client_id"
	ConfigClientSecret  = "client_secret"
	ConfigTokenURL      = "token_url"
	ConfigWebhookSecret = "webhook_secret"
	ConfigCompanyID     = "company_id"
)

// Get returns the value stored under key or an empty string.
func (c IntegrationConfig) Get(key string) string {
	if c == nil {
		return ""
	}

	return c[key]
}
