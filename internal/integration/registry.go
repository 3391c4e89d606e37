package integration

import (
	"atsconnect/internal/config"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/provider"
	"atsconnect/pkg/secrets"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Options configure the registry. They are typically derived from the
// application config.
type Options struct {
	// ConfigCacheSize is the number of decrypted configs kept in memory.
	ConfigCacheSize int
	// TokenHTTPClient is used to reach OAuth token endpoints. Defaults to
	// http.DefaultClient.
	TokenHTTPClient *http.Client
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ConfigCacheSize: cfg.Integrations.ConfigCacheSize,
		TokenHTTPClient: &http.Client{Timeout: cfg.Integrations.ProviderTimeout},
	}
}

// configKey identifies one version of an integration config. A config update
// bumps updated_at, so stale entries are never served.
type configKey struct {
	id      domain.IntegrationID
	updated int64
}

type registry struct {
	options   Options
	storage   storage.Storage
	sealer    secrets.Sealer
	validate  *validator.Validate
	configs   *lru.Cache[configKey, domain.IntegrationConfig]
	refreshes singleflight.Group
	now       func() time.Time
}

// New creates a Registry backed by storage, sealing configs with sealer.
func New(storage storage.Storage, sealer secrets.Sealer, options Options) (Registry, error) {
	if options.ConfigCacheSize < 1 {
		options.ConfigCacheSize = 1
	}
	if options.TokenHTTPClient == nil {
		options.TokenHTTPClient = http.DefaultClient
	}

	configs, err := lru.New[configKey, domain.IntegrationConfig](options.ConfigCacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not create config cache: %w", err)
	}

	return &registry{
		options:  options,
		storage:  storage,
		sealer:   sealer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		configs:  configs,
		now:      time.Now,
	}, nil
}

// Create validates the input, seals its config and stores the integration.
func (r *registry) Create(ctx context.Context, input CreateInput) (*domain.Integration, error) {
	if err := r.validate.Struct(input); err != nil {
		return nil, serrors.Wrap(serrors.ErrValidation, err, "invalid integration")
	}
	if !provider.Supports(input.Provider, input.Category) {
		return nil, serrors.With(serrors.ErrValidation,
			"provider %q does not support category %q", input.Provider, input.Category)
	}

	sealed, err := r.seal(input.Config)
	if err != nil {
		return nil, err
	}

	res, err := r.storage.CreateIntegration(ctx, domain.Integration{
		Provider:          input.Provider,
		Category:          input.Category,
		Name:              input.Name,
		IsActive:          true,
		ConfigEncrypted:   sealed,
		OAuthToken:        input.OAuthToken,
		OAuthRefreshToken: input.OAuthRefreshToken,
		OAuthExpiresAt:    input.OAuthExpiresAt,
		SyncStatus:        domain.SyncStatusIdle,
		Metadata:          input.Metadata,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err,
			"integration %q already exists for provider %q", input.Name, input.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create integration: %w", err)
	}

	return res, nil
}

// Get returns the integration or a not-found error.
func (r *registry) Get(ctx context.Context, ID domain.IntegrationID) (*domain.Integration, error) {
	res, err := r.storage.IntegrationByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get integration: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "integration not found")
	}

	return res, nil
}

// Config decrypts the integration config. The returned map is a copy and may
// be modified by the caller.
func (r *registry) Config(_ context.Context, integration domain.Integration) (domain.IntegrationConfig, error) {
	key := configKey{id: integration.ID, updated: integration.UpdatedAt.UnixNano()}
	if cfg, ok := r.configs.Get(key); ok {
		return maps.Clone(cfg), nil
	}

	if len(integration.ConfigEncrypted) == 0 {
		return domain.IntegrationConfig{}, nil
	}

	plain, err := r.sealer.Open(integration.ConfigEncrypted)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrConfiguration, err, "could not decrypt integration config")
	}

	cfg := domain.IntegrationConfig{}
	if err := json.Unmarshal(plain, &cfg); err != nil {
		return nil, serrors.Wrap(serrors.ErrConfiguration, err, "integration config is not a JSON object")
	}

	r.configs.Add(key, cfg)

	return maps.Clone(cfg), nil
}

// UpdateConfig replaces the sealed config of an integration.
func (r *registry) UpdateConfig(ctx context.Context,
	ID domain.IntegrationID,
	config domain.IntegrationConfig) (*domain.Integration, error) {
	sealed, err := r.seal(config)
	if err != nil {
		return nil, err
	}

	return r.update(ctx, ID, storage.IntegrationUpdates{ConfigEncrypted: sealed})
}

// MarkSyncStatus records the outcome of a sync run in one statement. Success
// closes the circuit, errors count towards opening it.
func (r *registry) MarkSyncStatus(ctx context.Context,
	ID domain.IntegrationID,
	status domain.SyncStatus,
	syncErr error) (*domain.Integration, error) {
	updates := storage.IntegrationUpdates{SyncStatus: status}

	switch status {
	case domain.SyncStatusSuccess:
		updates.ErrorLog = new(string)
		updates.FailureCount = storage.FailureCountReset
		updates.TouchLastSync = true
	case domain.SyncStatusError:
		msg := "unknown error"
		if syncErr != nil {
			msg = syncErr.Error()
		}
		updates.ErrorLog = &msg
		updates.FailureCount = storage.FailureCountIncrement
	case domain.SyncStatusIdle, domain.SyncStatusSyncing:
	default:
		return nil, serrors.With(serrors.ErrValidation, "unknown sync status %q", status)
	}

	return r.update(ctx, ID, updates)
}

// Connect resolves the connection details a provider client needs: the
// decrypted config and a usable access token.
func (r *registry) Connect(ctx context.Context, integration domain.Integration) (provider.Connection, error) {
	cfg, err := r.Config(ctx, integration)
	if err != nil {
		return provider.Connection{}, err
	}

	token, err := r.AccessToken(ctx, integration)
	if err != nil {
		return provider.Connection{}, err
	}

	return provider.Connection{
		Provider:    integration.Provider,
		BaseURL:     cfg.Get(domain.ConfigBaseURL),
		AccessToken: token,
		APIKey:      cfg.Get(domain.ConfigAPIKey),
		CompanyID:   cfg.Get(domain.ConfigCompanyID),
	}, nil
}

func (r *registry) update(ctx context.Context,
	ID domain.IntegrationID,
	updates storage.IntegrationUpdates) (*domain.Integration, error) {
	res, err := r.storage.UpdateIntegration(ctx, ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update integration: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "integration not found")
	}

	return res, nil
}

func (r *registry) seal(cfg domain.IntegrationConfig) ([]byte, error) {
	if cfg == nil {
		cfg = domain.IntegrationConfig{}
	}

	plain, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not encode integration config: %w", err)
	}

	sealed, err := r.sealer.Seal(plain)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrConfiguration, err, "could not encrypt integration config")
	}

	return sealed, nil
}

// Gate rejects sync operations on integrations of another category, inactive
// integrations and integrations whose circuit is open. It runs before any
// network call.
func Gate(integration domain.Integration, category domain.Category) error {
	switch {
	case integration.Category != category:
		return serrors.With(serrors.ErrValidation,
			"integration %s is a %s integration, not %s", integration.ID, integration.Category, category)
	case !integration.IsActive:
		return serrors.With(serrors.ErrValidation, "integration %s is not active", integration.ID)
	case integration.IsCircuitBroken():
		return serrors.With(serrors.ErrValidation,
			"integration %s is disabled after %d consecutive failures", integration.ID, integration.FailureCount)
	}

	return nil
}
