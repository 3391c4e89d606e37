package integration_test

import (
	"atsconnect/internal/integration"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/secrets"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/storage"
	"context"
	"errors"
	"testing"
	"time"

	mockstorage "atsconnect/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRegistry(t *testing.T) (*mockstorage.MockStorage, secrets.Sealer, integration.Registry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	sealer, err := secrets.NewAESGCM("registry-test-key")
	require.NoError(t, err)

	r, err := integration.New(st, sealer, integration.Options{ConfigCacheSize: 8})
	require.NoError(t, err)

	return st, sealer, r
}

func sealConfig(t *testing.T, sealer secrets.Sealer, cfg string) []byte {
	t.Helper()

	sealed, err := sealer.Seal([]byte(cfg))
	require.NoError(t, err)

	return sealed
}

func TestRegistry_Create(t *testing.T) {
	st, sealer, r := newTestRegistry(t)

	st.EXPECT().CreateIntegration(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in domain.Integration) (*domain.Integration, error) {
			require.Equal(t, domain.ProviderLinkedIn, in.Provider)
			require.True(t, in.IsActive)
			require.Equal(t, domain.SyncStatusIdle, in.SyncStatus)

			plain, err := sealer.Open(in.ConfigEncrypted)
			require.NoError(t, err)
			require.JSONEq(t, `{"api_key":"secret"}`, string(plain))

			in.ID = domain.IntegrationID(uuid.New())

			return &in, nil
		},
	)

	res, err := r.Create(context.Background(), integration.CreateInput{
		Provider: domain.ProviderLinkedIn,
		Category: domain.CategoryJobBoard,
		Name:     "LinkedIn EU",
		Config:   domain.IntegrationConfig{domain.ConfigAPIKey: "secret"},
	})
	require.NoError(t, err)
	require.NotZero(t, res.ID)
}

func TestRegistry_Create_Invalid(t *testing.T) {
	_, _, r := newTestRegistry(t)

	tests := []struct {
		name  string
		input integration.CreateInput
	}{
		{"missing name", integration.CreateInput{Provider: domain.ProviderIndeed, Category: domain.CategoryJobBoard}},
		{"unknown category", integration.CreateInput{Provider: domain.ProviderIndeed, Category: "crm", Name: "x"}},
		{"category mismatch", integration.CreateInput{Provider: domain.ProviderIndeed, Category: domain.CategoryHRIS, Name: "x"}},
		{"unknown provider", integration.CreateInput{Provider: "myspace", Category: domain.CategoryJobBoard, Name: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Create(context.Background(), tt.input)
			require.ErrorIs(t, err, serrors.ErrValidation)
		})
	}
}

func TestRegistry_Create_CustomCategoryAllowed(t *testing.T) {
	st, _, r := newTestRegistry(t)

	st.EXPECT().CreateIntegration(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in domain.Integration) (*domain.Integration, error) {
			return &in, nil
		},
	)

	_, err := r.Create(context.Background(), integration.CreateInput{
		Provider: domain.ProviderWorkday,
		Category: domain.CategoryCustom,
		Name:     "workday custom feed",
	})
	require.NoError(t, err)
}

func TestRegistry_Create_Duplicate(t *testing.T) {
	st, _, r := newTestRegistry(t)

	st.EXPECT().CreateIntegration(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(storage.ErrDuplicate, errors.New("integrations_provider_name_key")))

	_, err := r.Create(context.Background(), integration.CreateInput{
		Provider: domain.ProviderGusto,
		Category: domain.CategoryHRIS,
		Name:     "payroll",
	})
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestRegistry_Get_NotFound(t *testing.T) {
	st, _, r := newTestRegistry(t)

	st.EXPECT().IntegrationByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := r.Get(context.Background(), domain.IntegrationID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRegistry_Config_CachedPerVersion(t *testing.T) {
	_, sealer, r := newTestRegistry(t)

	in := domain.Integration{
		ID:              domain.IntegrationID(uuid.New()),
		ConfigEncrypted: sealConfig(t, sealer, `{"api_key":"v1"}`),
		UpdatedAt:       time.Unix(100, 0),
	}

	cfg, err := r.Config(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "v1", cfg.Get(domain.ConfigAPIKey))

	// the returned map is a copy
	cfg[domain.ConfigAPIKey] = "mutated"

	// same version is served from the cache even if the ciphertext is gone
	cached := in
	cached.ConfigEncrypted = []byte("garbage")
	cfg, err = r.Config(context.Background(), cached)
	require.NoError(t, err)
	require.Equal(t, "v1", cfg.Get(domain.ConfigAPIKey))

	// a newer version is decrypted again
	next := in
	next.ConfigEncrypted = sealConfig(t, sealer, `{"api_key":"v2"}`)
	next.UpdatedAt = time.Unix(200, 0)
	cfg, err = r.Config(context.Background(), next)
	require.NoError(t, err)
	require.Equal(t, "v2", cfg.Get(domain.ConfigAPIKey))
}

func TestRegistry_Config_Undecryptable(t *testing.T) {
	_, _, r := newTestRegistry(t)

	_, err := r.Config(context.Background(), domain.Integration{
		ID:              domain.IntegrationID(uuid.New()),
		ConfigEncrypted: []byte("not sealed by this key at all"),
	})
	require.ErrorIs(t, err, serrors.ErrConfiguration)
}

func TestRegistry_UpdateConfig(t *testing.T) {
	st, sealer, r := newTestRegistry(t)
	id := domain.IntegrationID(uuid.New())

	st.EXPECT().UpdateIntegration(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.IntegrationID, u storage.IntegrationUpdates) (*domain.Integration, error) {
			plain, err := sealer.Open(u.ConfigEncrypted)
			require.NoError(t, err)
			require.JSONEq(t, `{"base_url":"https://api.example.com"}`, string(plain))

			return &domain.Integration{ID: id, ConfigEncrypted: u.ConfigEncrypted}, nil
		},
	)

	_, err := r.UpdateConfig(context.Background(), id, domain.IntegrationConfig{
		domain.ConfigBaseURL: "https://api.example.com",
	})
	require.NoError(t, err)
}

func TestRegistry_MarkSyncStatus(t *testing.T) {
	id := domain.IntegrationID(uuid.New())

	tests := []struct {
		name   string
		status domain.SyncStatus
		err    error
		check  func(t *testing.T, u storage.IntegrationUpdates)
	}{
		{
			name:   "success resets the circuit",
			status: domain.SyncStatusSuccess,
			check: func(t *testing.T, u storage.IntegrationUpdates) {
				require.Equal(t, storage.FailureCountReset, u.FailureCount)
				require.True(t, u.TouchLastSync)
				require.NotNil(t, u.ErrorLog)
				require.Empty(t, *u.ErrorLog)
			},
		},
		{
			name:   "error counts towards the circuit",
			status: domain.SyncStatusError,
			err:    errors.New("provider returned 500"),
			check: func(t *testing.T, u storage.IntegrationUpdates) {
				require.Equal(t, storage.FailureCountIncrement, u.FailureCount)
				require.False(t, u.TouchLastSync)
				require.Equal(t, "provider returned 500", *u.ErrorLog)
			},
		},
		{
			name:   "syncing only sets the status",
			status: domain.SyncStatusSyncing,
			check: func(t *testing.T, u storage.IntegrationUpdates) {
				require.Equal(t, storage.FailureCountUnchanged, u.FailureCount)
				require.Nil(t, u.ErrorLog)
				require.False(t, u.TouchLastSync)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _, r := newTestRegistry(t)

			st.EXPECT().UpdateIntegration(gomock.Any(), id, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.IntegrationID, u storage.IntegrationUpdates) (*domain.Integration, error) {
					require.Equal(t, tt.status, u.SyncStatus)
					tt.check(t, u)

					return &domain.Integration{ID: id, SyncStatus: u.SyncStatus}, nil
				},
			)

			res, err := r.MarkSyncStatus(context.Background(), id, tt.status, tt.err)
			require.NoError(t, err)
			require.Equal(t, tt.status, res.SyncStatus)
		})
	}
}

func TestRegistry_MarkSyncStatus_NotFound(t *testing.T) {
	st, _, r := newTestRegistry(t)

	st.EXPECT().UpdateIntegration(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := r.MarkSyncStatus(context.Background(), domain.IntegrationID(uuid.New()), domain.SyncStatusIdle, nil)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestGate(t *testing.T) {
	ok := domain.Integration{Category: domain.CategoryJobBoard, IsActive: true, FailureCount: 9}
	require.NoError(t, integration.Gate(ok, domain.CategoryJobBoard))

	wrongCategory := ok
	require.ErrorIs(t, integration.Gate(wrongCategory, domain.CategoryHRIS), serrors.ErrValidation)

	inactive := ok
	inactive.IsActive = false
	require.ErrorIs(t, integration.Gate(inactive, domain.CategoryJobBoard), serrors.ErrValidation)

	broken := ok
	broken.FailureCount = domain.CircuitBreakerThreshold
	require.ErrorIs(t, integration.Gate(broken, domain.CategoryJobBoard), serrors.ErrValidation)
}
