package integration_test

import (
	"atsconnect/pkg/domain"
	"atsconnect/pkg/secrets"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/storage"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func tokenServer(t *testing.T, status int, body map[string]any, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		require.NoError(t, r.ParseForm())
		require.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		require.Equal(t, "old-refresh", r.PostForm.Get("refresh_token"))
		require.Equal(t, "client-1", r.PostForm.Get("client_id"))

		// let concurrent callers pile up on the same flight
		time.Sleep(50 * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func oauthIntegration(t *testing.T, sealer secrets.Sealer, tokenURL string) *domain.Integration {
	t.Helper()

	cfg, err := json.Marshal(domain.IntegrationConfig{
		domain.ConfigTokenURL:     tokenURL,
		domain.ConfigClientID:     "client-1",
		domain.ConfigClientSecret: "shh",
	})
	require.NoError(t, err)

	return &domain.Integration{
		ID:                domain.IntegrationID(uuid.New()),
		Provider:          domain.ProviderWorkday,
		Category:          domain.CategoryHRIS,
		IsActive:          true,
		ConfigEncrypted:   sealConfig(t, sealer, string(cfg)),
		OAuthToken:        "old-access",
		OAuthRefreshToken: "old-refresh",
		OAuthExpiresAt:    time.Now().Add(time.Minute),
	}
}

func TestRegistry_RefreshOAuthToken(t *testing.T) {
	st, sealer, r := newTestRegistry(t)
	srv := tokenServer(t, http.StatusOK, map[string]any{
		"access_token": "new-access",
		"token_type":   "Bearer",
		"expires_in":   3600,
	}, nil)
	in := oauthIntegration(t, sealer, srv.URL)

	st.EXPECT().IntegrationByID(gomock.Any(), in.ID).Return(in, nil)
	st.EXPECT().UpdateIntegration(gomock.Any(), in.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.IntegrationID, u storage.IntegrationUpdates) (*domain.Integration, error) {
			require.Equal(t, storage.FailureCountReset, u.FailureCount)
			require.NotNil(t, u.Tokens)
			require.Equal(t, "new-access", u.Tokens.AccessToken)
			// provider did not rotate the refresh token
			require.Equal(t, "old-refresh", u.Tokens.RefreshToken)
			require.WithinDuration(t, time.Now().Add(time.Hour), u.Tokens.ExpiresAt, time.Minute)

			out := *in
			out.OAuthToken = u.Tokens.AccessToken
			out.OAuthExpiresAt = u.Tokens.ExpiresAt

			return &out, nil
		},
	)

	res, err := r.RefreshOAuthToken(context.Background(), in.ID)
	require.NoError(t, err)
	require.Equal(t, "new-access", res.OAuthToken)
}

func TestRegistry_RefreshOAuthToken_ProviderError(t *testing.T) {
	st, sealer, r := newTestRegistry(t)
	srv := tokenServer(t, http.StatusBadRequest, map[string]any{"error": "invalid_grant"}, nil)
	in := oauthIntegration(t, sealer, srv.URL)

	st.EXPECT().IntegrationByID(gomock.Any(), in.ID).Return(in, nil)
	st.EXPECT().UpdateIntegration(gomock.Any(), in.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.IntegrationID, u storage.IntegrationUpdates) (*domain.Integration, error) {
			require.Equal(t, storage.FailureCountIncrement, u.FailureCount)
			require.Nil(t, u.Tokens)
			require.Contains(t, *u.ErrorLog, "invalid_grant")

			return in, nil
		},
	)

	_, err := r.RefreshOAuthToken(context.Background(), in.ID)
	require.ErrorContains(t, err, "invalid_grant")
}

func TestRegistry_RefreshOAuthToken_NoRefreshToken(t *testing.T) {
	st, sealer, r := newTestRegistry(t)
	in := oauthIntegration(t, sealer, "https://auth.example.com/token")
	in.OAuthRefreshToken = ""

	st.EXPECT().IntegrationByID(gomock.Any(), in.ID).Return(in, nil)

	_, err := r.RefreshOAuthToken(context.Background(), in.ID)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestRegistry_RefreshOAuthToken_MissingConfig(t *testing.T) {
	st, sealer, r := newTestRegistry(t)
	in := oauthIntegration(t, sealer, "")

	st.EXPECT().IntegrationByID(gomock.Any(), in.ID).Return(in, nil)

	_, err := r.RefreshOAuthToken(context.Background(), in.ID)
	require.ErrorIs(t, err, serrors.ErrConfiguration)
}

func TestRegistry_RefreshOAuthToken_ConcurrentCallsShareOneRequest(t *testing.T) {
	st, sealer, r := newTestRegistry(t)

	var calls atomic.Int32
	srv := tokenServer(t, http.StatusOK, map[string]any{
		"access_token":  "new-access",
		"refresh_token": "rotated",
		"expires_in":    3600,
	}, &calls)
	in := oauthIntegration(t, sealer, srv.URL)

	st.EXPECT().IntegrationByID(gomock.Any(), in.ID).Return(in, nil).MinTimes(1)
	st.EXPECT().UpdateIntegration(gomock.Any(), in.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.IntegrationID, u storage.IntegrationUpdates) (*domain.Integration, error) {
			require.Equal(t, "rotated", u.Tokens.RefreshToken)
			out := *in
			out.OAuthToken = u.Tokens.AccessToken

			return &out, nil
		},
	).MinTimes(1)

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.RefreshOAuthToken(context.Background(), in.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	require.Less(t, calls.Load(), int32(5))
}

func TestRegistry_AccessToken(t *testing.T) {
	st, sealer, r := newTestRegistry(t)

	fresh := oauthIntegration(t, sealer, "https://auth.example.com/token")
	fresh.OAuthExpiresAt = time.Now().Add(time.Hour)
	token, err := r.AccessToken(context.Background(), *fresh)
	require.NoError(t, err)
	require.Equal(t, "old-access", token)

	noExpiry := *fresh
	noExpiry.OAuthExpiresAt = time.Time{}
	token, err = r.AccessToken(context.Background(), noExpiry)
	require.NoError(t, err)
	require.Equal(t, "old-access", token)

	srv := tokenServer(t, http.StatusOK, map[string]any{"access_token": "new-access", "expires_in": 3600}, nil)
	expiring := oauthIntegration(t, sealer, srv.URL)
	st.EXPECT().IntegrationByID(gomock.Any(), expiring.ID).Return(expiring, nil)
	st.EXPECT().UpdateIntegration(gomock.Any(), expiring.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.IntegrationID, u storage.IntegrationUpdates) (*domain.Integration, error) {
			out := *expiring
			out.OAuthToken = u.Tokens.AccessToken

			return &out, nil
		},
	)

	token, err = r.AccessToken(context.Background(), *expiring)
	require.NoError(t, err)
	require.Equal(t, "new-access", token)
}

func TestRegistry_RefreshExpiringTokens(t *testing.T) {
	st, sealer, r := newTestRegistry(t)
	srv := tokenServer(t, http.StatusOK, map[string]any{"access_token": "new-access", "expires_in": 3600}, nil)

	good := oauthIntegration(t, sealer, srv.URL)
	bad := oauthIntegration(t, sealer, "")

	st.EXPECT().IntegrationsExpiringBefore(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, before time.Time) ([]domain.Integration, error) {
			require.WithinDuration(t, time.Now().Add(domain.TokenRefreshLeeway), before, time.Minute)

			return []domain.Integration{*bad, *good}, nil
		},
	)
	st.EXPECT().IntegrationByID(gomock.Any(), bad.ID).Return(bad, nil)
	st.EXPECT().IntegrationByID(gomock.Any(), good.ID).Return(good, nil)
	st.EXPECT().UpdateIntegration(gomock.Any(), good.ID, gomock.Any()).Return(good, nil)

	n, err := r.RefreshExpiringTokens(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRegistry_Connect(t *testing.T) {
	_, sealer, r := newTestRegistry(t)

	in := domain.Integration{
		ID:       domain.IntegrationID(uuid.New()),
		Provider: domain.ProviderGusto,
		ConfigEncrypted: sealConfig(t, sealer,
			`{"base_url":"https://gusto.test","api_key":"k","company_id":"c-1"}`),
		OAuthToken: "bearer",
	}

	conn, err := r.Connect(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, domain.ProviderGusto, conn.Provider)
	require.Equal(t, "https://gusto.test", conn.BaseURL)
	require.Equal(t, "k", conn.APIKey)
	require.Equal(t, "c-1", conn.CompanyID)
	require.Equal(t, "bearer", conn.AccessToken)
}
