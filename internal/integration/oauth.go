package integration

import (
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/serrors"
	"atsconnect/pkg/storage"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// RefreshOAuthToken exchanges the stored refresh token for a new access
// token. Concurrent refreshes of the same integration share one provider call.
// A failed refresh counts towards the integration's circuit breaker.
func (r *registry) RefreshOAuthToken(ctx context.Context, ID domain.IntegrationID) (*domain.Integration, error) {
	res, err, _ := r.refreshes.Do(ID.String(), func() (any, error) {
		return r.refresh(ctx, ID)
	})
	if err != nil {
		return nil, err
	}

	integration, _ := res.(*domain.Integration)

	return integration, nil
}

func (r *registry) refresh(ctx context.Context, ID domain.IntegrationID) (*domain.Integration, error) {
	integration, err := r.Get(ctx, ID)
	if err != nil {
		return nil, err
	}
	if integration.OAuthRefreshToken == "" {
		return nil, serrors.With(serrors.ErrValidation, "integration %s has no refresh token", ID)
	}

	cfg, err := r.Config(ctx, *integration)
	if err != nil {
		return nil, err
	}
	tokenURL, clientID := cfg.Get(domain.ConfigTokenURL), cfg.Get(domain.ConfigClientID)
	if tokenURL == "" || clientID == "" {
		return nil, serrors.With(serrors.ErrConfiguration,
			"integration %s config lacks %s or %s", ID, domain.ConfigTokenURL, domain.ConfigClientID)
	}

	oc := oauth2.Config{
		ClientID:     clientID,
		ClientSecret: cfg.Get(domain.ConfigClientSecret),
		Endpoint: oauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	token, err := oc.TokenSource(
		context.WithValue(ctx, oauth2.HTTPClient, r.options.TokenHTTPClient),
		&oauth2.Token{RefreshToken: integration.OAuthRefreshToken},
	).Token()
	if err != nil {
		msg := fmt.Sprintf("token refresh failed: %s", err)
		if _, uerr := r.storage.UpdateIntegration(ctx, ID, storage.IntegrationUpdates{
			ErrorLog:     &msg,
			FailureCount: storage.FailureCountIncrement,
		}); uerr != nil {
			return nil, errors.Join(fmt.Errorf("could not refresh token: %w", err), uerr)
		}

		return nil, fmt.Errorf("could not refresh token of integration %s: %w", ID, err)
	}

	return r.update(ctx, ID, storage.IntegrationUpdates{
		FailureCount: storage.FailureCountReset,
		Tokens: &storage.OAuthTokens{
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			ExpiresAt:    token.Expiry,
		},
	})
}

// AccessToken returns the bearer token to use with the provider, refreshing
// it first when it is about to expire and a refresh token is available.
func (r *registry) AccessToken(ctx context.Context, integration domain.Integration) (string, error) {
	if !integration.NeedsTokenRefresh(r.now()) || integration.OAuthRefreshToken == "" {
		return integration.OAuthToken, nil
	}

	refreshed, err := r.RefreshOAuthToken(ctx, integration.ID)
	if err != nil {
		return "", err
	}

	return refreshed.OAuthToken, nil
}

// RefreshExpiringTokens refreshes every active integration whose token
// expires within the refresh leeway and returns how many were refreshed.
// Failures of single integrations are logged and do not stop the run.
func (r *registry) RefreshExpiringTokens(ctx context.Context) (int, error) {
	due, err := r.storage.IntegrationsExpiringBefore(ctx, r.now().Add(domain.TokenRefreshLeeway))
	if err != nil {
		return 0, fmt.Errorf("could not list expiring integrations: %w", err)
	}

	refreshed := 0
	for _, integration := range due {
		if _, err := r.RefreshOAuthToken(ctx, integration.ID); err != nil {
			logger.Warn(ctx, "could not refresh integration token",
				zap.Stringer("integration_id", integration.ID),
				zap.String("provider", string(integration.Provider)),
				zap.Error(err))

			continue
		}
		refreshed++
	}

	return refreshed, nil
}
