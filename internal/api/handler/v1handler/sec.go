package v1handler

import (
	"atsconnect/internal/config"
	"atsconnect/pkg/controller"
	"atsconnect/pkg/serrors"
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey string

// OperatorIDKey is the context key of the authenticated operator id.
const OperatorIDKey ctxKey = "operatorID"

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key operator tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates operators with RS256 bearer tokens whose subject
// is the operator id.
type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Authenticate verifies token and stores the operator id in the returned context.
func (s *SecHandler) Authenticate(ctx context.Context, token string) (context.Context, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid token claims")
	}

	operatorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, OperatorIDKey, operatorID), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" token.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || token == "" {
			controller.WriteError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.Authenticate(r.Context(), token)
		if err != nil {
			controller.WriteError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OperatorID returns the authenticated operator of ctx.
func OperatorID(ctx context.Context) (uuid.UUID, error) {
	ID, ok := ctx.Value(OperatorIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("no operator in context")
	}

	return ID, nil
}
