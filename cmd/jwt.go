package main

import (
	"atsconnect/internal/config"
	"atsconnect/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand mints an operator token for the v1 API, signed RS256 with the
// configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	var (
		operator string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates an operator JWT for the v1 API",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if _, err := uuid.Parse(operator); err != nil {
				logger.Fatal(ctx, "operator must be a uuid", zap.Error(err))
			}
			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
				Subject:   operator,
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			}).SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "Operator ID, a uuid")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "Token lifetime, e.g. 15m or 24h")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}
