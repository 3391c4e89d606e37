package main

import (
	"atsconnect/internal/config"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dispatchCommand fans an event out to the subscribed endpoints. The workers
// of a running serve command pick the deliveries up.
func dispatchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Dispatches an event to every subscribed webhook endpoint",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			event, _ := cmd.Flags().GetString("event")
			payload, _ := cmd.Flags().GetString("payload")

			if !json.Valid([]byte(payload)) {
				logger.Fatal(ctx, "payload is not valid JSON")
			}

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			deliveries, err := getServices(ctx, cfg, pgsql).webhooks.
				Dispatch(ctx, domain.EventType(event), json.RawMessage(payload))
			if err != nil {
				logger.Fatal(ctx, "could not dispatch event", zap.Error(err))
			}

			for _, d := range deliveries {
				fmt.Println(d.ID.String()) //nolint: forbidigo
			}
		},
	}

	cmd.Flags().String("event", "", "Event type, e.g. application.created")
	cmd.Flags().String("payload", "{}", "JSON payload of the event")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

func retryDeliveryCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retry-delivery",
		Short: "Queues a manual retry of a failed webhook delivery",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			raw, _ := cmd.Flags().GetString("id")

			ID, err := domain.ParseID[domain.DeliveryID](raw)
			if err != nil {
				logger.Fatal(ctx, "invalid delivery id", zap.Error(err))
			}

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			delivery, err := getServices(ctx, cfg, pgsql).webhooks.RetryDelivery(ctx, ID)
			if err != nil {
				logger.Fatal(ctx, "could not retry delivery", zap.Error(err))
			}

			logger.Info(ctx, "delivery queued",
				zap.Stringer("delivery_id", delivery.ID),
				zap.Int("attempts", delivery.Attempts))
		},
	}

	cmd.Flags().String("id", "", "Delivery ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
