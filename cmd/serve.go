package main

import (
	"atsconnect/internal/api"
	"atsconnect/internal/api/handler/v1handler"
	"atsconnect/internal/config"
	"atsconnect/internal/events"
	"atsconnect/internal/receiver"
	"atsconnect/internal/worker"
	"atsconnect/pkg/logger"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server, the webhook receiver and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := getServices(ctx, cfg, pgsql)

			bus := EventBus.New()
			bridge, err := events.NewBridge(bus, svc.webhooks)
			if err != nil {
				logger.Fatal(ctx, "could not subscribe webhooks to domain events", zap.Error(err))
			}
			defer func() { _ = bridge.Close() }()

			riverClient, err := worker.Start(ctx, pgsql.Pool, worker.NewOptions(cfg), worker.Services{
				Webhooks:     svc.webhooks,
				Integrations: svc.integrations,
				JobBoard:     svc.jobBoard,
				HRIS:         svc.hris,
				Storage:      pgsql,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Integrations: svc.integrations,
					Webhooks:     svc.webhooks,
					JobBoard:     svc.jobBoard,
					HRIS:         svc.hris,
				},
				Receiver: receiver.New(svc.integrations, pgsql, receiver.NewOptions(cfg, svc.recorder, bus)),
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
