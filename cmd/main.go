// Package main provides the CLI entrypoint for ATS Connect.
// It wires subcommands (serve, migrate, jwt, dispatch, retry-delivery), loads
// configuration, and initializes logging.
package main

import (
	"atsconnect/internal/config"
	"atsconnect/pkg/logger"
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atsconnect",
		Short: "Job board, HRIS and webhook integrations for the ATS",
	}

	// cobra flags are parsed on execution, the config is needed before that.
	// both are declared so cobra accepts them.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().StringP("env", "e", "", "Optional .env file loaded before the config")

	configPath := flag.String("c", "config.yml", "The config file path")
	envFile := flag.String("e", "", "The .env file path")
	flag.Parse()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath, envFiles...)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
		dispatchCommand(cfg),
		retryDeliveryCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
