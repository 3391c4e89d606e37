package main

import (
	root "atsconnect"
	"atsconnect/internal/config"
	"atsconnect/pkg/logger"
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the service schema, then the River job tables.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the service and job queue tables to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := pgsql.DB.(*sql.DB)
			if err := migrateSchema(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate service schema", zap.Error(err))
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate job queue", zap.Error(err))
			}
		},
	}
}

func migrateSchema(ctx context.Context, db *sql.DB) error {
	migrations, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	for _, res := range results {
		logger.Info(ctx, "migration applied",
			zap.Int64("version", res.Source.Version),
			zap.Duration("took", res.Duration))
	}

	return nil
}

func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}

	// without a target version every pending migration is applied
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not apply river migrations: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "river migration applied", zap.Int("version", v.Version))
	}

	return nil
}
