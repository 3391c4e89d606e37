package postgres_test

import (
	root "atsconnect"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/storage/postgres"
	"context"
	"database/sql"
	"io/fs"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testDSN = struct {
	user, password, database string
}{"atsconnect", "atsconnect", "atsconnect_test"}

// startPostgres runs a throwaway postgres container and returns its address.
func startPostgres(t *testing.T) (host string, port int) {
	t.Helper()
	ctx := t.Context()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testDSN.user,
				"POSTGRES_PASSWORD": testDSN.password,
				"POSTGRES_DB":       testDSN.database,
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err, "could not start postgres container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err = container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return host, mapped.Int()
}

// setupTestDB connects to a fresh database with the service schema applied.
// The container is removed by t.Cleanup, the returned func only closes the
// pool.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}

	host, port := startPostgres(t)
	pg, err := postgres.New(t.Context(), postgres.Options{
		Username:           testDSN.user,
		Password:           testDSN.password,
		Host:               host,
		Port:               port,
		Database:           testDSN.database,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	migrations, err := fs.Sub(root.Migrations, "migrations")
	require.NoError(t, err)
	provider, err := goose.NewProvider(goose.DialectPostgres, pg.DB.(*sql.DB), migrations)
	require.NoError(t, err)
	_, err = provider.Up(t.Context())
	require.NoError(t, err, "could not apply migrations")

	return pg, func() { _ = pg.Close() }
}

func createIntegration(t *testing.T, pg *postgres.PgSQL, name string, category domain.Category) *domain.Integration {
	t.Helper()

	integration, err := pg.CreateIntegration(t.Context(), domain.Integration{
		Provider: domain.ProviderCustom,
		Category: category,
		Name:     name,
		IsActive: true,
	})
	require.NoError(t, err)

	return integration
}

func createEndpoint(t *testing.T, pg *postgres.PgSQL, events ...domain.EventType) *domain.WebhookEndpoint {
	t.Helper()

	endpoint, err := pg.StoreEndpoint(t.Context(), domain.WebhookEndpoint{
		URL:      "https://hooks.example.com/" + uuid.NewString(),
		Secret:   "s3cr3t",
		Events:   events,
		IsActive: true,
	})
	require.NoError(t, err)

	return endpoint
}
