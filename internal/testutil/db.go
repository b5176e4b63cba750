package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/udisondev/battlemap/internal/db"
)

// SkipWithoutDocker skips tests that start containers when run with -short.
func SkipWithoutDocker(tb testing.TB) {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping PostgreSQL testcontainer in short mode")
	}
}

// SetupTestDB starts a PostgreSQL 16 container, migrates it and returns a
// pool. Container and pool are released on test cleanup.
func SetupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	SkipWithoutDocker(tb)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		tb.Fatalf("starting postgres container: %v", err)
	}
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			tb.Logf("terminating postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tb.Fatalf("getting connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		tb.Fatalf("connecting to test db: %v", err)
	}
	tb.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool); err != nil {
		tb.Fatalf("migrating test db: %v", err)
	}
	return pool
}
