package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/CypherCore/CypherCore-sub016/internal/db/migrations"
)

const postgresImage = "postgres:16-alpine"

// SetupTestDB runs a throwaway Postgres with the packet_log schema applied.
// It returns a pool and the container DSN; both are released on cleanup.
// Without a container runtime, or under -short, the test is skipped.
func SetupTestDB(tb testing.TB) (*pgxpool.Pool, string) {
	tb.Helper()
	if testing.Short() {
		tb.Skip("postgres container skipped in -short mode")
	}
	ctx := context.Background()

	pg, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("packets"),
		postgres.WithUsername("pktdump"),
		postgres.WithPassword("pktdump"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		tb.Skipf("no postgres container: %v", err)
	}
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pg); err != nil {
			tb.Logf("terminating %s: %v", postgresImage, err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tb.Fatalf("container dsn: %v", err)
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		tb.Fatalf("pool on %s: %v", postgresImage, err)
	}
	tb.Cleanup(pool.Close)

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		tb.Fatalf("sql handle on %s: %v", postgresImage, err)
	}
	defer sqlDB.Close()
	if _, err := migrations.Up(ctx, sqlDB); err != nil {
		tb.Fatalf("migrating test db: %v", err)
	}
	return pool, dsn
}
