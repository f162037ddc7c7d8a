package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/CypherCore/CypherCore-sub016/internal/db/migrations"
)

// RunMigrations brings the packet_log schema at dsn up to date.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening %s for migrations: %w", redactDSN(dsn), err)
	}
	defer sqlDB.Close()

	version, err := migrations.Up(ctx, sqlDB)
	if err != nil {
		return err
	}
	slog.Info("schema up to date", "version", version)
	return nil
}
