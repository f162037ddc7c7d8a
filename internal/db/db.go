// Package db stores mirrored capture packets in PostgreSQL.
package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "pktdump"

// DB owns the pgx pool used by the packet mirror.
type DB struct {
	pool *pgxpool.Pool
}

// New opens a pool on dsn and verifies it with a ping.
func New(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing dsn %s: %w", redactDSN(dsn), err)
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", redactDSN(dsn), err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging %s: %w", redactDSN(dsn), err)
	}
	return &DB{pool: pool}, nil
}

func (d *DB) Close() {
	d.pool.Close()
}

func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}

// Packets returns a repository over the packet_log table.
func (d *DB) Packets() *PacketRepository {
	return NewPacketRepository(d.pool)
}

// redactDSN hides the password of a URL-style dsn for logs and errors.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return "<dsn>"
	}
	return u.Redacted()
}
