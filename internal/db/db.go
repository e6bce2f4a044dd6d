package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"

// Open creates a pool and verifies connectivity within timeout.
func Open(ctx context.Context, dsn string, timeout time.Duration) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// SQLDB wraps pool for database/sql consumers such as goose. Closing the
// returned handle does not close the pool.
func SQLDB(pool *pgxpool.Pool) *sql.DB {
	return stdlib.OpenDBFromPool(pool)
}

func init() {
	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		panic(err)
	}
}

func MigrateUp(ctx context.Context, db *sql.DB) error {
	return goose.UpContext(ctx, db, MigrationsDir)
}

func MigrateDown(ctx context.Context, db *sql.DB) error {
	return goose.DownContext(ctx, db, MigrationsDir)
}

func MigrationStatus(ctx context.Context, db *sql.DB) error {
	return goose.StatusContext(ctx, db, MigrationsDir)
}
