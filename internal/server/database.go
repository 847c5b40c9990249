package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docstack-labs/idverify/gen/ent"
	"github.com/docstack-labs/idverify/internal/common"
	repo "github.com/docstack-labs/idverify/internal/repository"
)

// ConnectDB opens the configured database and returns the Ent client plus the
// pgx pool (nil when running on SQLite).
func ConnectDB(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if cfg.SQLitePath != "" {
		entc, err := repo.OpenSQLite(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return entc, nil, nil
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.DSN,
		MaxConns:         cfg.MaxConns,
		MinConns:         cfg.MinConns,
		MaxConnLifetime:  cfg.MaxConnLifetime,
		MaxConnIdleTime:  cfg.MaxConnIdleTime,
		DialTimeout:      cfg.DialTimeout,
		StatementTimeout: cfg.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, pool, nil
}

// PingDB pings the database to ensure it's responsive. SQLite deployments
// have no pool and are a no-op.
func PingDB(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, timeout time.Duration) error {
	if pool == nil {
		return nil
	}
	if err := repo.HealthCheck(ctx, pool, timeout, logger); err != nil {
		logger.Error("database ping failed", "error", err)
		return err
	}
	logger.Debug("database ping successful")
	return nil
}

// CloseDB closes the database connections gracefully
func CloseDB(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	repo.Close(entc, pool, logger)
}
