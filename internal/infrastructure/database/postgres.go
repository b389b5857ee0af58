package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"photoblog-backend/internal/config"
	"photoblog-backend/pkg/logger"
)

// PostgresDB wraps the pgx connection pool and its lifecycle.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config config.DatabaseConfig
}

func NewPostgresDB(cfg config.DatabaseConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

func (db *PostgresDB) connString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.User,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.Database,
		db.Config.SSLMode,
	)
}

// Connect builds the pool and verifies connectivity.
func (db *PostgresDB) Connect(ctx context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(db.connString())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = int32(db.Config.MaxConns)
	poolCfg.MinConns = int32(db.Config.MinConns)
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	db.Pool = pool
	logger.Info("database connected", map[string]interface{}{
		"host": db.Config.Host,
		"db":   db.Config.Database,
	})
	return nil
}

// HealthCheck pings with a short timeout.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
