package database

import (
	"benefits-portal-service/internal/app/config"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func PostgresConnectionString(driverConfig *config.DriverConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		driverConfig.Postgres.Username,
		driverConfig.Postgres.Password,
		driverConfig.Postgres.Host,
		driverConfig.Postgres.Port,
		driverConfig.Postgres.DBName,
		driverConfig.Postgres.SSLMode,
	)
}

// NewPostgresPool returns nil when Postgres is not configured.
func NewPostgresPool(ctx context.Context, driverConfig *config.DriverConfig) *pgxpool.Pool {
	if driverConfig.Postgres.Host == "" {
		log.Println("Postgres host not configured, persistence features disabled")
		return nil
	}

	poolConfig, err := pgxpool.ParseConfig(PostgresConnectionString(driverConfig))
	if err != nil {
		log.Fatalf("Failed to parse postgres connection string: %s", err.Error())
	}
	if driverConfig.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = int32(driverConfig.Postgres.MaxConns)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		log.Fatalf("Failed to open postgres connection pool: %s", err.Error())
	}

	err = pool.Ping(connectCtx)
	if err != nil {
		log.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	log.Println("Successfully connected to postgres database")
	return pool
}
