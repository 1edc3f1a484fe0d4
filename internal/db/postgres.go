package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitPostgres initializes the PostgreSQL connection pool and bootstraps
// the schema.
func InitPostgres() (*pgxpool.Pool, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnvOrDefault("POSTGRES_HOST", "localhost")
		port := getEnvOrDefault("POSTGRES_PORT", "5432")
		user := getEnvOrDefault("POSTGRES_USER", "resqforce")
		password := os.Getenv("POSTGRES_PASSWORD")
		dbname := getEnvOrDefault("POSTGRES_DB", "resqforce")
		sslmode := getEnvOrDefault("POSTGRES_SSLMODE", "disable")

		databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			user, password, host, port, dbname, sslmode)
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 5 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pool, nil
}

// createTables creates the agencies and emergencies tables if they do not
// exist yet.
func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	agenciesTable := `
		CREATE TABLE IF NOT EXISTS agencies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			expertise VARCHAR(255) NOT NULL DEFAULT '',
			rescuing_id VARCHAR(64) UNIQUE NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'agency',
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			agency_type VARCHAR(50) NOT NULL DEFAULT 'local',
			last_updated TIMESTAMPTZ NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	emergenciesTable := `
		CREATE TABLE IF NOT EXISTS emergencies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			description TEXT NOT NULL,
			tag VARCHAR(100) NOT NULL,
			severity VARCHAR(10) NOT NULL DEFAULT 'low',
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			reported_by VARCHAR(50) NOT NULL DEFAULT 'public',
			created_at TIMESTAMPTZ NOT NULL
		);
	`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_agencies_email ON agencies(email);`,
		`CREATE INDEX IF NOT EXISTS idx_agencies_rescuing_id ON agencies(rescuing_id);`,
		`CREATE INDEX IF NOT EXISTS idx_agencies_role ON agencies(role);`,
		`CREATE INDEX IF NOT EXISTS idx_emergencies_status ON emergencies(status);`,
		`CREATE INDEX IF NOT EXISTS idx_emergencies_created_at ON emergencies(created_at DESC);`,
	}

	for _, table := range []string{agenciesTable, emergenciesTable} {
		if _, err := pool.Exec(ctx, table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	for _, index := range indexes {
		if _, err := pool.Exec(ctx, index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default value if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
