package db

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
)

// CreateTestPool connects to the database from TEST_POSTGRESQL_URL and applies
// migrations from TEST_MIGRATIONS_PATH. Tests are skipped when the URL is not
// set.
func CreateTestPool(t *testing.T) *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "../../../migrations"
	}
	if err := ApplyMigrations(migrationsPath, connString); err != nil {
		t.Fatalf("Could not apply migrations: %v.", err)
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		t.Fatalf("Could not connect to the database: %v.", err)
	}
	return pool
}

func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE users, categories, coupons RESTART IDENTITY")
	if err != nil {
		t.Fatalf("Could not truncate DB tables: %v.", err)
	}
}
