package init_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"tracker/src/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

var TestDB *pgxpool.Pool

// SetupTestDB connects to the configured Postgres instance. Tests that need a
// real database are skipped when none is reachable.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	if TestDB != nil {
		return TestDB
	}

	dsn := os.Getenv("TEST_PG_CONNECTION_STRING")
	if dsn == "" {
		cfg, err := loadTestConfig()
		if err != nil {
			t.Skipf("no test database configuration: %v", err)
		}

		dsn = cfg.Databases.SQL.ConnectionString
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
				cfg.Databases.SQL.Host,
				cfg.Databases.SQL.Username,
				cfg.Databases.SQL.Password,
				cfg.Databases.SQL.Database,
				cfg.Databases.SQL.Port)
		}
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("Failed to parse database config: %v", err)
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Skipf("test database unreachable: %v", err)
	}

	TruncateTables(t, pool)

	TestDB = pool
	return pool
}

func loadTestConfig() (*config.Config, error) {
	serviceRoot, err := getServiceRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to get service root path: %w", err)
	}

	cfg, err := config.LoadConfig(filepath.Join(serviceRoot, "settings"))
	if err != nil {
		return nil, fmt.Errorf("failed to load test configuration: %w", err)
	}
	return cfg, nil
}

// getServiceRoot walks up from the working directory until it finds go.mod.
func getServiceRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd, nil
		}

		parent := filepath.Dir(wd)
		if parent == wd {
			return "", fmt.Errorf("go.mod not found in any parent directory")
		}
		wd = parent
	}
}

// CleanupTestDB closes the database connection
func CleanupTestDB() {
	if TestDB != nil {
		TestDB.Close()
		TestDB = nil
	}
}

// TruncateTables empties every table touched by the repository tests.
func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	if pool == nil {
		t.Fatal("Database connection not initialized")
	}

	for _, table := range []string{"holdings", "users"} {
		_, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			t.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}
}
