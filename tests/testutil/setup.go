// Package testutil provides utilities for integration testing
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mrewrin/LeadTransfer/migrations"
)

var (
	testDBPool   *pgxpool.Pool
	testRedis    *redis.Client
	pgContainer  *postgres.PostgresContainer
	miniRedis    *miniredis.Miniredis
	setupErr     error
	setupOnce    sync.Once
	teardownOnce sync.Once
)

// TestConfig holds test environment configuration
type TestConfig struct {
	// DatabaseURL is used instead of a container when set
	DatabaseURL string
	// RedisURL is used instead of miniredis when set
	RedisURL     string
	JWTSecretKey string
}

// DefaultTestConfig returns default test configuration
func DefaultTestConfig() TestConfig {
	return TestConfig{
		DatabaseURL:  os.Getenv("TEST_DATABASE_URL"),
		RedisURL:     os.Getenv("TEST_REDIS_URL"),
		JWTSecretKey: "test-secret-key-for-integration-tests-0123456789",
	}
}

// SetupTestEnvironment initializes the test database and Redis connections.
// PostgreSQL runs in a testcontainer with all migrations applied; Redis runs in-process.
func SetupTestEnvironment(t *testing.T) (*pgxpool.Pool, *redis.Client) {
	t.Helper()

	config := DefaultTestConfig()

	setupOnce.Do(func() {
		ctx := context.Background()

		dsn := config.DatabaseURL
		if dsn == "" {
			dsn, setupErr = startPostgresContainer(ctx)
			if setupErr != nil {
				return
			}
		}

		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			setupErr = fmt.Errorf("failed to connect to test database: %w", err)
			return
		}
		if err := pool.Ping(ctx); err != nil {
			setupErr = fmt.Errorf("failed to ping test database: %w", err)
			return
		}
		testDBPool = pool

		db := stdlib.OpenDBFromPool(pool)
		defer db.Close()
		if err := migrations.Up(ctx, db); err != nil {
			setupErr = fmt.Errorf("failed to apply migrations: %w", err)
			return
		}

		redisURL := config.RedisURL
		if redisURL == "" {
			mr, err := miniredis.Run()
			if err != nil {
				setupErr = fmt.Errorf("failed to start miniredis: %w", err)
				return
			}
			miniRedis = mr
			redisURL = "redis://" + mr.Addr()
		}

		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			setupErr = fmt.Errorf("failed to parse Redis URL: %w", err)
			return
		}
		testRedis = redis.NewClient(opt)
		if err := testRedis.Ping(ctx).Err(); err != nil {
			setupErr = fmt.Errorf("failed to ping Redis: %w", err)
		}
	})

	if setupErr != nil {
		t.Skipf("integration environment unavailable: %v", setupErr)
	}
	return testDBPool, testRedis
}

func startPostgresContainer(ctx context.Context) (string, error) {
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("leadtransfer_test"),
		postgres.WithUsername("leadtransfer"),
		postgres.WithPassword("leadtransfer"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start postgres container: %w", err)
	}
	pgContainer = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("failed to resolve connection string: %w", err)
	}
	return dsn, nil
}

// CleanupTestEnvironment closes test connections and stops containers
func CleanupTestEnvironment() {
	teardownOnce.Do(func() {
		if testDBPool != nil {
			testDBPool.Close()
		}
		if testRedis != nil {
			testRedis.Close()
		}
		if miniRedis != nil {
			miniRedis.Close()
		}
		if pgContainer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			_ = pgContainer.Terminate(ctx)
		}
	})
}

// TruncateTables clears specified tables for test isolation
func TruncateTables(t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	ctx := context.Background()

	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			t.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}
}

// FlushRedis clears Redis test database
func FlushRedis(t *testing.T, client *redis.Client) {
	t.Helper()
	ctx := context.Background()

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush Redis: %v", err)
	}
}
