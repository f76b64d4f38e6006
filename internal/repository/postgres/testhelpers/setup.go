package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const postgresImage = "postgres:16-alpine"

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger

	container testcontainers.Container
}

// SetupTestDB initializes a test database connection.
// If TEST_DB_HOST is set the external database is used,
// otherwise a disposable PostgreSQL container is started.
// The test is skipped when neither is available.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	logger, _ := zap.NewDevelopment()
	if logger == nil {
		logger = zap.NewNop()
	}

	if os.Getenv("TEST_DB_HOST") != "" {
		return &TestDB{DB: connectExternal(t), Logger: logger}
	}

	db, container := startContainer(t)
	return &TestDB{DB: db, Logger: logger, container: container}
}

func connectExternal(t *testing.T) *sqlx.DB {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5433"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "routes_test"),
		getEnv("TEST_DB_SSLMODE", "disable"),
	)

	// Retry connection with exponential backoff to wait for DB recovery
	var (
		db  *sqlx.DB
		err error
	)
	maxRetries := 10
	retryDelay := 500 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			return db
		}

		if i < maxRetries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}

	t.Fatalf("Failed to connect to test database after %d attempts: %v", maxRetries, err)
	return nil
}

func startContainer(t *testing.T) (*sqlx.DB, testcontainers.Container) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "routes_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("PostgreSQL container unavailable: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=routes_test sslmode=disable", host, port.Port())

	var db *sqlx.DB
	require.Eventually(t, func() bool {
		conn, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			return false
		}
		db = conn
		return true
	}, 30*time.Second, time.Second, "PostgreSQL not ready for connections")

	return db, container
}

// Close closes the database connection and stops the container, if any
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
	if tdb.container != nil {
		if err := tdb.container.Terminate(context.Background()); err != nil {
			tdb.Logger.Warn("failed to terminate PostgreSQL container", zap.Error(err))
		}
	}
}

// Cleanup removes all route data
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	_, err := tdb.DB.ExecContext(ctx, "TRUNCATE TABLE routes")
	if err != nil {
		return fmt.Errorf("truncate routes: %w", err)
	}
	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
