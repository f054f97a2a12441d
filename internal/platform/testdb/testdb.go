// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package testdb provides a migrated PostgreSQL container for repository
integration tests.

The container is started once per test binary and shared by every test that
asks for it. Tests are skipped under -short since they require Docker.
*/
package testdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/aqar/internal/platform/migration"
	"github.com/taibuivan/aqar/internal/platform/postgres"
)

const image = "postgres:16-alpine"

var (
	shared     *pgxpool.Pool
	sharedOnce sync.Once
	sharedErr  error
)

// Pool returns a pool connected to the shared, fully migrated database.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedOnce.Do(func() {
		shared, sharedErr = start(context.Background())
	})

	if sharedErr != nil {
		t.Fatalf("Failed to set up test database: %v", sharedErr)
	}
	return shared
}

func start(ctx context.Context) (*pgxpool.Pool, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "aqar_test",
				"POSTGRES_USER":     "aqar",
				"POSTGRES_PASSWORD": "aqar",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("testdb: failed to start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("testdb: failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("testdb: failed to get container port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://aqar:aqar@%s:%s/aqar_test?sslmode=disable", host, port.Port())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := migration.RunUp(dsn, migrationsPath(), logger); err != nil {
		return nil, err
	}

	return postgres.NewPool(ctx, dsn, logger)
}

// migrationsPath locates data/migrations relative to this source file.
func migrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "data", "migrations")
}

// Truncate empties the given tables and resets their identity sequences.
func Truncate(t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()

	for _, table := range tables {
		if _, err := pool.Exec(context.Background(), "TRUNCATE "+table+" RESTART IDENTITY"); err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
