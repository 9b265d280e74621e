package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"projectconnect-go/internal/config"
	"projectconnect-go/internal/db"
	"projectconnect-go/pkg/logger"
)

const postgresImage = "postgres:16-alpine"

// NewPostgres returns a migrated, empty PostgreSQL database. It uses
// E2E_DB_DSN when set and otherwise starts a throwaway container.
func NewPostgres(t testing.TB) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		dsn = startPostgres(ctx, t)
	}

	log := logger.NewNop()
	gormDB, err := db.NewPostgres(config.DBConfig{DSN: dsn}, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := db.Migrate(ctx, gormDB, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := Truncate(gormDB); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return gormDB
}

func Truncate(gormDB *gorm.DB) error {
	return gormDB.Exec("TRUNCATE TABLE bids, projects, users RESTART IDENTITY CASCADE").Error
}

func startPostgres(ctx context.Context, t testing.TB) string {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image: postgresImage,
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "projectconnect",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = pg.Terminate(context.Background())
	})

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	return fmt.Sprintf("postgres://test:test@%s:%s/projectconnect?sslmode=disable", host, port.Port())
}
