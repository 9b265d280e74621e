// Package testutil provides throwaway databases for repository and e2e tests.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"projectconnect-go/internal/db"
	"projectconnect-go/pkg/logger"
)

// sqliteSchema mirrors migrations/000001_init.up.sql in SQLite dialect.
const sqliteSchema = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) UNIQUE NOT NULL,
	password TEXT NOT NULL,
	role VARCHAR(20) NOT NULL CHECK (role IN ('parent', 'helper')),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE projects (
	project_id INTEGER PRIMARY KEY AUTOINCREMENT,
	parent_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
	title VARCHAR(255) NOT NULL,
	description TEXT,
	grade_level VARCHAR(50),
	budget NUMERIC(10, 2),
	delivery_type VARCHAR(20) DEFAULT 'online',
	difficulty VARCHAR(20) DEFAULT 'beginner',
	deadline DATE,
	category VARCHAR(100),
	status VARCHAR(20) DEFAULT 'open',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE bids (
	bid_id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id INTEGER REFERENCES projects(project_id) ON DELETE CASCADE,
	freelancer_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
	amount NUMERIC(10, 2),
	message TEXT,
	status VARCHAR(20) DEFAULT 'pending',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// NewSQLite opens an in-memory SQLite database with the application schema
// and foreign keys enforced. It is closed when the test ends.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), db.GormConfig(logger.NewNop()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// Every new connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := gormDB.Exec(sqliteSchema).Error; err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return gormDB
}
