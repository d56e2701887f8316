// Package repotest provides an in-memory SQLite gateway for tests.
package repotest

import (
	"fmt"
	"testing"

	"github.com/omer1abay/Todo-App/internal/repo"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory database with the full schema.
// A single connection keeps every statement on the same memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repo.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// NewGateway is NewDB wrapped in a repo.Gateway.
func NewGateway(t *testing.T) *repo.Gateway {
	t.Helper()
	return repo.NewGateway(NewDB(t))
}

// NewSQLX exposes db's connection to the sqlx read side.
func NewSQLX(t *testing.T, db *gorm.DB) *sqlx.DB {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	return sqlx.NewDb(sqlDB, "sqlite3")
}
