package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/omer1abay/Todo-App/internal/config"
	"github.com/omer1abay/Todo-App/internal/repo"
	"github.com/omer1abay/Todo-App/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Database is one connection pool shared by the GORM write side and the
// sqlx read side.
type Database struct {
	Driver string
	Gorm   *gorm.DB
	SQLX   *sqlx.DB

	sqlDB *sql.DB
	pool  *pgxpool.Pool
}

// OpenDatabase opens the configured driver. Postgres goes through a pgx pool;
// SQLite creates its schema itself.
func OpenDatabase(ctx context.Context, cfg config.DBConfig) (*Database, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := newPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		sqlDB := stdlib.OpenDBFromPool(pool)
		gdb, err := repo.OpenPostgres(sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			pool.Close()
			return nil, err
		}
		return &Database{
			Driver: cfg.Driver,
			Gorm:   gdb,
			SQLX:   sqlx.NewDb(sqlDB, "pgx"),
			sqlDB:  sqlDB,
			pool:   pool,
		}, nil
	case config.DriverSQLite:
		gdb, err := repo.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		// SQLite allows one writer at a time.
		sqlDB.SetMaxOpenConns(1)
		return &Database{
			Driver: cfg.Driver,
			Gorm:   gdb,
			SQLX:   sqlx.NewDb(sqlDB, "sqlite3"),
			sqlDB:  sqlDB,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func (d *Database) Close() error {
	err := d.sqlDB.Close()
	if d.pool != nil {
		d.pool.Close()
	}
	return err
}

// Migrate runs a goose command ("up", "down" or "status") against the
// embedded Postgres migrations.
func Migrate(ctx context.Context, d *Database, command string) error {
	if d.Driver != config.DriverPostgres {
		return errors.New("migrations apply to postgres only; sqlite creates its schema on open")
	}
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, d.sqlDB, ".")
	case "down":
		err = goose.DownContext(ctx, d.sqlDB, ".")
	case "status":
		err = goose.StatusContext(ctx, d.sqlDB, ".")
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
