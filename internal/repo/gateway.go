package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	dom "github.com/omer1abay/Todo-App/internal/domain"
	"github.com/omer1abay/Todo-App/internal/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrInvalidReference means a write pointed at a list, item or tag that does not exist.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Gateway is the persistence gateway: typed repositories over one *gorm.DB
// plus InTx, the single "commit all pending changes" operation.
// It holds no business logic.
type Gateway struct {
	db *gorm.DB
}

// NewGateway wraps db. Audit callbacks must already be registered (see Open*).
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) DB() *gorm.DB { return g.db }

func (g *Gateway) Lists() *ListRepo { return &ListRepo{db: g.db} }
func (g *Gateway) Items() *ItemRepo { return &ItemRepo{db: g.db} }
func (g *Gateway) Tags() *TagRepo { return &TagRepo{db: g.db} }
func (g *Gateway) ItemTags() *ItemTagRepo { return &ItemTagRepo{db: g.db} }
func (g *Gateway) Users() *PGUserRepo { return &PGUserRepo{db: g.db} }

// InTx runs fn in one transaction. Returning an error (or a cancelled ctx)
// rolls everything back; otherwise all changes are committed together.
func (g *Gateway) InTx(ctx context.Context, fn func(tx *Gateway) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(&Gateway{db: tx}); err != nil {
			return err
		}
		return ctx.Err()
	})
}

// Ping checks the underlying connection.
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// active is the soft-delete filter: every default read goes through it.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// constraint maps constraint violations on writes to repo errors.
func constraint(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey) || utils.IsPGUniqueViolation(err):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated) || utils.IsPGForeignKeyViolation(err):
		return ErrInvalidReference
	}
	return err
}

// OpenPostgres builds a GORM handle on an existing connection pool.
func OpenPostgres(sqlDB *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm postgres: %w", err)
	}
	if err := registerAuditCallbacks(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database and migrates the schema.
// Used for local development and tests; production runs goose migrations on Postgres.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm sqlite: %w", err)
	}
	if err := registerAuditCallbacks(db); err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates the schema from the entity definitions.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&dom.TodoList{}, &dom.TodoItem{}, &dom.Tag{}, &dom.TodoItemTag{}, &dom.User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(gormLogWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// gormLogWriter routes GORM's logger through zerolog.
type gormLogWriter struct{}

func (gormLogWriter) Printf(format string, args ...interface{}) {
	log.Warn().Str("component", "gorm").Msgf(format, args...)
}
