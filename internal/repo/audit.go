package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type authorKey struct{}

// WithAuthor attaches the acting user's name to ctx; writes made with this
// ctx record it in CreatedBy/UpdatedBy.
func WithAuthor(ctx context.Context, author string) context.Context {
	return context.WithValue(ctx, authorKey{}, author)
}

// AuthorFrom returns the author stored by WithAuthor, or "".
func AuthorFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(authorKey{}).(string)
	return s
}

func registerAuditCallbacks(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").
		Register("audit:stamp_create", stampAuthor("CreatedBy", "UpdatedBy")); err != nil {
		return fmt.Errorf("register create audit: %w", err)
	}
	if err := db.Callback().Update().Before("gorm:update").
		Register("audit:stamp_update", stampAuthor("UpdatedBy")); err != nil {
		return fmt.Errorf("register update audit: %w", err)
	}
	return nil
}

func stampAuthor(fields ...string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement.Schema == nil {
			return
		}
		author := AuthorFrom(db.Statement.Context)
		if author == "" {
			return
		}
		for _, name := range fields {
			if field := db.Statement.Schema.LookUpField(name); field != nil {
				db.Statement.SetColumn(field.DBName, author, true)
			}
		}
	}
}
