package repo

import (
	"context"

	dom "github.com/omer1abay/Todo-App/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListRepo struct {
	db *gorm.DB
}

func (r *ListRepo) Create(ctx context.Context, l *dom.TodoList) error {
	return constraint(r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error)
}

// GetByID returns an active list without its items.
func (r *ListRepo) GetByID(ctx context.Context, id int64) (dom.TodoList, error) {
	var l dom.TodoList
	err := r.db.WithContext(ctx).Scopes(active).First(&l, id).Error
	return l, notFound(err)
}

// GetWithItems returns an active list with its active items eagerly loaded.
func (r *ListRepo) GetWithItems(ctx context.Context, id int64) (dom.TodoList, error) {
	var l dom.TodoList
	err := r.db.WithContext(ctx).
		Scopes(active).
		Preload("Items", active).
		First(&l, id).Error
	return l, notFound(err)
}

// GetByIDIncludingInactive bypasses the soft-delete filter.
func (r *ListRepo) GetByIDIncludingInactive(ctx context.Context, id int64) (dom.TodoList, error) {
	var l dom.TodoList
	err := r.db.WithContext(ctx).First(&l, id).Error
	return l, notFound(err)
}

// Save writes the list's own columns; items are persisted through ItemRepo.
func (r *ListRepo) Save(ctx context.Context, l *dom.TodoList) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}
