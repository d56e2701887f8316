package repo

import (
	"context"

	dom "github.com/omer1abay/Todo-App/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepo struct {
	db *gorm.DB
}

func (r *ItemRepo) Create(ctx context.Context, it *dom.TodoItem) error {
	return constraint(r.db.WithContext(ctx).Omit(clause.Associations).Create(it).Error)
}

// GetByID returns an active item without its tag associations.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (dom.TodoItem, error) {
	var it dom.TodoItem
	err := r.db.WithContext(ctx).Scopes(active).First(&it, id).Error
	return it, notFound(err)
}

// GetByIDIncludingInactive bypasses the soft-delete filter.
func (r *ItemRepo) GetByIDIncludingInactive(ctx context.Context, id int64) (dom.TodoItem, error) {
	var it dom.TodoItem
	err := r.db.WithContext(ctx).First(&it, id).Error
	return it, notFound(err)
}

// Save writes the item's own columns; tag associations go through ItemTagRepo.
func (r *ItemRepo) Save(ctx context.Context, it *dom.TodoItem) error {
	return constraint(r.db.WithContext(ctx).Omit(clause.Associations).Save(it).Error)
}

// Deactivate flips is_active off for the given ids and returns how many rows changed.
func (r *ItemRepo) Deactivate(ctx context.Context, ids ...int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&dom.TodoItem{}).
		Where("id IN ?", ids).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
