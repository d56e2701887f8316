package repo

import (
	"context"

	dom "github.com/omer1abay/Todo-App/internal/domain"

	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func (r *TagRepo) Create(ctx context.Context, t *dom.Tag) error {
	return constraint(r.db.WithContext(ctx).Create(t).Error)
}

// GetByID returns an active tag.
func (r *TagRepo) GetByID(ctx context.Context, id int64) (dom.Tag, error) {
	var t dom.Tag
	err := r.db.WithContext(ctx).Scopes(active).First(&t, id).Error
	return t, notFound(err)
}

// ItemTagRepo manages item-tag association rows. Associations are not
// soft-deletable: removing one deletes the row.
type ItemTagRepo struct {
	db *gorm.DB
}

func (r *ItemTagRepo) ListByItem(ctx context.Context, itemID int64) ([]dom.TodoItemTag, error) {
	var out []dom.TodoItemTag
	err := r.db.WithContext(ctx).Where("todo_item_id = ?", itemID).Order("id").Find(&out).Error
	return out, err
}

func (r *ItemTagRepo) Create(ctx context.Context, assocs []dom.TodoItemTag) error {
	if len(assocs) == 0 {
		return nil
	}
	return constraint(r.db.WithContext(ctx).Create(&assocs).Error)
}

func (r *ItemTagRepo) Delete(ctx context.Context, assocs []dom.TodoItemTag) error {
	if len(assocs) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(assocs))
	for _, a := range assocs {
		ids = append(ids, a.ID)
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&dom.TodoItemTag{}).Error
}
