package query

import (
	"context"
	"fmt"

	"github.com/omer1abay/Todo-App/internal/dto"

	sq "github.com/Masterminds/squirrel"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ItemsPage returns one page of a list's active items ordered by title.
// Out-of-range page numbers yield an empty page with correct totals.
func (r *Reader) ItemsPage(ctx context.Context, listID int64, page, size int) (dto.ItemsPageResponse, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	var total int
	err := r.getInto(ctx, &total, sq.Select("COUNT(*)").
		From("todo_items i").
		Join("todo_lists l ON l.id = i.list_id").
		Where(sq.Eq{"i.is_active": true, "l.is_active": true, "i.list_id": listID}))
	if err != nil {
		return dto.ItemsPageResponse{}, fmt.Errorf("count items: %w", err)
	}

	totalPages := (total + size - 1) / size

	// Past the last page the offset would exceed the row count, so skip the query.
	var rows []itemRow
	if page <= totalPages {
		err = r.selectInto(ctx, &rows, activeItems().
			Where(sq.Eq{"i.list_id": listID}).
			OrderBy("i.title", "i.id").
			Limit(uint64(size)).
			Offset(uint64(page-1)*uint64(size)))
		if err != nil {
			return dto.ItemsPageResponse{}, fmt.Errorf("select items page: %w", err)
		}
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	tags, err := r.tagsByItem(ctx, ids)
	if err != nil {
		return dto.ItemsPageResponse{}, err
	}

	out := dto.ItemsPageResponse{
		Items:           make([]dto.TodoItemResponse, 0, len(rows)),
		PageNumber:      page,
		TotalPages:      totalPages,
		TotalCount:      total,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
	for _, row := range rows {
		out.Items = append(out.Items, toItemResponse(row, tags[row.ID]))
	}
	return out, nil
}
