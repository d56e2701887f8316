package query

import (
	"context"
	"fmt"

	dom "github.com/omer1abay/Todo-App/internal/domain"
	"github.com/omer1abay/Todo-App/internal/dto"

	sq "github.com/Masterminds/squirrel"
)

// Board returns every active list (with active items ordered by priority,
// highest first, then title), every active tag and the priority levels.
func (r *Reader) Board(ctx context.Context) (dto.BoardResponse, error) {
	var lists []listRow
	err := r.selectInto(ctx, &lists, sq.Select("id", "title").
		From("todo_lists").
		Where(sq.Eq{"is_active": true}).
		OrderBy("title", "id"))
	if err != nil {
		return dto.BoardResponse{}, fmt.Errorf("select lists: %w", err)
	}

	var items []itemRow
	if err := r.selectInto(ctx, &items, activeItems().OrderBy("i.priority DESC", "i.title", "i.id")); err != nil {
		return dto.BoardResponse{}, fmt.Errorf("select items: %w", err)
	}

	var tags []tagRow
	err = r.selectInto(ctx, &tags, sq.Select("id", "name").
		From("tags").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name", "id"))
	if err != nil {
		return dto.BoardResponse{}, fmt.Errorf("select tags: %w", err)
	}

	itemTags, err := r.tagsByItem(ctx, nil)
	if err != nil {
		return dto.BoardResponse{}, err
	}

	out := dto.BoardResponse{
		Lists:          make([]dto.TodoListResponse, len(lists)),
		Tags:           toTagResponses(tags),
		PriorityLevels: dom.PriorityLevels(),
	}
	pos := make(map[int64]int, len(lists))
	for i, l := range lists {
		pos[l.ID] = i
		out.Lists[i] = dto.TodoListResponse{ID: l.ID, Title: l.Title, Items: []dto.TodoItemResponse{}}
	}
	for _, it := range items {
		i, ok := pos[it.ListID]
		if !ok {
			continue
		}
		out.Lists[i].Items = append(out.Lists[i].Items, toItemResponse(it, itemTags[it.ID]))
	}
	return out, nil
}
