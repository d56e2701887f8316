// Package query is the read side: denormalized views assembled with plain
// SQL over the same connection the ORM writes through.
package query

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/omer1abay/Todo-App/internal/dto"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Reader runs read-only queries. Every query carries the soft-delete
// predicate explicitly; there is no "include inactive" read here.
type Reader struct {
	db *sqlx.DB
}

func NewReader(db *sqlx.DB) *Reader {
	return &Reader{db: db}
}

type listRow struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}

type itemRow struct {
	ID              int64          `db:"id"`
	ListID          int64          `db:"list_id"`
	Title           string         `db:"title"`
	Note            sql.NullString `db:"note"`
	Priority        int            `db:"priority"`
	Done            bool           `db:"done"`
	Reminder        sql.NullTime   `db:"reminder"`
	BackgroundColor string         `db:"background_color"`
}

type tagRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type itemTagRow struct {
	ItemID int64  `db:"todo_item_id"`
	TagID  int64  `db:"tag_id"`
	Name   string `db:"name"`
}

var itemColumns = []string{
	"i.id", "i.list_id", "i.title", "i.note", "i.priority",
	"i.done", "i.reminder", "i.background_color",
}

func activeItems() sq.SelectBuilder {
	return sq.Select(itemColumns...).
		From("todo_items i").
		Join("todo_lists l ON l.id = i.list_id").
		Where(sq.Eq{"i.is_active": true, "l.is_active": true})
}

func (r *Reader) selectInto(ctx context.Context, dest interface{}, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return r.db.SelectContext(ctx, dest, r.db.Rebind(query), args...)
}

func (r *Reader) getInto(ctx context.Context, dest interface{}, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return r.db.GetContext(ctx, dest, r.db.Rebind(query), args...)
}

// tagsByItem loads active tags for the given items (all items when ids is nil).
func (r *Reader) tagsByItem(ctx context.Context, ids []int64) (map[int64][]dto.TagResponse, error) {
	b := sq.Select("it.todo_item_id", "t.id AS tag_id", "t.name").
		From("todo_item_tags it").
		Join("tags t ON t.id = it.tag_id").
		Where(sq.Eq{"t.is_active": true}).
		OrderBy("it.id")
	if ids != nil {
		if len(ids) == 0 {
			return map[int64][]dto.TagResponse{}, nil
		}
		b = b.Where(sq.Eq{"it.todo_item_id": ids})
	}

	var rows []itemTagRow
	if err := r.selectInto(ctx, &rows, b); err != nil {
		return nil, fmt.Errorf("select item tags: %w", err)
	}

	out := make(map[int64][]dto.TagResponse)
	seen := make(map[[2]int64]bool, len(rows))
	for _, row := range rows {
		k := [2]int64{row.ItemID, row.TagID}
		if seen[k] {
			continue
		}
		seen[k] = true
		out[row.ItemID] = append(out[row.ItemID], dto.TagResponse{ID: row.TagID, Name: row.Name})
	}
	return out, nil
}

func toItemResponse(row itemRow, tags []dto.TagResponse) dto.TodoItemResponse {
	var reminder *time.Time
	if row.Reminder.Valid {
		t := row.Reminder.Time.UTC()
		reminder = &t
	}
	if tags == nil {
		tags = []dto.TagResponse{}
	}
	return dto.TodoItemResponse{
		ID:              row.ID,
		ListID:          row.ListID,
		Title:           row.Title,
		Note:            row.Note.String,
		Priority:        row.Priority,
		Done:            row.Done,
		Reminder:        reminder,
		BackgroundColor: row.BackgroundColor,
		Tags:            tags,
	}
}

func toTagResponses(rows []tagRow) []dto.TagResponse {
	out := make([]dto.TagResponse, len(rows))
	for i, row := range rows {
		out[i] = dto.TagResponse{ID: row.ID, Name: row.Name}
	}
	return out
}
