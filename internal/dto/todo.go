package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "github.com/omer1abay/Todo-App/internal/domain"
)

// Reminder parses reminder from JSON as either date-only ("2006-01-02") or RFC3339.
// Date-only is stored as start of that day in UTC; null or "" clears it.
type Reminder struct{ t *time.Time }

func (d *Reminder) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			parsed = parsed.UTC()
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("reminder: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d Reminder) Ptr() *time.Time { return d.t }

type CreateTodoListRequest struct {
	Title string `json:"title" binding:"required,notblank,max=200"`
}

type UpdateTodoListRequest struct {
	Title string `json:"title" binding:"required,notblank,max=200"`
}

type CreateTodoItemRequest struct {
	ListID          int64  `json:"listId" binding:"required,gt=0"`
	Title           string `json:"title" binding:"required,notblank,max=200"`
	BackgroundColor string `json:"backgroundColor" binding:"omitempty,hexcolor"`
}

type UpdateTodoItemRequest struct {
	Title string `json:"title" binding:"required,notblank,max=200"`
	Done  bool   `json:"done"`
}

type UpdateTodoItemDetailRequest struct {
	ListID   int64             `json:"listId" binding:"required,gt=0"`
	Priority dom.PriorityLevel `json:"priority" binding:"min=0,max=3"`
	Note     string            `json:"note" binding:"max=2000"`
	Tags     []int64           `json:"tags" binding:"dive,gt=0"`
	Reminder Reminder          `json:"reminder"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,notblank,max=200"`
}

type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TodoItemResponse struct {
	ID              int64         `json:"id"`
	ListID          int64         `json:"listId"`
	Title           string        `json:"title"`
	Note            string        `json:"note"`
	Priority        int           `json:"priority"`
	Done            bool          `json:"done"`
	Reminder        *time.Time    `json:"reminder"`
	BackgroundColor string        `json:"backgroundColor"`
	Tags            []TagResponse `json:"tags"`
}

type TodoListResponse struct {
	ID    int64              `json:"id"`
	Title string             `json:"title"`
	Items []TodoItemResponse `json:"items"`
}

// BoardResponse is the aggregate view for the initial client render.
type BoardResponse struct {
	Lists          []TodoListResponse   `json:"lists"`
	Tags           []TagResponse        `json:"tags"`
	PriorityLevels []dom.PriorityOption `json:"priorityLevels"`
}

type ItemsPageResponse struct {
	Items           []TodoItemResponse `json:"items"`
	PageNumber      int                `json:"pageNumber"`
	TotalPages      int                `json:"totalPages"`
	TotalCount      int                `json:"totalCount"`
	HasPreviousPage bool               `json:"hasPreviousPage"`
	HasNextPage     bool               `json:"hasNextPage"`
}

// ItemsPageQuery is the query string of GET /api/TodoItems.
type ItemsPageQuery struct {
	ListID     int64 `form:"listId" binding:"required,gt=0"`
	PageNumber int   `form:"pageNumber" binding:"omitempty,min=1,max=1000000"`
	PageSize   int   `form:"pageSize" binding:"omitempty,min=1,max=100"`
}
