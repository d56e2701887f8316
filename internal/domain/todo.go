package domain

import (
	"strings"
	"time"
)

// DefaultBackgroundColor is used for items created without an explicit color.
const DefaultBackgroundColor = "#FFFFFF"

const (
	MaxTitleLength = 200
	MaxNoteLength  = 2000
)

// Audit holds who/when bookkeeping shared by every auditable entity.
// CreatedBy/UpdatedBy are stamped by the persistence layer from the request author.
type Audit struct {
	CreatedAt time.Time
	CreatedBy string `gorm:"size:200"`
	UpdatedAt time.Time
	UpdatedBy string `gorm:"size:200"`
}

// Domain entities: the business objects.
// Rows are never physically removed; IsActive=false is a soft delete.
type TodoList struct {
	ID       int64      `gorm:"primaryKey"`
	Title    string     `gorm:"size:200;not null"`
	Items    []TodoItem `gorm:"foreignKey:ListID"`
	IsActive bool       `gorm:"not null;default:false"`
	Audit
}

func (TodoList) TableName() string { return "todo_lists" }

type TodoItem struct {
	ID              int64         `gorm:"primaryKey"`
	ListID          int64         `gorm:"not null;index"`
	Title           string        `gorm:"size:200;not null"`
	Note            string        `gorm:"size:2000"`
	Priority        PriorityLevel `gorm:"not null;default:0"`
	Done            bool          `gorm:"not null;default:false"`
	Reminder        *time.Time
	BackgroundColor string        `gorm:"size:7;not null;default:'#FFFFFF'"`
	Tags            []TodoItemTag `gorm:"foreignKey:TodoItemID"`
	IsActive        bool          `gorm:"not null;default:false"`
	Audit
}

func (TodoItem) TableName() string { return "todo_items" }

// NewTodoItem builds an active item; an empty color falls back to DefaultBackgroundColor.
func NewTodoItem(listID int64, title, backgroundColor string) TodoItem {
	color := strings.TrimSpace(backgroundColor)
	if color == "" {
		color = DefaultBackgroundColor
	}
	return TodoItem{
		ListID:          listID,
		Title:           strings.TrimSpace(title),
		Priority:        PriorityNone,
		BackgroundColor: color,
		IsActive:        true,
	}
}

// SetDone assigns the done flag and returns the events the change produced.
// Only a false -> true transition emits ItemCompleted.
func (i *TodoItem) SetDone(done bool) []Event {
	var events []Event
	if done && !i.Done {
		events = append(events, NewItemCompletedEvent(*i, time.Now().UTC()))
	}
	i.Done = done
	return events
}

// TagIDs returns the tag ids currently associated with the item, in association order.
func (i TodoItem) TagIDs() []int64 {
	ids := make([]int64, 0, len(i.Tags))
	for _, t := range i.Tags {
		ids = append(ids, t.TagID)
	}
	return ids
}

type Tag struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"size:200;not null"`
	IsActive bool   `gorm:"not null;default:false"`
	Audit
}

func (Tag) TableName() string { return "tags" }

// TodoItemTag links one item to one tag. Uniqueness per (item, tag) is kept
// by ReconcileTags, not by a database constraint.
type TodoItemTag struct {
	ID         int64 `gorm:"primaryKey"`
	TodoItemID int64 `gorm:"not null;index"`
	TagID      int64 `gorm:"not null;index"`
}

func (TodoItemTag) TableName() string { return "todo_item_tags" }
