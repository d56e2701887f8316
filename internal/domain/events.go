package domain

import "time"

// EventType names a domain event.
type EventType string

const (
	// EventItemCompleted is raised when an item goes from not-done to done.
	EventItemCompleted EventType = "todo_item.completed"
)

// Event is a domain event returned by mutating operations.
// Callers forward it to notification collaborators after commit.
type Event struct {
	Type       EventType `json:"type"`
	ItemID     int64     `json:"item_id"`
	ListID     int64     `json:"list_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemCompletedEvent creates an ItemCompleted event for the item.
func NewItemCompletedEvent(item TodoItem, at time.Time) Event {
	return Event{
		Type:       EventItemCompleted,
		ItemID:     item.ID,
		ListID:     item.ListID,
		Title:      item.Title,
		OccurredAt: at,
	}
}
