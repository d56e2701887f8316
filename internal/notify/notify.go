// Package notify forwards domain events to whoever is listening.
package notify

import (
	"context"
	"sync"

	dom "github.com/omer1abay/Todo-App/internal/domain"

	"github.com/rs/zerolog/log"
)

// Notifier receives domain events after they have been committed.
type Notifier interface {
	Notify(ctx context.Context, ev dom.Event)
}

// Handler handles one event.
type Handler func(ctx context.Context, ev dom.Event)

// Bus fans an event out to every handler subscribed to its type.
// Handlers run in the caller's goroutine; a panicking handler is logged
// and does not stop the others.
type Bus struct {
	mu       sync.RWMutex
	handlers map[dom.EventType][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[dom.EventType][]Handler)}
}

// Subscribe registers h for events of type t.
func (b *Bus) Subscribe(t dom.EventType, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

func (b *Bus) Notify(ctx context.Context, ev dom.Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[ev.Type]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(ctx, h, ev)
	}
}

func (b *Bus) dispatch(ctx context.Context, h Handler, ev dom.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("event", string(ev.Type)).Interface("panic", r).Msg("notification handler panicked")
		}
	}()
	h(ctx, ev)
}

// LogSubscriber writes each event to the application log.
func LogSubscriber(_ context.Context, ev dom.Event) {
	log.Info().
		Str("event", string(ev.Type)).
		Int64("item_id", ev.ItemID).
		Int64("list_id", ev.ListID).
		Str("title", ev.Title).
		Msg("todo item completed")
}

// Nop discards events.
type Nop struct{}

func (Nop) Notify(context.Context, dom.Event) {}
