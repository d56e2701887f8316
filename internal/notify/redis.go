package notify

import (
	"context"
	"encoding/json"

	dom "github.com/omer1abay/Todo-App/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// EventsChannel is the Redis pub/sub channel events are published on.
const EventsChannel = "todo:events"

// RedisPublisher publishes events as JSON for out-of-process listeners.
// Publishing is best effort: failures are logged, never returned.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: EventsChannel}
}

// Handle has the Handler signature so it can be subscribed on a Bus.
func (p *RedisPublisher) Handle(ctx context.Context, ev dom.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Str("event", string(ev.Type)).Msg("marshal event")
		return
	}
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		log.Warn().Err(err).Str("event", string(ev.Type)).Msg("publish event")
	}
}
