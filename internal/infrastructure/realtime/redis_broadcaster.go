package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// publishTimeout bounds how long an emission may delay the webhook response.
const publishTimeout = 2 * time.Second

// envelope is the wire format published to a channel.
type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// RedisBroadcaster publishes events over redis pub/sub. Socket gateway
// processes subscribe to `user:{id}` and the admin channels and relay the
// events to websocket clients.
type RedisBroadcaster struct {
	client *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

var _ Broadcaster = (*RedisBroadcaster)(nil)

func (b *RedisBroadcaster) Emit(ctx context.Context, channel, event string, payload interface{}) error {
	data, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := b.client.Publish(pubCtx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", event, channel, err)
	}
	return nil
}
